package filesystem

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"docfs/internal/model"
)

// Metrics holds the Prometheus collectors for filesystem operations.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the operation collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docfs_operations_total",
				Help: "Total number of filesystem operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docfs_operation_duration_seconds",
				Help:    "Duration of filesystem operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	if err := reg.Register(m.operations); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(op, outcome string, start time.Time) {
	m.operations.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

type measuredFileSystem struct {
	next    FileSystem
	metrics *Metrics
}

// WithMetrics wraps next so every call is counted and timed.
func WithMetrics(next FileSystem, m *Metrics) FileSystem {
	return &measuredFileSystem{next: next, metrics: m}
}

func (s *measuredFileSystem) Write(ctx context.Context, directory string, document model.Document) model.WriteFileResult {
	start := time.Now()
	res := s.next.Write(ctx, directory, document)
	outcome := "ok"
	if res.HadError() {
		outcome = "error"
	}
	s.metrics.observe("write", outcome, start)
	return res
}

func (s *measuredFileSystem) List(ctx context.Context, path string) []string {
	start := time.Now()
	entries := s.next.List(ctx, path)
	outcome := "ok"
	if len(entries) == 0 {
		outcome = "empty"
	}
	s.metrics.observe("list", outcome, start)
	return entries
}

func (s *measuredFileSystem) Exists(ctx context.Context, path string) bool {
	start := time.Now()
	ok := s.next.Exists(ctx, path)
	s.metrics.observe("exists", strconv.FormatBool(ok), start)
	return ok
}

func (s *measuredFileSystem) Delete(ctx context.Context, path string) {
	start := time.Now()
	s.next.Delete(ctx, path)
	s.metrics.observe("delete", "ok", start)
}

func (s *measuredFileSystem) GetDocument(ctx context.Context, path string) model.Document {
	start := time.Now()
	doc := s.next.GetDocument(ctx, path)
	outcome := "found"
	if doc.IsNull() {
		outcome = "null"
	}
	s.metrics.observe("get_document", outcome, start)
	return doc
}
