package filesystem

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"docfs/internal/model"
)

const tracerName = "docfs/internal/filesystem"

type tracedFileSystem struct {
	next   FileSystem
	tracer trace.Tracer
}

// WithTracing wraps next so every call runs inside a span from tp.
func WithTracing(next FileSystem, tp trace.TracerProvider) FileSystem {
	return &tracedFileSystem{next: next, tracer: tp.Tracer(tracerName)}
}

func (s *tracedFileSystem) Write(ctx context.Context, directory string, document model.Document) model.WriteFileResult {
	ctx, span := s.tracer.Start(ctx, "filesystem.Write", trace.WithAttributes(
		attribute.String("docfs.directory", directory),
		attribute.String("docfs.document.name", document.Name()),
		attribute.Int("docfs.document.size", document.Size()),
	))
	defer span.End()

	res := s.next.Write(ctx, directory, document)
	if res.HadError() {
		span.SetAttributes(attribute.StringSlice("docfs.errors", res.ErrorMessages))
		span.SetStatus(codes.Error, res.ErrorMessages[0])
	}
	return res
}

func (s *tracedFileSystem) List(ctx context.Context, path string) []string {
	ctx, span := s.tracer.Start(ctx, "filesystem.List", trace.WithAttributes(attribute.String("docfs.path", path)))
	defer span.End()

	entries := s.next.List(ctx, path)
	span.SetAttributes(attribute.Int("docfs.entries", len(entries)))
	return entries
}

func (s *tracedFileSystem) Exists(ctx context.Context, path string) bool {
	ctx, span := s.tracer.Start(ctx, "filesystem.Exists", trace.WithAttributes(attribute.String("docfs.path", path)))
	defer span.End()

	ok := s.next.Exists(ctx, path)
	span.SetAttributes(attribute.Bool("docfs.exists", ok))
	return ok
}

func (s *tracedFileSystem) Delete(ctx context.Context, path string) {
	ctx, span := s.tracer.Start(ctx, "filesystem.Delete", trace.WithAttributes(attribute.String("docfs.path", path)))
	defer span.End()

	s.next.Delete(ctx, path)
}

func (s *tracedFileSystem) GetDocument(ctx context.Context, path string) model.Document {
	ctx, span := s.tracer.Start(ctx, "filesystem.GetDocument", trace.WithAttributes(attribute.String("docfs.path", path)))
	defer span.End()

	doc := s.next.GetDocument(ctx, path)
	span.SetAttributes(
		attribute.Bool("docfs.found", !doc.IsNull()),
		attribute.Int("docfs.document.size", doc.Size()),
	)
	return doc
}
