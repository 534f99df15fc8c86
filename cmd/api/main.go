package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"docfs/internal/config"
	"docfs/internal/filesystem"
	handlers "docfs/internal/http/handler"
	"docfs/internal/http/middleware"
	"docfs/internal/logging"
	docfsotel "docfs/internal/otel"
	"docfs/internal/storage"
)

// @title Document FileSystem API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := docfsotel.Init(ctx, log)
	if err != nil {
		log.Error("tracing_init_failed", "error", err.Error())
		os.Exit(1)
	}

	paths, err := handlers.NewPathResolver(cfg.Storage.Root)
	if err != nil {
		log.Error("storage_init_failed", "root", cfg.Storage.Root, "error", err.Error())
		os.Exit(1)
	}

	backend, err := storage.New(cfg.Storage)
	if err != nil {
		log.Error("storage_init_failed", "backend", cfg.Storage.Backend, "error", err.Error())
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	fsMetrics, err := filesystem.NewMetrics(reg)
	if err != nil {
		log.Error("metrics_init_failed", "error", err.Error())
		os.Exit(1)
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error("metrics_init_failed", "error", err.Error())
		os.Exit(1)
	}

	// Decorators: metrics outermost so traced time is included in the histogram.
	var fs filesystem.FileSystem = filesystem.NewFileSystem(backend, log)
	fs = filesystem.WithTracing(fs, otel.GetTracerProvider())
	fs = filesystem.WithMetrics(fs, fsMetrics)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.MaxUploadBytes,
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, backend, fs, paths)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterDocs(app, cfg.AppHost)

	go func() {
		<-ctx.Done()
		timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			log.Error("server_shutdown_failed", "error", err.Error())
		}
	}()

	addr := net.JoinHostPort(cfg.ListenHost, cfg.Port)
	log.Info("server_starting", "addr", addr, "backend", cfg.Storage.Backend, "root", paths.Root())
	if err := app.Listen(addr); err != nil {
		log.Error("server_failed", "error", err.Error())
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		log.Error("tracing_shutdown_failed", "error", err.Error())
	}
}
