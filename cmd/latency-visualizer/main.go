package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/hemant838/goquant-assignment/internal/api/http"
	"github.com/hemant838/goquant-assignment/internal/config"
	"github.com/hemant838/goquant-assignment/internal/latency"
	"github.com/hemant838/goquant-assignment/internal/latency/radar"
	"github.com/hemant838/goquant-assignment/internal/scheduler"
	"github.com/hemant838/goquant-assignment/internal/store"
)

func main() {
	// Load configuration (.env handled inside).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound Radar calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Gateway, estimators and the aggregation service.
	gateway := radar.NewClient(httpClient, cfg.CloudflareAPIKey, cfg.RadarBaseURL)
	estimator := latency.NewEstimator(latency.DefaultJitter)
	liveEstimator := latency.NewEstimator(latency.LiveJitter)

	service := latency.NewService(gateway, estimator, latency.Exchanges(), latency.CloudRegions())

	// Single-slot store for resolved connection sets.
	memStore := store.NewMemoryStore()

	// Scheduler that periodically re-resolves the topology.
	opts := latency.ResolveOptions{PreferExternal: cfg.PreferExternal}
	sched := scheduler.New(service, memStore, opts, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "latency-visualizer",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "latency-visualizer",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Handler{
		Service:        service,
		Store:          memStore,
		LiveEstimator:  liveEstimator,
		PreferExternal: cfg.PreferExternal,
	})

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
