package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kadamczak/GameBackend_Go/internal/catalog"
	"github.com/kadamczak/GameBackend_Go/internal/config"
	"github.com/kadamczak/GameBackend_Go/internal/database"
	"github.com/kadamczak/GameBackend_Go/internal/database/postgres"
	"github.com/kadamczak/GameBackend_Go/internal/event"
	"github.com/kadamczak/GameBackend_Go/internal/handler"
	"github.com/kadamczak/GameBackend_Go/internal/marketplace"
	"github.com/kadamczak/GameBackend_Go/internal/notification"
	"github.com/kadamczak/GameBackend_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first so logging can be configured from it
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation reported issues", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn("Configuration warning", "warning", w)
		}
	}

	// Connect to the database
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	marketRepo := postgres.NewMarketplaceRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)

	// Services
	catalogSvc := catalog.NewServiceWithCache(itemRepo, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), 0755); err != nil {
		slog.Error("Failed to create dead-letter directory", "error", err)
		os.Exit(1)
	}
	bus := event.NewMemoryBus()
	notification.NewSink(nil).Register(bus)
	publisher := event.NewResilientPublisher(bus, event.DefaultResilientConfig(cfg.EventDeadLetterPath))

	marketplaceSvc := marketplace.NewService(marketRepo, catalogSvc, publisher)

	// Request validation
	handler.InitValidator()

	// HTTP server
	// No external identity provider in the default deployment; callers
	// authenticate service-to-service and pass the acting player id directly.
	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, nil, pool, marketplaceSvc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	// Let in-flight event retries drain before the process exits
	if err := publisher.Shutdown(ctx); err != nil {
		slog.Warn("Event publisher did not drain in time", "error", err)
	}

	slog.Info("Server stopped")
}
