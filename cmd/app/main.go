package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/binderapp/binder/internal/bootstrap"
	"github.com/binderapp/binder/internal/catalog"
	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/config"
	"github.com/binderapp/binder/internal/handler"
	"github.com/binderapp/binder/internal/prefs"
	"github.com/binderapp/binder/internal/scheduler"
	"github.com/binderapp/binder/internal/server"
	"github.com/binderapp/binder/internal/snapshot"
	"github.com/binderapp/binder/internal/sse"
	"github.com/binderapp/binder/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	for _, warning := range warnings {
		log.Printf("Configuration warning: %s", warning)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	handler.InitValidator()

	store, err := bootstrap.InitializeStorage(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	// Catalog provider: local file when configured, live API otherwise
	var provider catalog.Provider
	if cfg.CatalogFile != "" {
		fileProvider, err := catalog.NewFileProvider(cfg.CatalogFile)
		if err != nil {
			slog.Error("Failed to open catalog file", "path", cfg.CatalogFile, "error", err)
			os.Exit(1)
		}
		provider = fileProvider
		slog.Info("Catalog served from file", "path", cfg.CatalogFile)
	} else {
		provider = catalog.NewClient(cfg.CatalogBaseURL, catalog.DefaultTimeout)
		slog.Info("Catalog served from API", "base_url", cfg.CatalogBaseURL)
	}

	cacheCfg := catalog.DefaultCacheConfig()
	cacheCfg.TTL = cfg.CatalogCacheTTL

	catalogSvc := catalog.NewService(provider, publisher, cacheCfg)
	prefsSvc := prefs.NewService(store)
	collectionSvc := collection.NewService(store, publisher)
	if err := collectionSvc.Load(context.Background()); err != nil {
		slog.Error("Failed to load collection", "error", err)
		os.Exit(1)
	}
	snapshotSvc := snapshot.NewService(store, publisher)
	snapshotJob := snapshot.NewJob(snapshotSvc, collectionSvc, catalogSvc, prefsSvc, cfg.CatalogSet)

	// Live change stream
	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bus, hub); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	// Background snapshot job
	var (
		pool  *worker.Pool
		sched *scheduler.Scheduler
	)
	if cfg.SnapshotInterval > 0 {
		pool = worker.NewPool(cfg.WorkerCount, cfg.JobQueueSize)
		pool.Start()
		sched = scheduler.New(pool)
		sched.Schedule(cfg.SnapshotInterval, snapshotJob)
		slog.Info("Snapshot job scheduled", "interval", cfg.SnapshotInterval, "set", cfg.CatalogSet)
	} else {
		slog.Info("Snapshot job disabled")
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, store, server.Services{
		Collection: collectionSvc,
		Catalog:    catalogSvc,
		Prefs:      prefsSvc,
		Snapshots:  snapshotSvc,
	}, snapshotJob, hub)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		Hub:                hub,
		ResilientPublisher: publisher,
		Store:              store,
	})
}
