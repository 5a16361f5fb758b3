package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fx-wallet/config"
	httpHandler "fx-wallet/internal/adapter/http/handler"
	"fx-wallet/internal/adapter/ratesource"
	memStorage "fx-wallet/internal/adapter/storage/memory"
	pgStorage "fx-wallet/internal/adapter/storage/postgres"
	redisStorage "fx-wallet/internal/adapter/storage/redis"
	"fx-wallet/internal/core/ports"
	"fx-wallet/internal/service"
	"fx-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("backend", cfg.Storage.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting FX Wallet")

	ctx := context.Background()

	// Select the snapshot store backend
	var (
		store          ports.SnapshotStore
		healthCheckers []ports.HealthChecker
	)
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		pgStore := pgStorage.NewSnapshotStore(pool, cfg.Storage.Namespace)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare snapshot table")
		}
		store = pgStore
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))

	case config.BackendRedis:
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		store = redisStorage.NewSnapshotStore(rdb, cfg.Storage.Namespace)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))

	case config.BackendMemory:
		store = memStorage.NewSnapshotStore()
		log.Warn().Msg("Using in-memory snapshot store, state will not survive a restart")

	default:
		log.Fatal().Str("backend", cfg.Storage.Backend).Msg("Unknown storage backend")
	}

	// External rate source client
	rateSource := ratesource.NewClient(cfg.RateSource, log)

	// Core services
	ledger := service.NewLedgerService(store, rateSource, log)
	analytics := service.NewAnalyticsService(ledger)
	profile := service.NewProfileService()

	// Restore any mirrored state from a previous run
	if err := ledger.LoadOfflineData(ctx); err != nil {
		log.Warn().Err(err).Msg("Could not restore ledger snapshot, starting empty")
	}

	// Observe ledger changes for debugging
	unsubscribe := ledger.Subscribe(func() {
		log.Debug().Msg("ledger state changed")
	})
	defer unsubscribe()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledger,
		Analytics:      analytics,
		Profile:        profile,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Best-effort final mirror before exit
	if err := ledger.SaveOfflineData(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Final ledger snapshot failed")
	}

	log.Info().Msg("Server exited")
}
