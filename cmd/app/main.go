package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/korvess/DeepMine_Go/internal/bootstrap"
	"github.com/korvess/DeepMine_Go/internal/catalog"
	"github.com/korvess/DeepMine_Go/internal/config"
	"github.com/korvess/DeepMine_Go/internal/database"
	"github.com/korvess/DeepMine_Go/internal/database/postgres"
	"github.com/korvess/DeepMine_Go/internal/scheduler"
	"github.com/korvess/DeepMine_Go/internal/server"
	"github.com/korvess/DeepMine_Go/internal/session"
	"github.com/korvess/DeepMine_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Validate environment before anything else so misconfiguration fails fast
	if err := config.ValidateEnv(); err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	connString := cfg.GetDBConnString()

	if err := database.Migrate(connString); err != nil {
		return err
	}

	dbPool, err := database.NewPool(connString, database.DefaultMaxConnections, 5*time.Minute, 30*time.Minute)
	if err != nil {
		return err
	}

	registry, err := catalog.NewLoader().LoadDir(cfg.CatalogDir)
	if err != nil {
		return err
	}

	playerRepo := postgres.NewPlayerRepository(dbPool)
	sessions := session.NewManager(registry, playerRepo, cfg.SessionCacheSize, cfg.SessionTTL)

	// Background save sweep: a worker pool executing the dirty-session flush
	// on a fixed interval.
	pool := worker.NewPool(2, 16)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.SaveInterval, worker.NewSaveJob(sessions, cfg.SaveInterval))

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, sessions, registry)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		Sessions:   sessions,
		DBPool:     dbPool,
	})

	return nil
}
