package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/korvess/DeepMine_Go/internal/scheduler"
	"github.com/korvess/DeepMine_Go/internal/server"
	"github.com/korvess/DeepMine_Go/internal/session"
	"github.com/korvess/DeepMine_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	Sessions   *session.Manager
	DBPool     *pgxpool.Pool
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Save scheduler and worker pool (no further background flushes)
// 3. Session manager (final flush of every dirty session)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
		slog.Info(LogMsgSchedulerStopped)
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
		slog.Info(LogMsgWorkerPoolStopped)
	}

	if components.Sessions != nil {
		components.Sessions.Shutdown(ctx)
		slog.Info(LogMsgSessionsFlushed)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
		slog.Info(LogMsgDatabaseClosed)
	}

	slog.Info(LogMsgShutdownComplete)
}
