package bootstrap

import (
	"context"
	"log/slog"

	"github.com/binderapp/binder/internal/event"
	"github.com/binderapp/binder/internal/scheduler"
	"github.com/binderapp/binder/internal/server"
	"github.com/binderapp/binder/internal/sse"
	"github.com/binderapp/binder/internal/storage"
	"github.com/binderapp/binder/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Store              storage.KV
}

// GracefulShutdown stops all application components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (finish in-flight background jobs)
// 3. SSE hub (disconnect stream clients)
// 4. Event publisher (flush pending events)
// 5. Storage (everything above may still write until this point)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
		slog.Info(LogMsgSchedulerStopped)
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
		slog.Info(LogMsgWorkerPoolStopped)
	}

	if components.Hub != nil {
		components.Hub.Stop()
		slog.Info(LogMsgSSEHubStopped)
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
