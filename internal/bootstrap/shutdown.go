package bootstrap

import (
	"context"
	"log/slog"

	"github.com/journey-app/journey/internal/database"
	"github.com/journey-app/journey/internal/leaderboard"
	"github.com/journey-app/journey/internal/server"
	"github.com/journey-app/journey/internal/telemetry"
	"github.com/journey-app/journey/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	Scheduler   *worker.Scheduler
	Leaderboard *leaderboard.Store
	Events      *EventSystem
	Telemetry   telemetry.ShutdownFunc
	DB          database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Background jobs (no new draws or refreshes)
// 3. Leaderboard store
// 4. Event publisher (flush pending retries, close the broker connection)
// 5. Tracer provider, then the database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgShuttingDownScheduler)
		if err := c.Scheduler.Stop(); err != nil {
			slog.Error(LogMsgSchedulerShutdownFailed, "error", err)
		}
	}

	if c.Leaderboard != nil {
		c.Leaderboard.Close()
	}

	if c.Events != nil {
		c.Events.Shutdown(ctx)
	}

	if c.Telemetry != nil {
		if err := c.Telemetry(ctx); err != nil {
			slog.Error(LogMsgTelemetryShutdownFailed, "error", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
