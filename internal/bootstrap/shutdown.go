package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HexHarvest_Go/internal/database"
)

// Stoppable is an HTTP server that can drain in-flight requests
type Stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server Stoppable
	DBPool database.Pool
}

// GracefulShutdown stops accepting requests, waits for in-flight ones, then closes the pool.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Closing the pool waits for acquired connections, so it goes last
	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
