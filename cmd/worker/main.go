package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"content-dispatch/cmd/bootstrap"
	"content-dispatch/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// shutdownGrace leaves room for WORKER_SHUTDOWN_TIMEOUT plus closing the
// redis client and the pool.
const shutdownGrace = 45 * time.Second

func main() {
	app := fx.New(
		bootstrap.Module,
		components.WorkerModule,
		fx.StopTimeout(shutdownGrace),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("worker failed to start", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()
	slog.Info("worker shutting down", "signal", sig.Signal)

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("worker failed to stop cleanly", "error", err)
		os.Exit(1)
	}

	slog.Info("worker stopped")
}
