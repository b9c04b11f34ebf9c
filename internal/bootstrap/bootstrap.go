// Package bootstrap ties the server binary's lifecycle together: it runs
// the main loop until an OS signal arrives, then drains registered
// shutdown hooks.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	logger *zap.Logger

	mu    sync.Mutex
	hooks []func(ctx context.Context) error
}

func New(logger *zap.Logger) *App {
	return &App{logger: logger}
}

// AddShutdownHook registers a hook for graceful shutdown. Hooks run in
// reverse registration order, so dependencies registered first are
// closed last.
func (app *App) AddShutdownHook(hook func(ctx context.Context) error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.hooks = append(app.hooks, hook)
}

// Run executes the main loop until it returns or SIGINT/SIGTERM arrives.
// On a signal, the shutdown hooks are drained under a deadline and their
// joined error is returned.
func (app *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		app.logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return app.shutdown(shutdownCtx)
	case err := <-runErr:
		return err
	}
}

func (app *App) shutdown(ctx context.Context) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	var errs []error
	for i := len(app.hooks) - 1; i >= 0; i-- {
		if err := app.hooks[i](ctx); err != nil {
			app.logger.Error("shutdown hook failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
