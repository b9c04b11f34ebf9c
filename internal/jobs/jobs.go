// Package jobs runs the periodic maintenance work for the progress
// service.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/avdeenkov/linguatrack/internal/config"
)

// StreakReconciler is the sweep the nightly job runs.
type StreakReconciler interface {
	ReconcileAll(ctx context.Context) error
}

type Runner struct {
	scheduler *gocron.Scheduler
	logger    *zap.Logger
}

// NewRunner wires the configured jobs onto a scheduler without starting
// it. An empty cron expression disables the streak sweep.
func NewRunner(cfg config.JobsConfig, streaks StreakReconciler, logger *zap.Logger) (*Runner, error) {
	scheduler := gocron.NewScheduler(time.UTC)

	if cfg.StreakReconcileCron != "" {
		_, err := scheduler.Cron(cfg.StreakReconcileCron).Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			if err := streaks.ReconcileAll(ctx); err != nil {
				logger.Error("streak reconciliation sweep failed", zap.Error(err))
			}
		})
		if err != nil {
			return nil, fmt.Errorf("schedule the streak reconciliation job: %w", err)
		}
	}

	return &Runner{scheduler: scheduler, logger: logger}, nil
}

// Start launches the scheduler in the background.
func (runner *Runner) Start() {
	jobs := len(runner.scheduler.Jobs())
	runner.scheduler.StartAsync()
	runner.logger.Info("job scheduler started", zap.Int("jobs", jobs))
}

// Stop waits for running jobs to finish.
func (runner *Runner) Stop() {
	runner.scheduler.Stop()
	runner.logger.Info("job scheduler stopped")
}
