package jobs

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avdeenkov/linguatrack/internal/config"
)

type recordingReconciler struct {
	mu    sync.Mutex
	calls int
}

func (r *recordingReconciler) ReconcileAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return nil
}

func (r *recordingReconciler) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestNewRunner(t *testing.T) {
	t.Run("invalid cron expression", func(t *testing.T) {
		_, err := NewRunner(config.JobsConfig{StreakReconcileCron: "not a cron"}, &recordingReconciler{}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("empty expression disables the sweep", func(t *testing.T) {
		runner, err := NewRunner(config.JobsConfig{}, &recordingReconciler{}, zap.NewNop())
		require.NoError(t, err)
		assert.Empty(t, runner.scheduler.Jobs())
	})

	t.Run("valid expression registers the job", func(t *testing.T) {
		runner, err := NewRunner(config.JobsConfig{StreakReconcileCron: "30 3 * * *"}, &recordingReconciler{}, zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, runner.scheduler.Jobs(), 1)
	})
}

func TestRunner_StartStop(t *testing.T) {
	reconciler := &recordingReconciler{}
	runner, err := NewRunner(config.JobsConfig{StreakReconcileCron: "30 3 * * *"}, reconciler, zap.NewNop())
	require.NoError(t, err)

	runner.Start()
	runner.Stop()
	assert.Equal(t, 0, reconciler.count())
}
