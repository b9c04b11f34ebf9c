package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := New(zap.NewNop())
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run returns its error", func(t *testing.T) {
		app := New(zap.NewNop())
		want := errors.New("run failed")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
	})

	t.Run("shutdown hooks run in LIFO order on context cancel", func(t *testing.T) {
		app := New(zap.NewNop())
		var mu sync.Mutex
		var order []string
		record := func(name string) func(ctx context.Context) error {
			return func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			}
		}
		app.AddShutdownHook(record("first"))
		app.AddShutdownHook(record("second"))
		app.AddShutdownHook(record("third"))

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"third", "second", "first"}, order)
	})

	t.Run("hook errors are joined", func(t *testing.T) {
		app := New(zap.NewNop())
		first := errors.New("close db")
		second := errors.New("close server")
		app.AddShutdownHook(func(ctx context.Context) error { return first })
		app.AddShutdownHook(func(ctx context.Context) error { return second })

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
	})

	t.Run("hook registered from inside run callback", func(t *testing.T) {
		app := New(zap.NewNop())
		hookCalled := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.AddShutdownHook(func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})
}
