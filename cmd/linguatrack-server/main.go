package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdeenkov/linguatrack/internal/activity"
	"github.com/avdeenkov/linguatrack/internal/bootstrap"
	"github.com/avdeenkov/linguatrack/internal/clock"
	"github.com/avdeenkov/linguatrack/internal/config"
	"github.com/avdeenkov/linguatrack/internal/database"
	"github.com/avdeenkov/linguatrack/internal/jobs"
	"github.com/avdeenkov/linguatrack/internal/logger"
	"github.com/avdeenkov/linguatrack/internal/server"
	"github.com/avdeenkov/linguatrack/internal/srs"
	"github.com/avdeenkov/linguatrack/internal/streak"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var debug bool

	rootCommand := &cobra.Command{
		Use:   "linguatrack-server",
		Short: "Serve the learning progress API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configFile, debug)
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file")
	rootCommand.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging regardless of env")
	return rootCommand
}

func run(ctx context.Context, configFile string, debug bool) error {
	_ = godotenv.Load()

	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	env := cfg.Env
	if debug {
		env = "development"
	}
	zapLogger, err := logger.New(env)
	if err != nil {
		return err
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	systemClock := clock.System{}
	activityService := activity.NewService(activity.NewRepository(db))
	streakService := streak.NewService(streak.NewRepository(db), activityService, systemClock, zapLogger)
	srsService := srs.NewService(
		srs.NewCardRepository(db),
		srs.NewReviewRepository(db),
		activityService,
		streakService,
		systemClock,
		cfg.Review,
		zapLogger,
	)

	httpServer := server.New(cfg.Server, zapLogger, srsService, streakService)
	jobRunner, err := jobs.NewRunner(cfg.Jobs, streakService, zapLogger)
	if err != nil {
		return err
	}

	app := bootstrap.New(zapLogger)
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		jobRunner.Stop()
		return nil
	})
	app.AddShutdownHook(func(ctx context.Context) error {
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return app.Run(ctx, func(ctx context.Context) error {
		jobRunner.Start()
		zapLogger.Info("starting", zap.String("env", cfg.Env))
		return httpServer.Start()
	})
}
