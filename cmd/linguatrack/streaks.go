package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avdeenkov/linguatrack/internal/activity"
	"github.com/avdeenkov/linguatrack/internal/client"
	"github.com/avdeenkov/linguatrack/internal/clock"
	"github.com/avdeenkov/linguatrack/internal/config"
	"github.com/avdeenkov/linguatrack/internal/database"
	"github.com/avdeenkov/linguatrack/internal/logger"
	"github.com/avdeenkov/linguatrack/internal/streak"
)

func newCheckStreakCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	var date string

	checkCommand := &cobra.Command{
		Use:   "check-streak <user-id>",
		Short: "Advance a learner's streak and show its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			learnerID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			apiClient := client.New(cfg.Client)
			ctx := cmd.Context()

			updated, err := apiClient.CheckStreak(ctx, learnerID, date)
			if err != nil {
				return err
			}
			status, err := apiClient.StreakStatus(ctx, learnerID)
			if err != nil {
				return err
			}

			fmt.Printf("current: %d days  longest: %d days\n", updated.CurrentLength, updated.LongestLength)
			switch status.State {
			case streak.StateActive:
				color.Green("state: %s", status.State)
			case streak.StateAtRisk:
				color.Yellow("state: %s", status.State)
			default:
				color.Red("state: %s", status.State)
			}
			return nil
		},
	}
	checkCommand.Flags().StringVar(&date, "date", "", "activity date (YYYY-MM-DD, defaults to today)")
	return checkCommand
}

func newLeaderboardCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	var limit int

	leaderboardCommand := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the longest active streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			streaks, err := client.New(cfg.Client).Leaderboard(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(streaks) == 0 {
				color.Yellow("no active streaks")
				return nil
			}
			for i, s := range streaks {
				fmt.Printf("%2d. %s  current %d  longest %d\n", i+1, s.UserID, s.CurrentLength, s.LongestLength)
			}
			return nil
		},
	}
	leaderboardCommand.Flags().IntVar(&limit, "limit", 10, "number of learners to show")
	return leaderboardCommand
}

// newRecalculateStreaksCommand rebuilds streaks straight from the
// database, without a running server.
func newRecalculateStreaksCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	var userID string

	recalculateCommand := &cobra.Command{
		Use:   "recalculate-streaks",
		Short: "Rebuild streaks from the activity ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			zapLogger, err := logger.New(cfg.Env)
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			activityService := activity.NewService(activity.NewRepository(db))
			streakService := streak.NewService(streak.NewRepository(db), activityService, clock.System{}, zapLogger)

			ctx := cmd.Context()
			if userID != "" {
				learnerID, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
				updated, err := streakService.Recalculate(ctx, learnerID)
				if err != nil {
					return err
				}
				color.Green("recalculated: current %d, longest %d", updated.CurrentLen, updated.LongestLen)
				return nil
			}

			if err := streakService.ReconcileAll(ctx); err != nil {
				return err
			}
			color.Green("all streaks recalculated")
			return nil
		},
	}
	recalculateCommand.Flags().StringVar(&userID, "user", "", "recalculate a single learner")
	return recalculateCommand
}
