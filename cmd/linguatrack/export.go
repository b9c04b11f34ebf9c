package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avdeenkov/linguatrack/internal/activity"
	"github.com/avdeenkov/linguatrack/internal/clock"
	"github.com/avdeenkov/linguatrack/internal/config"
	"github.com/avdeenkov/linguatrack/internal/database"
	"github.com/avdeenkov/linguatrack/internal/export"
	"github.com/avdeenkov/linguatrack/internal/logger"
	"github.com/avdeenkov/linguatrack/internal/srs"
	"github.com/avdeenkov/linguatrack/internal/streak"
)

func newExportCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	var (
		output string
		users  []string
	)

	exportCommand := &cobra.Command{
		Use:   "export",
		Short: "Export learner statistics to an .xlsx workbook",
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

			ctx := cmd.Context()
			learnerIDs := make([]uuid.UUID, 0, len(users))
			for _, raw := range users {
				learnerID, err := uuid.Parse(raw)
				if err != nil {
					return fmt.Errorf("invalid user id %q: %w", raw, err)
				}
				learnerIDs = append(learnerIDs, learnerID)
			}
			if len(learnerIDs) == 0 {
				learnerIDs, err = streak.NewRepository(db).LearnerIDs(ctx)
				if err != nil {
					return err
				}
			}
			if len(learnerIDs) == 0 {
				return fmt.Errorf("no learners to export")
			}

			learners := make([]export.LearnerStats, 0, len(learnerIDs))
			for _, learnerID := range learnerIDs {
				cards, err := srsService.Statistics(ctx, learnerID)
				if err != nil {
					return err
				}
				reviews, err := srsService.ReviewStatsOverall(ctx, learnerID)
				if err != nil {
					return err
				}
				learners = append(learners, export.LearnerStats{
					LearnerID: learnerID,
					Cards:     cards,
					Reviews:   reviews,
				})
			}

			if err := export.WriteFile(output, learners); err != nil {
				return err
			}
			color.Green("exported %d learners to %s", len(learners), output)
			return nil
		},
	}
	exportCommand.Flags().StringVarP(&output, "output", "o", "linguatrack-stats.xlsx", "output file")
	exportCommand.Flags().StringSliceVar(&users, "user", nil, "learner ids to export (default: every learner with a streak)")
	return exportCommand
}
