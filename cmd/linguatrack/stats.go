package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avdeenkov/linguatrack/internal/client"
	"github.com/avdeenkov/linguatrack/internal/config"
)

func newStatsCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <user-id>",
		Short: "Show card and review statistics for a learner",
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

			cards, err := apiClient.CardStatistics(ctx, learnerID)
			if err != nil {
				return err
			}
			reviews, err := apiClient.ReviewStatistics(ctx, learnerID)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Println("Cards")
			fmt.Printf("  total: %d  due: %d  suspended: %d\n", cards.TotalCards, cards.DueCards, cards.SuspendedCards)
			fmt.Printf("  new: %d  learning: %d  mature: %d\n", cards.NewCards, cards.LearningCards, cards.MatureCards)
			fmt.Printf("  avg ease factor: %.2f  avg interval: %.1f days\n", cards.AverageEaseFactor, cards.AverageInterval)

			bold.Println("Reviews")
			fmt.Printf("  total: %d  avg quality: %.2f  retention: %.0f%%\n",
				reviews.TotalReviews, reviews.AverageQuality, reviews.RetentionRate*100)
			fmt.Printf("  review streak: %d days  unique flashcards: %d  time: %d min\n",
				reviews.ReviewStreak, reviews.UniqueFlashcards, reviews.TotalTimeMinutes)
			return nil
		},
	}
}

func newDueCommand(loadConfig func() (*config.Config, error)) *cobra.Command {
	var limit int

	dueCommand := &cobra.Command{
		Use:   "due <user-id>",
		Short: "List a learner's due cards",
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

			cards, err := client.New(cfg.Client).DueCards(cmd.Context(), learnerID, limit)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				color.Green("nothing due")
				return nil
			}
			for _, card := range cards {
				fmt.Printf("%s  interval %d days  ef %.2f  due %s\n",
					card.FlashcardID, card.IntervalDays, card.EaseFactor, card.DueAt)
			}
			return nil
		},
	}
	dueCommand.Flags().IntVar(&limit, "limit", 20, "maximum cards to list")
	return dueCommand
}
