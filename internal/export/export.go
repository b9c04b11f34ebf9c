// Package export renders learner statistics into an .xlsx workbook.
package export

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/avdeenkov/linguatrack/internal/srs"
)

// LearnerStats is one learner's worth of export data.
type LearnerStats struct {
	LearnerID uuid.UUID
	Cards     srs.CardStats
	Reviews   srs.LearnerReviewStats
}

const (
	cardsSheet     = "Cards"
	reviewsSheet   = "Reviews"
	histogramSheet = "Quality Histogram"
)

// BuildWorkbook lays out one row per learner on the cards and reviews
// sheets and a quality histogram block per learner on the third.
func BuildWorkbook(learners []LearnerStats) (*excelize.File, error) {
	file := excelize.NewFile()

	if err := writeCardsSheet(file, learners); err != nil {
		return nil, err
	}
	if err := writeReviewsSheet(file, learners); err != nil {
		return nil, err
	}
	if err := writeHistogramSheet(file, learners); err != nil {
		return nil, err
	}

	_ = file.DeleteSheet("Sheet1")
	return file, nil
}

// WriteFile builds the workbook and saves it at path.
func WriteFile(path string, learners []LearnerStats) error {
	file, err := BuildWorkbook(learners)
	if err != nil {
		return err
	}
	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save the workbook: %w", err)
	}
	return nil
}

func writeCardsSheet(file *excelize.File, learners []LearnerStats) error {
	if _, err := file.NewSheet(cardsSheet); err != nil {
		return fmt.Errorf("create the cards sheet: %w", err)
	}

	headers := []interface{}{
		"Learner", "Total", "Due", "Suspended", "New", "Learning", "Mature",
		"Avg ease factor", "Avg interval (days)",
	}
	if err := file.SetSheetRow(cardsSheet, "A1", &headers); err != nil {
		return err
	}
	for i, learner := range learners {
		row := []interface{}{
			learner.LearnerID.String(),
			learner.Cards.TotalCards,
			learner.Cards.DueCards,
			learner.Cards.SuspendedCards,
			learner.Cards.NewCards,
			learner.Cards.LearningCards,
			learner.Cards.MatureCards,
			learner.Cards.AverageEaseFactor,
			learner.Cards.AverageInterval,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(cardsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeReviewsSheet(file *excelize.File, learners []LearnerStats) error {
	if _, err := file.NewSheet(reviewsSheet); err != nil {
		return fmt.Errorf("create the reviews sheet: %w", err)
	}

	headers := []interface{}{
		"Learner", "Total reviews", "Avg quality", "Retention rate",
		"Review streak", "Unique flashcards", "Total minutes",
	}
	if err := file.SetSheetRow(reviewsSheet, "A1", &headers); err != nil {
		return err
	}
	for i, learner := range learners {
		row := []interface{}{
			learner.LearnerID.String(),
			learner.Reviews.TotalReviews,
			learner.Reviews.AverageQuality,
			learner.Reviews.RetentionRate,
			learner.Reviews.ReviewStreak,
			learner.Reviews.UniqueFlashcards,
			learner.Reviews.TotalTimeMinutes,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(reviewsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeHistogramSheet(file *excelize.File, learners []LearnerStats) error {
	if _, err := file.NewSheet(histogramSheet); err != nil {
		return fmt.Errorf("create the histogram sheet: %w", err)
	}

	headers := []interface{}{"Learner", "Q0", "Q1", "Q2", "Q3", "Q4", "Q5"}
	if err := file.SetSheetRow(histogramSheet, "A1", &headers); err != nil {
		return err
	}
	for i, learner := range learners {
		row := []interface{}{learner.LearnerID.String()}
		for quality := 0; quality <= srs.MaxQuality; quality++ {
			row = append(row, learner.Reviews.QualityDistribution[quality])
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(histogramSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
