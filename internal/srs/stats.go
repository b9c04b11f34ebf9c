package srs

import (
	"math"
	"time"

	"github.com/avdeenkov/linguatrack/internal/dateutil"
)

// ReviewStats summarises a set of review log entries.
type ReviewStats struct {
	TotalReviews        int         `json:"total_reviews"`
	AverageQuality      float64     `json:"average_quality"`
	QualityDistribution map[int]int `json:"quality_distribution"`
	RetentionRate       float64     `json:"retention_rate"`
}

// LearnerReviewStats extends ReviewStats with whole-history aggregates.
type LearnerReviewStats struct {
	ReviewStats
	ReviewStreak     int        `json:"review_streak"`
	UniqueFlashcards int        `json:"unique_flashcards"`
	BusiestDay       *time.Time `json:"busiest_day"`
	BusiestDayCount  int        `json:"busiest_day_count"`
	TotalTimeMinutes int        `json:"total_time_minutes"`
}

// CalculateReviewStats aggregates quality counts over the given reviews.
// Retention is the fraction of reviews at or above PassQuality.
func CalculateReviewStats(reviews []Review) ReviewStats {
	distribution := make(map[int]int, MaxQuality+1)
	for q := 0; q <= MaxQuality; q++ {
		distribution[q] = 0
	}

	stats := ReviewStats{QualityDistribution: distribution}
	if len(reviews) == 0 {
		return stats
	}

	totalQuality := 0
	retained := 0
	for _, review := range reviews {
		distribution[review.Quality]++
		totalQuality += review.Quality
		if review.Quality >= PassQuality {
			retained++
		}
	}

	stats.TotalReviews = len(reviews)
	stats.AverageQuality = round2(float64(totalQuality) / float64(len(reviews)))
	stats.RetentionRate = round2(float64(retained) / float64(len(reviews)))
	return stats
}

// ReviewDayStreak counts consecutive calendar days with at least one
// review, scanning backward from today. reviewDates must be distinct
// calendar days in descending order.
func ReviewDayStreak(reviewDates []time.Time, today time.Time) int {
	streak := 0
	expected := dateutil.DayOf(today)

	for _, day := range reviewDates {
		day = dateutil.DayOf(day)
		if day.Equal(expected) {
			streak++
			expected = dateutil.AddDays(expected, -1)
		} else if day.Before(expected) {
			break
		}
	}
	return streak
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
