// Package srs implements the spaced-repetition scheduler: per-learner
// review cards, the SM-2 derived update rule, and the append-only review
// log with its derived statistics.
package srs

import (
	"time"

	"github.com/google/uuid"
)

// Card holds the schedule state for one learner and flashcard pair.
// At most one card exists per pair.
type Card struct {
	ID           uuid.UUID `db:"id"`
	LearnerID    uuid.UUID `db:"learner_id"`
	FlashcardID  uuid.UUID `db:"flashcard_id"`
	EaseFactor   float64   `db:"ease_factor"`
	IntervalDays int       `db:"interval_days"`
	Repetition   int       `db:"repetition"`
	DueAt        time.Time `db:"due_at"`
	Suspended    bool      `db:"suspended"`
}

// NewCard returns a card with the scheduling defaults: due immediately,
// no repetitions, ease factor 2.5.
func NewCard(learnerID, flashcardID uuid.UUID, now time.Time) *Card {
	return &Card{
		ID:          uuid.New(),
		LearnerID:   learnerID,
		FlashcardID: flashcardID,
		EaseFactor:  DefaultEaseFactor,
		DueAt:       now,
	}
}

// Review is an immutable log entry recording one review event together
// with the schedule values it produced.
type Review struct {
	ID               uuid.UUID `db:"id"`
	LearnerID        uuid.UUID `db:"learner_id"`
	FlashcardID      uuid.UUID `db:"flashcard_id"`
	Quality          int       `db:"quality"`
	PrevIntervalDays int       `db:"prev_interval_days"`
	NewIntervalDays  int       `db:"new_interval_days"`
	NewEaseFactor    float64   `db:"new_ease_factor"`
	ReviewedAt       time.Time `db:"reviewed_at"`
}

// CardStats aggregates a learner's deck. Maturity buckets follow the
// repetition count: new (0), learning (1-2), mature (3+); suspended cards
// are excluded from the maturity buckets and the averages.
type CardStats struct {
	TotalCards        int     `db:"total_cards" json:"total_cards"`
	DueCards          int     `db:"due_cards" json:"due_cards"`
	SuspendedCards    int     `db:"suspended_cards" json:"suspended_cards"`
	NewCards          int     `db:"new_cards" json:"new_cards"`
	LearningCards     int     `db:"learning_cards" json:"learning_cards"`
	MatureCards       int     `db:"mature_cards" json:"mature_cards"`
	AverageEaseFactor float64 `db:"average_ease_factor" json:"average_ease_factor"`
	AverageInterval   float64 `db:"average_interval" json:"average_interval"`
}

// DayCount is a number of reviews on one calendar day.
type DayCount struct {
	Day   time.Time `db:"review_date"`
	Count int       `db:"review_count"`
}

// ReviewWindow filters and pages a learner's review history.
type ReviewWindow struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}
