// Package activity keeps the per-learner daily activity ledger. One row
// accumulates a learner's counters for one calendar day; any positive
// counter makes the day qualify for streak purposes.
package activity

import (
	"time"

	"github.com/google/uuid"
)

// Field names an incrementable ledger counter.
type Field string

const (
	FieldLessons Field = "lessons_completed"
	FieldQuizzes Field = "quizzes_completed"
	FieldMinutes Field = "minutes"
	FieldPoints  Field = "points"
)

// ValidField reports whether the name maps to a ledger counter. Increments
// build SQL from the field name, so the whitelist is the injection guard.
func ValidField(name string) bool {
	switch Field(name) {
	case FieldLessons, FieldQuizzes, FieldMinutes, FieldPoints:
		return true
	}
	return false
}

// DailyActivity is one learner-day ledger row.
type DailyActivity struct {
	LearnerID        uuid.UUID `db:"learner_id" json:"learner_id"`
	Day              time.Time `db:"activity_dt" json:"day"`
	LessonsCompleted int       `db:"lessons_completed" json:"lessons_completed"`
	QuizzesCompleted int       `db:"quizzes_completed" json:"quizzes_completed"`
	Minutes          int       `db:"minutes" json:"minutes"`
	Points           int       `db:"points" json:"points"`
}

// Qualifying reports whether the day counts toward the learner's streak.
func (a DailyActivity) Qualifying() bool {
	return a.LessonsCompleted > 0 || a.QuizzesCompleted > 0 || a.Minutes > 0 || a.Points > 0
}
