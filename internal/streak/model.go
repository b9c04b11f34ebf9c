// Package streak maintains per-learner consecutive-activity-day counters.
// The incremental transition advances a streak one activity day at a time;
// a full recompute from the activity ledger exists as the reconciliation
// path when the two drift.
package streak

import (
	"time"

	"github.com/google/uuid"
)

// Streak is the stored counter state for one learner. LastDay is nil
// until the first qualifying activity.
type Streak struct {
	LearnerID  uuid.UUID  `db:"learner_id" json:"learner_id"`
	CurrentLen int        `db:"current_len" json:"current_length"`
	LongestLen int        `db:"longest_len" json:"longest_length"`
	LastDay    *time.Time `db:"last_day" json:"last_active_day"`
}

// NewStreak returns the zero state for a learner.
func NewStreak(learnerID uuid.UUID) *Streak {
	return &Streak{LearnerID: learnerID}
}

// State classifies a streak relative to today.
type State string

const (
	// StateActive means the learner has already secured today.
	StateActive State = "active"
	// StateAtRisk means yesterday counted but today has not yet.
	StateAtRisk State = "at_risk"
	// StateBroken means more than one day has passed since the last
	// qualifying activity.
	StateBroken State = "broken"
	// StateInactive means the learner has never had qualifying activity.
	StateInactive State = "inactive"
)

// Status is the read-only streak descriptor returned to callers.
type Status struct {
	LearnerID     uuid.UUID  `json:"learner_id"`
	CurrentLength int        `json:"current_length"`
	LongestLength int        `json:"longest_length"`
	LastActiveDay *time.Time `json:"last_active_day"`
	DaysSinceLast *int       `json:"days_since_last"`
	State         State      `json:"state"`
}
