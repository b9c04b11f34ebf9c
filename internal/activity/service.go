package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnknownField is returned when a counter name is not on the ledger.
	ErrUnknownField = errors.New("unknown activity field")

	// ErrNonPositiveAmount is returned for increments of zero or less.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// Record adds amount to one named counter on the learner's ledger day.
func (service *Service) Record(ctx context.Context, learnerID uuid.UUID, day time.Time, field string, amount int) error {
	if !ValidField(field) {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	return service.repository.Increment(ctx, learnerID, day, map[Field]int{Field(field): amount})
}

// AddReviewCredit books one graded review on the ledger.
func (service *Service) AddReviewCredit(ctx context.Context, learnerID uuid.UUID, day time.Time, minutes, points int) error {
	amounts := map[Field]int{}
	if minutes > 0 {
		amounts[FieldMinutes] = minutes
	}
	if points > 0 {
		amounts[FieldPoints] = points
	}
	return service.repository.Increment(ctx, learnerID, day, amounts)
}

// Get returns the ledger row for the day, or an all-zero row when the
// learner has no recorded activity on it.
func (service *Service) Get(ctx context.Context, learnerID uuid.UUID, day time.Time) (DailyActivity, error) {
	row, err := service.repository.Find(ctx, learnerID, day)
	if err != nil {
		return DailyActivity{}, err
	}
	if row == nil {
		return DailyActivity{LearnerID: learnerID, Day: day}, nil
	}
	return *row, nil
}

func (service *Service) Range(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]DailyActivity, error) {
	return service.repository.Range(ctx, learnerID, from, to)
}

// HasQualifyingActivity reports whether any counter is positive on the day.
func (service *Service) HasQualifyingActivity(ctx context.Context, learnerID uuid.UUID, day time.Time) (bool, error) {
	row, err := service.repository.Find(ctx, learnerID, day)
	if err != nil {
		return false, err
	}
	return row != nil && row.Qualifying(), nil
}

// ActiveDates returns every qualifying day in ascending order.
func (service *Service) ActiveDates(ctx context.Context, learnerID uuid.UUID) ([]time.Time, error) {
	return service.repository.ActiveDates(ctx, learnerID)
}
