//go:generate mockgen -source=service.go -destination=../mocks/mock_streak_service.go -package=mocks

package streak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avdeenkov/linguatrack/internal/clock"
	"github.com/avdeenkov/linguatrack/internal/dateutil"
)

// ActivityChecker answers whether a learner did qualifying work on a day
// and lists the full qualifying history for recomputes.
type ActivityChecker interface {
	HasQualifyingActivity(ctx context.Context, learnerID uuid.UUID, day time.Time) (bool, error)
	ActiveDates(ctx context.Context, learnerID uuid.UUID) ([]time.Time, error)
}

type Service struct {
	repository Repository
	activity   ActivityChecker
	clock      clock.Clock
	logger     *zap.Logger
}

func NewService(repository Repository, activity ActivityChecker, clk clock.Clock, logger *zap.Logger) *Service {
	return &Service{
		repository: repository,
		activity:   activity,
		clock:      clk,
		logger:     logger,
	}
}

// Get returns the stored streak, or the zero state when the learner has
// no row yet. The zero state is not persisted until the first activity.
func (service *Service) Get(ctx context.Context, learnerID uuid.UUID) (*Streak, error) {
	streak, err := service.repository.Find(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		return NewStreak(learnerID), nil
	}
	return streak, nil
}

// CheckAndUpdate advances the streak for activity on the given day. A zero
// activityDay means the current day. Days without qualifying activity,
// repeats and backfill dates leave the state untouched and return it as-is.
func (service *Service) CheckAndUpdate(ctx context.Context, learnerID uuid.UUID, activityDay time.Time) (*Streak, error) {
	if activityDay.IsZero() {
		activityDay = service.clock.Now()
	}
	activityDay = dateutil.DayOf(activityDay)

	qualifying, err := service.activity.HasQualifyingActivity(ctx, learnerID, activityDay)
	if err != nil {
		return nil, fmt.Errorf("check qualifying activity: %w", err)
	}
	if !qualifying {
		return service.Get(ctx, learnerID)
	}

	streak, err := service.getOrCreate(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if !Apply(streak, activityDay) {
		return streak, nil
	}
	if err := service.repository.Update(ctx, streak); err != nil {
		return nil, fmt.Errorf("persist a streak update: %w", err)
	}
	return streak, nil
}

// RecordActivity satisfies the scheduler's streak hook.
func (service *Service) RecordActivity(ctx context.Context, learnerID uuid.UUID, day time.Time) error {
	_, err := service.CheckAndUpdate(ctx, learnerID, day)
	return err
}

func (service *Service) getOrCreate(ctx context.Context, learnerID uuid.UUID) (*Streak, error) {
	var streak *Streak
	err := retry.Do(
		func() error {
			found, err := service.repository.Find(ctx, learnerID)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if found != nil {
				streak = found
				return nil
			}

			created := NewStreak(learnerID)
			if err := service.repository.Create(ctx, created); err != nil {
				if errors.Is(err, ErrDuplicateStreak) {
					return err
				}
				return retry.Unrecoverable(err)
			}
			streak = created
			return nil
		},
		retry.Attempts(2),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("get or create a streak: %w", err)
	}
	return streak, nil
}

// Status classifies the learner's streak against today without mutating
// anything.
func (service *Service) Status(ctx context.Context, learnerID uuid.UUID) (Status, error) {
	today := dateutil.DayOf(service.clock.Now())

	hasToday, err := service.activity.HasQualifyingActivity(ctx, learnerID, today)
	if err != nil {
		return Status{}, fmt.Errorf("check qualifying activity: %w", err)
	}
	streak, err := service.Get(ctx, learnerID)
	if err != nil {
		return Status{}, err
	}
	return Classify(streak, today, hasToday), nil
}

const defaultLeaderboardLimit = 10

func (service *Service) Leaderboard(ctx context.Context, limit int) ([]Streak, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	return service.repository.Leaderboard(ctx, limit)
}

// Recalculate rebuilds the streak from the full activity history. The
// longest length keeps its stored value when the recompute comes out
// lower, unless the history is empty, which resets everything.
func (service *Service) Recalculate(ctx context.Context, learnerID uuid.UUID) (*Streak, error) {
	dates, err := service.activity.ActiveDates(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("collect active dates: %w", err)
	}

	streak, err := service.getOrCreate(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	current, longest, lastDay := Recompute(dates)
	streak.CurrentLen = current
	streak.LastDay = lastDay
	if len(dates) == 0 {
		streak.LongestLen = 0
	} else if longest > streak.LongestLen {
		streak.LongestLen = longest
	}

	if err := service.repository.Update(ctx, streak); err != nil {
		return nil, fmt.Errorf("persist a recalculated streak: %w", err)
	}
	return streak, nil
}

// ReconcileAll recalculates every recorded streak. Per-learner failures
// are logged and skipped so one bad row cannot stall the sweep.
func (service *Service) ReconcileAll(ctx context.Context) error {
	ids, err := service.repository.LearnerIDs(ctx)
	if err != nil {
		return fmt.Errorf("list streak learners: %w", err)
	}

	failed := 0
	for _, learnerID := range ids {
		if _, err := service.Recalculate(ctx, learnerID); err != nil {
			failed++
			service.logger.Warn("failed to recalculate a streak",
				zap.String("learner_id", learnerID.String()),
				zap.Error(err))
		}
	}
	service.logger.Info("streak reconciliation finished",
		zap.Int("learners", len(ids)),
		zap.Int("failed", failed))
	return nil
}
