//go:generate mockgen -source=service.go -destination=../mocks/mock_srs_service.go -package=mocks

package srs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avdeenkov/linguatrack/internal/clock"
	"github.com/avdeenkov/linguatrack/internal/config"
	"github.com/avdeenkov/linguatrack/internal/dateutil"
)

// ActivityRecorder credits review work to the learner's daily activity
// ledger.
type ActivityRecorder interface {
	AddReviewCredit(ctx context.Context, learnerID uuid.UUID, day time.Time, minutes, points int) error
}

// StreakTracker advances the learner's streak after qualifying activity.
type StreakTracker interface {
	RecordActivity(ctx context.Context, learnerID uuid.UUID, day time.Time) error
}

type Service struct {
	cards    CardRepository
	reviews  ReviewRepository
	activity ActivityRecorder
	streaks  StreakTracker
	clock    clock.Clock
	config   config.ReviewConfig
	logger   *zap.Logger
}

func NewService(
	cards CardRepository,
	reviews ReviewRepository,
	activity ActivityRecorder,
	streaks StreakTracker,
	clk clock.Clock,
	cfg config.ReviewConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		cards:    cards,
		reviews:  reviews,
		activity: activity,
		streaks:  streaks,
		clock:    clk,
		config:   cfg,
		logger:   logger,
	}
}

// GetOrCreateCard returns the card for the pair, creating it with the
// scheduling defaults when none exists. A concurrent creator losing the
// insert race re-reads the winner's row.
func (service *Service) GetOrCreateCard(ctx context.Context, learnerID, flashcardID uuid.UUID) (*Card, error) {
	var card *Card
	err := retry.Do(
		func() error {
			found, err := service.cards.FindByPair(ctx, learnerID, flashcardID)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if found != nil {
				card = found
				return nil
			}

			created := NewCard(learnerID, flashcardID, service.clock.Now())
			if err := service.cards.Create(ctx, created); err != nil {
				if errors.Is(err, ErrDuplicateCard) {
					return err
				}
				return retry.Unrecoverable(err)
			}
			card = created
			return nil
		},
		retry.Attempts(2),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("get or create a card: %w", err)
	}
	return card, nil
}

func (service *Service) GetCard(ctx context.Context, id uuid.UUID) (*Card, error) {
	card, err := service.cards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrNotFound
	}
	return card, nil
}

func (service *Service) ListCards(ctx context.Context, learnerID uuid.UUID, filter CardFilter) ([]Card, error) {
	if filter.DueOnly && filter.Now.IsZero() {
		filter.Now = service.clock.Now()
	}
	return service.cards.ListByLearner(ctx, learnerID, filter)
}

// ListDue returns the learner's review queue, oldest due first.
func (service *Service) ListDue(ctx context.Context, learnerID uuid.UUID, limit int) ([]Card, error) {
	if limit <= 0 {
		limit = defaultDueLimit
	}
	return service.cards.ListDue(ctx, learnerID, service.clock.Now(), limit)
}

const defaultDueLimit = 20

// Review grades one flashcard, reschedules its card and appends a review
// log entry. The card is created on the fly when the learner has never
// seen the flashcard before.
func (service *Service) Review(ctx context.Context, learnerID, flashcardID uuid.UUID, quality int) (*Card, *Review, error) {
	if quality < 0 || quality > MaxQuality {
		return nil, nil, ErrInvalidQuality
	}

	card, err := service.GetOrCreateCard(ctx, learnerID, flashcardID)
	if err != nil {
		return nil, nil, err
	}

	now := service.clock.Now()
	prevInterval := card.IntervalDays
	Advance(card, quality, now)

	review := &Review{
		ID:               uuid.New(),
		LearnerID:        learnerID,
		FlashcardID:      flashcardID,
		Quality:          quality,
		PrevIntervalDays: prevInterval,
		NewIntervalDays:  card.IntervalDays,
		NewEaseFactor:    card.EaseFactor,
		ReviewedAt:       now,
	}
	if err := service.reviews.RecordReview(ctx, card, review); err != nil {
		return nil, nil, fmt.Errorf("record a review: %w", err)
	}

	service.creditActivity(ctx, learnerID, now)
	return card, review, nil
}

// creditActivity books the review on the activity ledger and advances the
// streak. The review itself is already committed, so failures here are
// logged and swallowed.
func (service *Service) creditActivity(ctx context.Context, learnerID uuid.UUID, now time.Time) {
	day := dateutil.DayOf(now)
	if err := service.activity.AddReviewCredit(ctx, learnerID, day, service.config.MinutesPerCard, service.config.PointsPerCard); err != nil {
		service.logger.Warn("failed to credit review activity",
			zap.String("learner_id", learnerID.String()),
			zap.Error(err))
		return
	}
	if err := service.streaks.RecordActivity(ctx, learnerID, day); err != nil {
		service.logger.Warn("failed to advance the streak",
			zap.String("learner_id", learnerID.String()),
			zap.Error(err))
	}
}

func (service *Service) Suspend(ctx context.Context, id uuid.UUID) (*Card, error) {
	return service.setSuspended(ctx, id, true)
}

func (service *Service) Unsuspend(ctx context.Context, id uuid.UUID) (*Card, error) {
	return service.setSuspended(ctx, id, false)
}

func (service *Service) setSuspended(ctx context.Context, id uuid.UUID, suspended bool) (*Card, error) {
	card, err := service.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.Suspended == suspended {
		return card, nil
	}
	card.Suspended = suspended
	if err := service.cards.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("update a card suspension: %w", err)
	}
	return card, nil
}

func (service *Service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	return service.cards.Delete(ctx, id)
}

func (service *Service) Statistics(ctx context.Context, learnerID uuid.UUID) (CardStats, error) {
	return service.cards.Stats(ctx, learnerID, service.clock.Now())
}

func (service *Service) ListReviews(ctx context.Context, learnerID uuid.UUID, window ReviewWindow) ([]Review, error) {
	return service.reviews.ListByLearner(ctx, learnerID, window)
}

func (service *Service) FlashcardHistory(ctx context.Context, learnerID, flashcardID uuid.UUID) ([]Review, error) {
	return service.reviews.ListByFlashcard(ctx, learnerID, flashcardID)
}

// ReviewStatsToday aggregates the reviews done since midnight UTC.
func (service *Service) ReviewStatsToday(ctx context.Context, learnerID uuid.UUID) (ReviewStats, error) {
	day := dateutil.DayOf(service.clock.Now())
	next := dateutil.AddDays(day, 1)
	reviews, err := service.reviews.ListByLearner(ctx, learnerID, ReviewWindow{From: &day, To: &next})
	if err != nil {
		return ReviewStats{}, err
	}
	return CalculateReviewStats(reviews), nil
}

// ReviewStatsOverall aggregates the learner's whole review history,
// including the consecutive-review-day streak and the busiest day.
func (service *Service) ReviewStatsOverall(ctx context.Context, learnerID uuid.UUID) (LearnerReviewStats, error) {
	reviews, err := service.reviews.ListByLearner(ctx, learnerID, ReviewWindow{})
	if err != nil {
		return LearnerReviewStats{}, err
	}
	stats := LearnerReviewStats{
		ReviewStats:      CalculateReviewStats(reviews),
		TotalTimeMinutes: len(reviews) * service.config.MinutesPerCard,
	}

	days, err := service.reviews.DistinctReviewDays(ctx, learnerID)
	if err != nil {
		return LearnerReviewStats{}, err
	}
	stats.ReviewStreak = ReviewDayStreak(days, dateutil.DayOf(service.clock.Now()))

	unique, err := service.reviews.CountDistinctFlashcards(ctx, learnerID)
	if err != nil {
		return LearnerReviewStats{}, err
	}
	stats.UniqueFlashcards = unique

	busiest, err := service.reviews.BusiestDay(ctx, learnerID)
	if err != nil {
		return LearnerReviewStats{}, err
	}
	if busiest != nil {
		stats.BusiestDay = &busiest.Day
		stats.BusiestDayCount = busiest.Count
	}
	return stats, nil
}

// DeleteReview removes a single log entry. Card state is left alone: the
// schedule reflects reviews as they happened, not the surviving log.
func (service *Service) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return service.reviews.Delete(ctx, id)
}

// Calendar returns per-day review counts within [from, to).
func (service *Service) Calendar(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]DayCount, error) {
	return service.reviews.Calendar(ctx, learnerID, from, to)
}
