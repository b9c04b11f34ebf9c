//go:generate mockgen -source=repository.go -destination=../mocks/mock_srs_repository.go -package=mocks

package srs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avdeenkov/linguatrack/internal/database"
)

// CardFilter narrows ListByLearner results.
type CardFilter struct {
	Suspended *bool
	DueOnly   bool
	Now       time.Time
}

type CardRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Card, error)
	FindByPair(ctx context.Context, learnerID, flashcardID uuid.UUID) (*Card, error)
	Create(ctx context.Context, card *Card) error
	Update(ctx context.Context, card *Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByLearner(ctx context.Context, learnerID uuid.UUID, filter CardFilter) ([]Card, error)
	ListDue(ctx context.Context, learnerID uuid.UUID, now time.Time, limit int) ([]Card, error)
	Stats(ctx context.Context, learnerID uuid.UUID, now time.Time) (CardStats, error)
}

type ReviewRepository interface {
	// RecordReview persists the updated card and the review log entry in a
	// single transaction.
	RecordReview(ctx context.Context, card *Card, review *Review) error
	ListByLearner(ctx context.Context, learnerID uuid.UUID, window ReviewWindow) ([]Review, error)
	ListByFlashcard(ctx context.Context, learnerID, flashcardID uuid.UUID) ([]Review, error)
	DistinctReviewDays(ctx context.Context, learnerID uuid.UUID) ([]time.Time, error)
	CountDistinctFlashcards(ctx context.Context, learnerID uuid.UUID) (int, error)
	BusiestDay(ctx context.Context, learnerID uuid.UUID) (*DayCount, error)
	Calendar(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]DayCount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) CardRepository {
	return &cardRepository{db: db}
}

const cardColumns = "id, learner_id, flashcard_id, ease_factor, interval_days, repetition, due_at, suspended"

func (repo *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*Card, error) {
	var card Card
	query := fmt.Sprintf("SELECT %s FROM sr_cards WHERE id = ?", cardColumns)
	if err := repo.db.GetContext(ctx, &card, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select a card by id: %w", err)
	}
	return &card, nil
}

func (repo *cardRepository) FindByPair(ctx context.Context, learnerID, flashcardID uuid.UUID) (*Card, error) {
	var card Card
	query := fmt.Sprintf("SELECT %s FROM sr_cards WHERE learner_id = ? AND flashcard_id = ?", cardColumns)
	if err := repo.db.GetContext(ctx, &card, query, learnerID.String(), flashcardID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select a card by learner and flashcard: %w", err)
	}
	return &card, nil
}

func (repo *cardRepository) Create(ctx context.Context, card *Card) error {
	query := "INSERT INTO sr_cards (id, learner_id, flashcard_id, ease_factor, interval_days, repetition, due_at, suspended) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := repo.db.ExecContext(ctx, query,
		card.ID.String(),
		card.LearnerID.String(),
		card.FlashcardID.String(),
		card.EaseFactor,
		card.IntervalDays,
		card.Repetition,
		card.DueAt,
		card.Suspended,
	)
	if err != nil {
		if database.IsDuplicateEntry(err) {
			return ErrDuplicateCard
		}
		return fmt.Errorf("insert a card: %w", err)
	}
	return nil
}

func (repo *cardRepository) Update(ctx context.Context, card *Card) error {
	query := "UPDATE sr_cards SET ease_factor = ?, interval_days = ?, repetition = ?, due_at = ?, suspended = ? WHERE id = ?"
	result, err := repo.db.ExecContext(ctx, query,
		card.EaseFactor,
		card.IntervalDays,
		card.Repetition,
		card.DueAt,
		card.Suspended,
		card.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update a card: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		if existing, findErr := repo.FindByID(ctx, card.ID); findErr == nil && existing == nil {
			return ErrNotFound
		}
	}
	return nil
}

func (repo *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.db.ExecContext(ctx, "DELETE FROM sr_cards WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete a card: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("count deleted cards: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *cardRepository) ListByLearner(ctx context.Context, learnerID uuid.UUID, filter CardFilter) ([]Card, error) {
	query := fmt.Sprintf("SELECT %s FROM sr_cards WHERE learner_id = ?", cardColumns)
	args := []interface{}{learnerID.String()}
	if filter.Suspended != nil {
		query += " AND suspended = ?"
		args = append(args, *filter.Suspended)
	}
	if filter.DueOnly {
		query += " AND due_at <= ?"
		args = append(args, filter.Now)
	}
	query += " ORDER BY due_at ASC"

	var cards []Card
	if err := repo.db.SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, fmt.Errorf("select cards by learner: %w", err)
	}
	return cards, nil
}

func (repo *cardRepository) ListDue(ctx context.Context, learnerID uuid.UUID, now time.Time, limit int) ([]Card, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM sr_cards WHERE learner_id = ? AND suspended = FALSE AND due_at <= ? ORDER BY due_at ASC LIMIT ?",
		cardColumns,
	)
	var cards []Card
	if err := repo.db.SelectContext(ctx, &cards, query, learnerID.String(), now, limit); err != nil {
		return nil, fmt.Errorf("select due cards: %w", err)
	}
	return cards, nil
}

func (repo *cardRepository) Stats(ctx context.Context, learnerID uuid.UUID, now time.Time) (CardStats, error) {
	query := "SELECT " +
		"CAST(COUNT(*) AS SIGNED) AS total_cards, " +
		"CAST(COALESCE(SUM(suspended = FALSE AND due_at <= ?), 0) AS SIGNED) AS due_cards, " +
		"CAST(COALESCE(SUM(suspended = TRUE), 0) AS SIGNED) AS suspended_cards, " +
		"CAST(COALESCE(SUM(suspended = FALSE AND repetition = 0), 0) AS SIGNED) AS new_cards, " +
		"CAST(COALESCE(SUM(suspended = FALSE AND repetition > 0 AND repetition < 3), 0) AS SIGNED) AS learning_cards, " +
		"CAST(COALESCE(SUM(suspended = FALSE AND repetition >= 3), 0) AS SIGNED) AS mature_cards, " +
		"COALESCE(AVG(CASE WHEN suspended = FALSE THEN ease_factor END), 0) AS average_ease_factor, " +
		"COALESCE(AVG(CASE WHEN suspended = FALSE THEN interval_days END), 0) AS average_interval " +
		"FROM sr_cards WHERE learner_id = ?"

	var stats CardStats
	if err := repo.db.GetContext(ctx, &stats, query, now, learnerID.String()); err != nil {
		return CardStats{}, fmt.Errorf("select card statistics: %w", err)
	}
	return stats, nil
}

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = "id, learner_id, flashcard_id, quality, prev_interval_days, new_interval_days, new_ease_factor, reviewed_at"

func (repo *reviewRepository) RecordReview(ctx context.Context, card *Card, review *Review) error {
	return database.RunInTx(ctx, repo.db, func(ctx context.Context, tx *sqlx.Tx) error {
		updateQuery := "UPDATE sr_cards SET ease_factor = ?, interval_days = ?, repetition = ?, due_at = ?, suspended = ? WHERE id = ?"
		if _, err := tx.ExecContext(ctx, updateQuery,
			card.EaseFactor,
			card.IntervalDays,
			card.Repetition,
			card.DueAt,
			card.Suspended,
			card.ID.String(),
		); err != nil {
			return fmt.Errorf("update a reviewed card: %w", err)
		}

		insertQuery := "INSERT INTO sr_reviews (id, learner_id, flashcard_id, quality, prev_interval_days, new_interval_days, new_ease_factor, reviewed_at) " +
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
		if _, err := tx.ExecContext(ctx, insertQuery,
			review.ID.String(),
			review.LearnerID.String(),
			review.FlashcardID.String(),
			review.Quality,
			review.PrevIntervalDays,
			review.NewIntervalDays,
			review.NewEaseFactor,
			review.ReviewedAt,
		); err != nil {
			return fmt.Errorf("insert a review: %w", err)
		}
		return nil
	})
}

func (repo *reviewRepository) ListByLearner(ctx context.Context, learnerID uuid.UUID, window ReviewWindow) ([]Review, error) {
	query := fmt.Sprintf("SELECT %s FROM sr_reviews WHERE learner_id = ?", reviewColumns)
	args := []interface{}{learnerID.String()}
	if window.From != nil {
		query += " AND reviewed_at >= ?"
		args = append(args, *window.From)
	}
	if window.To != nil {
		query += " AND reviewed_at < ?"
		args = append(args, *window.To)
	}
	query += " ORDER BY reviewed_at DESC"
	if window.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, window.Limit)
		if window.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, window.Offset)
		}
	}

	var reviews []Review
	if err := repo.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("select reviews by learner: %w", err)
	}
	return reviews, nil
}

func (repo *reviewRepository) ListByFlashcard(ctx context.Context, learnerID, flashcardID uuid.UUID) ([]Review, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM sr_reviews WHERE learner_id = ? AND flashcard_id = ? ORDER BY reviewed_at DESC",
		reviewColumns,
	)
	var reviews []Review
	if err := repo.db.SelectContext(ctx, &reviews, query, learnerID.String(), flashcardID.String()); err != nil {
		return nil, fmt.Errorf("select reviews by flashcard: %w", err)
	}
	return reviews, nil
}

func (repo *reviewRepository) DistinctReviewDays(ctx context.Context, learnerID uuid.UUID) ([]time.Time, error) {
	query := "SELECT DISTINCT DATE(reviewed_at) AS review_day FROM sr_reviews WHERE learner_id = ? ORDER BY review_day DESC"
	var days []time.Time
	if err := repo.db.SelectContext(ctx, &days, query, learnerID.String()); err != nil {
		return nil, fmt.Errorf("select distinct review days: %w", err)
	}
	return days, nil
}

func (repo *reviewRepository) CountDistinctFlashcards(ctx context.Context, learnerID uuid.UUID) (int, error) {
	var count int
	query := "SELECT COUNT(DISTINCT flashcard_id) FROM sr_reviews WHERE learner_id = ?"
	if err := repo.db.GetContext(ctx, &count, query, learnerID.String()); err != nil {
		return 0, fmt.Errorf("count distinct reviewed flashcards: %w", err)
	}
	return count, nil
}

func (repo *reviewRepository) BusiestDay(ctx context.Context, learnerID uuid.UUID) (*DayCount, error) {
	query := "SELECT DATE(reviewed_at) AS review_date, CAST(COUNT(*) AS SIGNED) AS review_count FROM sr_reviews " +
		"WHERE learner_id = ? GROUP BY DATE(reviewed_at) ORDER BY review_count DESC, review_date DESC LIMIT 1"
	var busiest DayCount
	if err := repo.db.GetContext(ctx, &busiest, query, learnerID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select the busiest review day: %w", err)
	}
	return &busiest, nil
}

func (repo *reviewRepository) Calendar(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]DayCount, error) {
	query := "SELECT DATE(reviewed_at) AS review_date, CAST(COUNT(*) AS SIGNED) AS review_count FROM sr_reviews " +
		"WHERE learner_id = ? AND reviewed_at >= ? AND reviewed_at < ? GROUP BY DATE(reviewed_at) ORDER BY review_date ASC"
	var days []DayCount
	if err := repo.db.SelectContext(ctx, &days, query, learnerID.String(), from, to); err != nil {
		return nil, fmt.Errorf("select the review calendar: %w", err)
	}
	return days, nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.db.ExecContext(ctx, "DELETE FROM sr_reviews WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete a review: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("count deleted reviews: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
