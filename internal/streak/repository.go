//go:generate mockgen -source=repository.go -destination=../mocks/mock_streak_repository.go -package=mocks

package streak

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avdeenkov/linguatrack/internal/database"
)

var (
	// ErrNotFound is returned by explicit lookups that miss.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateStreak is returned when an insert races another writer
	// creating the same learner's row.
	ErrDuplicateStreak = errors.New("streak already exists for learner")
)

type Repository interface {
	Find(ctx context.Context, learnerID uuid.UUID) (*Streak, error)
	Create(ctx context.Context, streak *Streak) error
	Update(ctx context.Context, streak *Streak) error
	// Leaderboard returns learners with a positive current length, longest
	// current run first, most recently active first on ties.
	Leaderboard(ctx context.Context, limit int) ([]Streak, error)
	// LearnerIDs returns every learner with a streak row.
	LearnerIDs(ctx context.Context) ([]uuid.UUID, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const streakColumns = "learner_id, current_len, longest_len, last_day"

func (repo *repository) Find(ctx context.Context, learnerID uuid.UUID) (*Streak, error) {
	var streak Streak
	query := fmt.Sprintf("SELECT %s FROM user_streaks WHERE learner_id = ?", streakColumns)
	if err := repo.db.GetContext(ctx, &streak, query, learnerID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select a streak: %w", err)
	}
	return &streak, nil
}

func (repo *repository) Create(ctx context.Context, streak *Streak) error {
	query := "INSERT INTO user_streaks (learner_id, current_len, longest_len, last_day) VALUES (?, ?, ?, ?)"
	_, err := repo.db.ExecContext(ctx, query,
		streak.LearnerID.String(), streak.CurrentLen, streak.LongestLen, streak.LastDay)
	if err != nil {
		if database.IsDuplicateEntry(err) {
			return ErrDuplicateStreak
		}
		return fmt.Errorf("insert a streak: %w", err)
	}
	return nil
}

func (repo *repository) Update(ctx context.Context, streak *Streak) error {
	query := "UPDATE user_streaks SET current_len = ?, longest_len = ?, last_day = ? WHERE learner_id = ?"
	if _, err := repo.db.ExecContext(ctx, query,
		streak.CurrentLen, streak.LongestLen, streak.LastDay, streak.LearnerID.String()); err != nil {
		return fmt.Errorf("update a streak: %w", err)
	}
	return nil
}

func (repo *repository) Leaderboard(ctx context.Context, limit int) ([]Streak, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM user_streaks WHERE current_len > 0 ORDER BY current_len DESC, last_day DESC LIMIT ?",
		streakColumns,
	)
	var streaks []Streak
	if err := repo.db.SelectContext(ctx, &streaks, query, limit); err != nil {
		return nil, fmt.Errorf("select the streak leaderboard: %w", err)
	}
	return streaks, nil
}

func (repo *repository) LearnerIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.SelectContext(ctx, &ids, "SELECT learner_id FROM user_streaks"); err != nil {
		return nil, fmt.Errorf("select streak learner ids: %w", err)
	}
	return ids, nil
}
