//go:generate mockgen -source=repository.go -destination=../mocks/mock_activity_repository.go -package=mocks

package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Find(ctx context.Context, learnerID uuid.UUID, day time.Time) (*DailyActivity, error)
	// Increment upserts the learner-day row and adds the given amounts to
	// the named counters.
	Increment(ctx context.Context, learnerID uuid.UUID, day time.Time, amounts map[Field]int) error
	Range(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]DailyActivity, error)
	// ActiveDates returns the learner's qualifying days in ascending order.
	ActiveDates(ctx context.Context, learnerID uuid.UUID) ([]time.Time, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const activityColumns = "learner_id, activity_dt, lessons_completed, quizzes_completed, minutes, points"

func (repo *repository) Find(ctx context.Context, learnerID uuid.UUID, day time.Time) (*DailyActivity, error) {
	var row DailyActivity
	query := fmt.Sprintf("SELECT %s FROM daily_activity WHERE learner_id = ? AND activity_dt = ?", activityColumns)
	if err := repo.db.GetContext(ctx, &row, query, learnerID.String(), day); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select a daily activity row: %w", err)
	}
	return &row, nil
}

func (repo *repository) Increment(ctx context.Context, learnerID uuid.UUID, day time.Time, amounts map[Field]int) error {
	if len(amounts) == 0 {
		return nil
	}

	insertColumns := "learner_id, activity_dt"
	placeholders := "?, ?"
	args := []interface{}{learnerID.String(), day}
	updates := ""
	for _, field := range []Field{FieldLessons, FieldQuizzes, FieldMinutes, FieldPoints} {
		amount, ok := amounts[field]
		if !ok {
			continue
		}
		if amount < 0 {
			return fmt.Errorf("negative increment for %s: %d", field, amount)
		}
		insertColumns += ", " + string(field)
		placeholders += ", ?"
		args = append(args, amount)
		if updates != "" {
			updates += ", "
		}
		updates += fmt.Sprintf("%s = %s + VALUES(%s)", field, field, field)
	}

	query := fmt.Sprintf(
		"INSERT INTO daily_activity (%s) VALUES (%s) ON DUPLICATE KEY UPDATE %s",
		insertColumns, placeholders, updates,
	)
	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("increment daily activity: %w", err)
	}
	return nil
}

func (repo *repository) Range(ctx context.Context, learnerID uuid.UUID, from, to time.Time) ([]DailyActivity, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM daily_activity WHERE learner_id = ? AND activity_dt >= ? AND activity_dt < ? ORDER BY activity_dt ASC",
		activityColumns,
	)
	var rows []DailyActivity
	if err := repo.db.SelectContext(ctx, &rows, query, learnerID.String(), from, to); err != nil {
		return nil, fmt.Errorf("select daily activity rows: %w", err)
	}
	return rows, nil
}

func (repo *repository) ActiveDates(ctx context.Context, learnerID uuid.UUID) ([]time.Time, error) {
	query := "SELECT activity_dt FROM daily_activity WHERE learner_id = ? " +
		"AND (lessons_completed > 0 OR quizzes_completed > 0 OR minutes > 0 OR points > 0) " +
		"ORDER BY activity_dt ASC"
	var dates []time.Time
	if err := repo.db.SelectContext(ctx, &dates, query, learnerID.String()); err != nil {
		return nil, fmt.Errorf("select active dates: %w", err)
	}
	return dates, nil
}
