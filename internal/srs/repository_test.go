package srs

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return sqlx.NewDb(db, "mysql"), mock
}

func cardRows(cards ...Card) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "learner_id", "flashcard_id", "ease_factor", "interval_days", "repetition", "due_at", "suspended",
	})
	for _, card := range cards {
		rows.AddRow(
			card.ID.String(), card.LearnerID.String(), card.FlashcardID.String(),
			card.EaseFactor, card.IntervalDays, card.Repetition, card.DueAt, card.Suspended,
		)
	}
	return rows
}

func TestCardRepository_FindByPair(t *testing.T) {
	learnerID := uuid.New()
	flashcardID := uuid.New()
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	card := Card{
		ID:           uuid.New(),
		LearnerID:    learnerID,
		FlashcardID:  flashcardID,
		EaseFactor:   2.5,
		IntervalDays: 6,
		Repetition:   2,
		DueAt:        now,
	}

	testCases := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		expected *Card
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM sr_cards WHERE learner_id = \\? AND flashcard_id = \\?").
					WithArgs(learnerID.String(), flashcardID.String()).
					WillReturnRows(cardRows(card))
			},
			expected: &card,
		},
		{
			name: "missing returns nil",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM sr_cards WHERE learner_id = \\? AND flashcard_id = \\?").
					WithArgs(learnerID.String(), flashcardID.String()).
					WillReturnRows(cardRows())
			},
			expected: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			repo := NewCardRepository(db)
			actual, err := repo.FindByPair(context.Background(), learnerID, flashcardID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCardRepository_Create(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	card := NewCard(uuid.New(), uuid.New(), now)

	testCases := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "inserted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO sr_cards").
					WithArgs(
						card.ID.String(), card.LearnerID.String(), card.FlashcardID.String(),
						card.EaseFactor, card.IntervalDays, card.Repetition, card.DueAt, card.Suspended,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "duplicate entry",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO sr_cards").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			expectedErr: ErrDuplicateCard,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			repo := NewCardRepository(db)
			err := repo.Create(context.Background(), card)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCardRepository_Delete(t *testing.T) {
	id := uuid.New()

	testCases := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM sr_cards WHERE id = \\?").
					WithArgs(id.String()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM sr_cards WHERE id = \\?").
					WithArgs(id.String()).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			repo := NewCardRepository(db)
			err := repo.Delete(context.Background(), id)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCardRepository_ListDue(t *testing.T) {
	learnerID := uuid.New()
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	due := Card{
		ID:          uuid.New(),
		LearnerID:   learnerID,
		FlashcardID: uuid.New(),
		EaseFactor:  2.5,
		DueAt:       now.AddDate(0, 0, -1),
	}

	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM sr_cards WHERE learner_id = \\? AND suspended = FALSE AND due_at <= \\? ORDER BY due_at ASC LIMIT \\?").
		WithArgs(learnerID.String(), now, 20).
		WillReturnRows(cardRows(due))

	repo := NewCardRepository(db)
	cards, err := repo.ListDue(context.Background(), learnerID, now, 20)
	require.NoError(t, err)
	assert.Equal(t, []Card{due}, cards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Stats(t *testing.T) {
	learnerID := uuid.New()
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM sr_cards WHERE learner_id = \\?").
		WithArgs(now, learnerID.String()).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_cards", "due_cards", "suspended_cards", "new_cards",
			"learning_cards", "mature_cards", "average_ease_factor", "average_interval",
		}).AddRow(10, 3, 1, 2, 4, 3, 2.41, 8.5))

	repo := NewCardRepository(db)
	stats, err := repo.Stats(context.Background(), learnerID, now)
	require.NoError(t, err)
	assert.Equal(t, CardStats{
		TotalCards:        10,
		DueCards:          3,
		SuspendedCards:    1,
		NewCards:          2,
		LearningCards:     4,
		MatureCards:       3,
		AverageEaseFactor: 2.41,
		AverageInterval:   8.5,
	}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_RecordReview(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	card := Card{
		ID:           uuid.New(),
		LearnerID:    uuid.New(),
		FlashcardID:  uuid.New(),
		EaseFactor:   2.5,
		IntervalDays: 15,
		Repetition:   3,
		DueAt:        now.AddDate(0, 0, 15),
	}
	review := Review{
		ID:               uuid.New(),
		LearnerID:        card.LearnerID,
		FlashcardID:      card.FlashcardID,
		Quality:          4,
		PrevIntervalDays: 6,
		NewIntervalDays:  15,
		NewEaseFactor:    2.5,
		ReviewedAt:       now,
	}

	testCases := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		expectErr bool
	}{
		{
			name: "committed",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE sr_cards SET").
					WithArgs(card.EaseFactor, card.IntervalDays, card.Repetition, card.DueAt, card.Suspended, card.ID.String()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO sr_reviews").
					WithArgs(
						review.ID.String(), review.LearnerID.String(), review.FlashcardID.String(),
						review.Quality, review.PrevIntervalDays, review.NewIntervalDays,
						review.NewEaseFactor, review.ReviewedAt,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rolled back when the insert fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE sr_cards SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO sr_reviews").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			repo := NewReviewRepository(db)
			err := repo.RecordReview(context.Background(), &card, &review)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_DistinctReviewDays(t *testing.T) {
	learnerID := uuid.New()
	days := []time.Time{
		time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
	}

	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"review_day"})
	for _, day := range days {
		rows.AddRow(day)
	}
	mock.ExpectQuery("SELECT DISTINCT DATE\\(reviewed_at\\)").
		WithArgs(learnerID.String()).
		WillReturnRows(rows)

	repo := NewReviewRepository(db)
	actual, err := repo.DistinctReviewDays(context.Background(), learnerID)
	require.NoError(t, err)
	assert.Equal(t, days, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_BusiestDay(t *testing.T) {
	learnerID := uuid.New()
	day := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		expected *DayCount
	}{
		{
			// Ties on the count go to the most recent day.
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT DATE\\(reviewed_at\\) AS review_date.+ORDER BY review_count DESC, review_date DESC LIMIT 1").
					WithArgs(learnerID.String()).
					WillReturnRows(sqlmock.NewRows([]string{"review_date", "review_count"}).AddRow(day, 12))
			},
			expected: &DayCount{Day: day, Count: 12},
		},
		{
			name: "no reviews",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT DATE\\(reviewed_at\\) AS review_date").
					WithArgs(learnerID.String()).
					WillReturnRows(sqlmock.NewRows([]string{"review_date", "review_count"}))
			},
			expected: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			repo := NewReviewRepository(db)
			actual, err := repo.BusiestDay(context.Background(), learnerID)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
