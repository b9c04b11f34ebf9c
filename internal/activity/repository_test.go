package activity

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestRepository_Increment(t *testing.T) {
	learnerID := uuid.New()
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		amounts map[Field]int
		setup   func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name:    "single counter",
			amounts: map[Field]int{FieldLessons: 1},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO daily_activity \\(learner_id, activity_dt, lessons_completed\\) VALUES \\(\\?, \\?, \\?\\) ON DUPLICATE KEY UPDATE lessons_completed = lessons_completed \\+ VALUES\\(lessons_completed\\)").
					WithArgs(learnerID.String(), day, 1).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:    "minutes and points together",
			amounts: map[Field]int{FieldMinutes: 2, FieldPoints: 5},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO daily_activity \\(learner_id, activity_dt, minutes, points\\)").
					WithArgs(learnerID.String(), day, 2, 5).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:    "empty amounts are a no-op",
			amounts: map[Field]int{},
			setup:   func(mock sqlmock.Sqlmock) {},
		},
		{
			name:    "negative amount is rejected",
			amounts: map[Field]int{FieldPoints: -1},
			setup:   func(mock sqlmock.Sqlmock) {},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			repo := NewRepository(db)
			err := repo.Increment(context.Background(), learnerID, day, tc.amounts)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Find(t *testing.T) {
	learnerID := uuid.New()
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM daily_activity WHERE learner_id = \\? AND activity_dt = \\?").
			WithArgs(learnerID.String(), day).
			WillReturnRows(sqlmock.NewRows([]string{
				"learner_id", "activity_dt", "lessons_completed", "quizzes_completed", "minutes", "points",
			}).AddRow(learnerID.String(), day, 2, 1, 30, 45))

		repo := NewRepository(db)
		actual, err := repo.Find(context.Background(), learnerID, day)
		require.NoError(t, err)
		assert.Equal(t, &DailyActivity{
			LearnerID:        learnerID,
			Day:              day,
			LessonsCompleted: 2,
			QuizzesCompleted: 1,
			Minutes:          30,
			Points:           45,
		}, actual)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing returns nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM daily_activity WHERE learner_id = \\? AND activity_dt = \\?").
			WithArgs(learnerID.String(), day).
			WillReturnRows(sqlmock.NewRows([]string{"learner_id", "activity_dt"}))

		repo := NewRepository(db)
		actual, err := repo.Find(context.Background(), learnerID, day)
		require.NoError(t, err)
		assert.Nil(t, actual)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ActiveDates(t *testing.T) {
	learnerID := uuid.New()
	dates := []time.Time{
		time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"activity_dt"})
	for _, date := range dates {
		rows.AddRow(date)
	}
	mock.ExpectQuery("SELECT activity_dt FROM daily_activity WHERE learner_id = \\?").
		WithArgs(learnerID.String()).
		WillReturnRows(rows)

	repo := NewRepository(db)
	actual, err := repo.ActiveDates(context.Background(), learnerID)
	require.NoError(t, err)
	assert.Equal(t, dates, actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}
