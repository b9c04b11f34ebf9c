package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeenkov/linguatrack/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "testdb",
				Username: "testuser",
				Password: "testpass",
			},
		},
		{
			name: "creates connection with pool settings",
			cfg: config.DatabaseConfig{
				Host:            "db.example.com",
				Port:            3307,
				Database:        "linguatrack",
				Username:        "admin",
				Password:        "secret",
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
		},
		{
			name: "creates connection with TLS enabled",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "testdb",
				Username: "testuser",
				TLS:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, db)
			assert.NoError(t, db.Close())
		})
	}
}

func TestRunInTx(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		fn        func(ctx context.Context, tx *sqlx.Tx) error
		wantErr   string
	}{
		{
			name: "commits on success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE user_streaks").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, "UPDATE user_streaks SET current_len = 0")
				return err
			},
		},
		{
			name: "rolls back on error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return fmt.Errorf("boom")
			},
			wantErr: "boom",
		},
		{
			name: "begin failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(fmt.Errorf("connection refused"))
			},
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			wantErr: "begin transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			tt.setupMock(mock)

			err = RunInTx(context.Background(), sqlxDB, tt.fn)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIsDuplicateEntry(t *testing.T) {
	assert.True(t, IsDuplicateEntry(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.True(t, IsDuplicateEntry(fmt.Errorf("insert card: %w", &gomysql.MySQLError{Number: 1062})))
	assert.False(t, IsDuplicateEntry(&gomysql.MySQLError{Number: 1213}))
	assert.False(t, IsDuplicateEntry(fmt.Errorf("plain error")))
	assert.False(t, IsDuplicateEntry(nil))
}
