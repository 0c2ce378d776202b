package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5433", User: "app", Password: "secret", DBName: "stays"}

	assert.Equal(t, "postgres://app:secret@db:5433/stays?sslmode=disable", cfg.DSN())
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS login_credentials").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS login_credentials").
		WillReturnError(errors.New("permission denied"))

	err = EnsureSchema(context.Background(), db)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "create login_credentials")
}

func TestNewPostgresDB_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, err := NewPostgresDB(ctx, Config{
		Host:       "127.0.0.1",
		Port:       "1",
		User:       "nobody",
		DBName:     "none",
		MaxRetries: 3,
		RetryDelay: time.Minute,
	}, logging.Discard())

	assert.Nil(t, db)
	assert.ErrorIs(t, err, context.Canceled)
}
