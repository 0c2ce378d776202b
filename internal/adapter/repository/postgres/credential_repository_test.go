package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/srgjo27/stay_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/stay_booking/internal/core/domain"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCredentialRepository_Check(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCredentialRepository(db)
	hash := hashOf(t, "sameer@123")

	tests := []struct {
		name     string
		password string
		setup    func()
		wantErr  error
		wantAny  bool
	}{
		{
			name:     "matching password",
			password: "sameer@123",
			setup: func() {
				mock.ExpectQuery("SELECT password_hash FROM login_credentials").
					WithArgs("sameer").
					WillReturnRows(sqlmock.NewRows([]string{"password_hash"}).AddRow(hash))
			},
		},
		{
			name:     "wrong password",
			password: "guess",
			setup: func() {
				mock.ExpectQuery("SELECT password_hash FROM login_credentials").
					WithArgs("sameer").
					WillReturnRows(sqlmock.NewRows([]string{"password_hash"}).AddRow(hash))
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			password: "sameer@123",
			setup: func() {
				mock.ExpectQuery("SELECT password_hash FROM login_credentials").
					WithArgs("sameer").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "database down",
			password: "sameer@123",
			setup: func() {
				mock.ExpectQuery("SELECT password_hash FROM login_credentials").
					WithArgs("sameer").
					WillReturnError(errors.New("connection reset"))
			},
			wantAny: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			session, err := repo.Check(context.Background(), domain.Credentials{Username: "sameer", Password: tt.password})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			case tt.wantAny:
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
			default:
				require.NoError(t, err)
				assert.Equal(t, "sameer", session.Username)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCredentialRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCredentialRepository(db)

	mock.ExpectExec("INSERT INTO login_credentials").
		WithArgs("sameer", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(context.Background(), domain.Credentials{Username: "sameer", Password: "sameer@123"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_UpsertRequiresBoth(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewCredentialRepository(db)

	assert.Error(t, repo.Upsert(context.Background(), domain.Credentials{Username: "sameer"}))
}
