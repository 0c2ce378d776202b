package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/srgjo27/stay_booking/internal/core/domain"
)

// CredentialRepository checks logins against bcrypt hashes in
// login_credentials.
type CredentialRepository struct {
	db *sql.DB
}

func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Check(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	query := `
	SELECT password_hash FROM login_credentials
	WHERE username = $1
	`

	var hash string
	err := r.db.QueryRowContext(ctx, query, creds.Username).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	return &domain.Session{Username: creds.Username}, nil
}

// Upsert stores creds, replacing the hash of an existing username.
func (r *CredentialRepository) Upsert(ctx context.Context, creds domain.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return errors.New("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
	INSERT INTO login_credentials (username, password_hash)
	VALUES ($1, $2)
	ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`

	if _, err := r.db.ExecContext(ctx, query, creds.Username, string(hash)); err != nil {
		return fmt.Errorf("failed to upsert credentials for %s: %w", creds.Username, err)
	}
	return nil
}
