package ports

import (
	"context"

	"github.com/srgjo27/stay_booking/internal/core/domain"
)

// AuthenticationProvider decides whether a pair of credentials may log in.
// It returns domain.ErrInvalidCredentials for a mismatch; any other error is
// a backend failure.
type AuthenticationProvider interface {
	Check(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
}

// SessionFlagStore reads and writes the logged-in flag of one session.
type SessionFlagStore interface {
	SetLoggedIn(ctx context.Context, sessionID string) error
	IsLoggedIn(ctx context.Context, sessionID string) (bool, error)
}
