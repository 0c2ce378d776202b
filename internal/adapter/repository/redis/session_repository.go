package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/stay_booking/internal/core/domain"
)

type SessionRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewSessionRepository stores flags under session:<id>:loggedIn. A zero ttl
// keeps them forever.
func NewSessionRepository(client redis.Cmdable, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func SessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, domain.SessionFlagKey)
}

func (r *SessionRepository) SetLoggedIn(ctx context.Context, sessionID string) error {
	if err := r.client.Set(ctx, SessionKey(sessionID), domain.SessionFlagValue, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session flag: %w", err)
	}
	return nil
}

func (r *SessionRepository) IsLoggedIn(ctx context.Context, sessionID string) (bool, error) {
	val, err := r.client.Get(ctx, SessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get session flag: %w", err)
	}
	return val == domain.SessionFlagValue, nil
}
