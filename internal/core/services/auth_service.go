package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/stay_booking/internal/core/domain"
	"github.com/srgjo27/stay_booking/internal/core/ports"
	"github.com/srgjo27/stay_booking/internal/observability/metrics"
	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

type AuthService struct {
	provider ports.AuthenticationProvider
	sessions ports.SessionFlagStore
	logger   *logging.Logger
	metrics  *metrics.SiteMetrics
	now      func() time.Time
}

func NewAuthService(provider ports.AuthenticationProvider, sessions ports.SessionFlagStore, logger *logging.Logger, m *metrics.SiteMetrics) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		provider: provider,
		sessions: sessions,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// Login checks the credentials and, on a match, opens a session with the
// logged-in flag set. A mismatch returns domain.ErrInvalidCredentials and
// leaves no trace in the session store.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	session, err := s.provider.Check(ctx, domain.Credentials{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.logger.InfoContext(ctx, "login rejected", "username", username)
			s.metrics.ObserveLogin(metrics.OutcomeFailure)
			return nil, domain.ErrInvalidCredentials
		}
		s.metrics.ObserveLogin(metrics.OutcomeError)
		return nil, fmt.Errorf("check credentials: %w", err)
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now()
	}

	if err := s.sessions.SetLoggedIn(ctx, session.ID); err != nil {
		s.metrics.ObserveLogin(metrics.OutcomeError)
		return nil, fmt.Errorf("store session flag: %w", err)
	}

	s.logger.InfoContext(ctx, "login succeeded", "username", session.Username, "session_id", session.ID)
	s.metrics.ObserveLogin(metrics.OutcomeSuccess)
	return session, nil
}

func (s *AuthService) IsLoggedIn(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	ok, err := s.sessions.IsLoggedIn(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("read session flag: %w", err)
	}
	return ok, nil
}
