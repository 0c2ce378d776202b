package auth

import (
	"context"
	"crypto/subtle"

	"github.com/srgjo27/stay_booking/internal/core/domain"
)

// StaticProvider accepts exactly one username/password pair, compared case
// sensitively. It stands in until a real identity backend is configured.
type StaticProvider struct {
	username string
	password string
}

func NewStaticProvider(username, password string) *StaticProvider {
	return &StaticProvider{username: username, password: password}
}

func (p *StaticProvider) Check(_ context.Context, creds domain.Credentials) (*domain.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(p.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(p.password)) == 1
	if !userOK || !passOK {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Session{Username: creds.Username}, nil
}
