package memory

import (
	"context"
	"sync"
)

// SessionRepository keeps session flags in process memory. Flags are lost on
// restart.
type SessionRepository struct {
	mu       sync.RWMutex
	loggedIn map[string]bool
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{loggedIn: make(map[string]bool)}
}

func (r *SessionRepository) SetLoggedIn(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loggedIn[sessionID] = true
	return nil
}

func (r *SessionRepository) IsLoggedIn(_ context.Context, sessionID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.loggedIn[sessionID], nil
}
