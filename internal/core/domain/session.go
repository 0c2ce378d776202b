package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

const MsgInvalidCredentials = "Invalid username or password"

// SessionFlagKey and SessionFlagValue are what a successful login leaves in
// client storage.
const (
	SessionFlagKey   = "loggedIn"
	SessionFlagValue = "true"
)

type Credentials struct {
	Username string
	Password string
}

type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
