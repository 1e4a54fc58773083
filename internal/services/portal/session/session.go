// Package session keeps backend tokens server-side, keyed by an opaque
// cookie value.
package session

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalid marks sessions that cannot be stored.
	ErrInvalid = errors.New("invalid session")
	// ErrDuplicate reports a session id collision on Create.
	ErrDuplicate = errors.New("session already exists")
)

// Session binds a browser cookie to a backend token.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Validate checks the fields every store requires.
func (s Session) Validate() error {
	switch {
	case strings.TrimSpace(s.ID) == "":
		return errors.Join(ErrInvalid, errors.New("session id is required"))
	case strings.TrimSpace(s.Token) == "":
		return errors.Join(ErrInvalid, errors.New("session token is required"))
	case s.ExpiresAt.IsZero():
		return errors.Join(ErrInvalid, errors.New("session expiry is required"))
	}
	return nil
}

// Store persists sessions. Implementations are safe for concurrent use and
// never return expired sessions from Get.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, bool, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
