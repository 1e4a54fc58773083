package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/maitri-healthcare/portal/internal/platform/id"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/requestmeta"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/sessioncookie"
)

// DefaultTTL bounds sessions when no TTL is configured.
const DefaultTTL = 24 * time.Hour

// Manager ties the session store to the session cookie.
type Manager struct {
	store  Store
	ttl    time.Duration
	policy requestmeta.SchemePolicy
	now    func() time.Time
	newID  func() (string, error)
}

// NewManager returns a manager over store. A non-positive ttl uses DefaultTTL.
func NewManager(store Store, ttl time.Duration, policy requestmeta.SchemePolicy) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, ttl: ttl, policy: policy, now: time.Now, newID: id.NewID}
}

// Policy returns the scheme policy used for cookies.
func (m *Manager) Policy() requestmeta.SchemePolicy {
	if m == nil {
		return requestmeta.SchemePolicy{}
	}
	return m.policy
}

// Start persists a session for token and writes its cookie. The session
// expires at the earlier of now+TTL and the token's own exp claim. A session
// already named by the request cookie is deleted once the new one is stored.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, r *http.Request, token, email string) (Session, error) {
	if m == nil || m.store == nil {
		return Session{}, fmt.Errorf("session store is not configured")
	}
	sessionID, err := m.newID()
	if err != nil {
		return Session{}, err
	}
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)
	if tokenExpiry, ok := TokenExpiry(token); ok && tokenExpiry.Before(expiresAt) {
		expiresAt = tokenExpiry
	}
	if !expiresAt.After(now) {
		return Session{}, fmt.Errorf("%w: token already expired", ErrInvalid)
	}
	s := Session{
		ID:        sessionID,
		Token:     strings.TrimSpace(token),
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := m.store.Create(ctx, s); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	if previousID, ok := sessioncookie.Read(r); ok && previousID != s.ID {
		if err := m.store.Delete(ctx, previousID); err != nil {
			_ = m.store.Delete(ctx, s.ID)
			return Session{}, fmt.Errorf("replace session: %w", err)
		}
	}
	sessioncookie.Write(w, r, s.ID, s.ExpiresAt, m.policy)
	return s, nil
}

// Resolve returns the live session named by the request cookie.
func (m *Manager) Resolve(r *http.Request) (Session, bool, error) {
	if m == nil || m.store == nil {
		return Session{}, false, nil
	}
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return Session{}, false, nil
	}
	s, ok, err := m.store.Get(r.Context(), sessionID)
	if err != nil {
		return Session{}, false, fmt.Errorf("get session: %w", err)
	}
	if !ok || s.Expired(m.now()) {
		return Session{}, false, nil
	}
	return s, true, nil
}

// End deletes the request's session, if any, and clears the cookie.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if m == nil {
		return nil
	}
	sessioncookie.Clear(w, r, m.policy)
	sessionID, ok := sessioncookie.Read(r)
	if !ok || m.store == nil {
		return nil
	}
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
