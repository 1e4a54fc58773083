package session

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session), now: time.Now}
}

// Create stores s after dropping expired entries. A live session with the
// same ID is ErrDuplicate.
func (m *MemoryStore) Create(ctx context.Context, s Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpiredLocked(m.now())
	if _, ok := m.sessions[s.ID]; ok {
		return ErrDuplicate
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) purgeExpiredLocked(now time.Time) {
	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
		}
	}
}

// Get returns the live session for id. Expired entries are dropped.
func (m *MemoryStore) Get(ctx context.Context, id string) (Session, bool, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, false, err
	}
	id = strings.TrimSpace(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false, nil
	}
	if s.Expired(m.now()) {
		delete(m.sessions, id)
		return Session{}, false, nil
	}
	return s, true, nil
}

// Delete removes id. Unknown ids are not an error.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, strings.TrimSpace(id))
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
