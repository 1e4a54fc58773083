package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/maitri-healthcare/portal/internal/services/portal/session"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenIsIdempotentAcrossRestarts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "portal.db")
	first, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	expires := time.Now().Add(time.Hour)
	if err := first.Create(context.Background(), session.Session{ID: "keep", Token: "tok", ExpiresAt: expires}); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	second, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })
	if _, ok, err := second.Get(context.Background(), "keep"); err != nil || !ok {
		t.Fatalf("get after reopen = %v, %v", ok, err)
	}
}

func TestCreateGetDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.February, 22, 16, 40, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	input := session.Session{
		ID:        "abc",
		Token:     "tok",
		Email:     "ops@maitri.example",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := store.Create(context.Background(), input); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, ok, err := store.Get(context.Background(), "abc")
	if err != nil || !ok {
		t.Fatalf("get session = %v, %v", ok, err)
	}
	if got.Token != input.Token {
		t.Fatalf("token = %q, want %q", got.Token, input.Token)
	}
	if got.Email != input.Email {
		t.Fatalf("email = %q, want %q", got.Email, input.Email)
	}
	if !got.CreatedAt.Equal(input.CreatedAt) || !got.ExpiresAt.Equal(input.ExpiresAt) {
		t.Fatalf("times = %v/%v, want %v/%v", got.CreatedAt, got.ExpiresAt, input.CreatedAt, input.ExpiresAt)
	}

	if err := store.Delete(context.Background(), "abc"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, ok, _ := store.Get(context.Background(), "abc"); ok {
		t.Fatal("expected deleted session to be missing")
	}
}

func TestCreateReturnsDuplicateError(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := session.Session{ID: "dup", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.Create(context.Background(), input); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := store.Create(context.Background(), input); !errors.Is(err, session.ErrDuplicate) {
		t.Fatalf("second create = %v, want ErrDuplicate", err)
	}
}

func TestExpiredSessionsAreIgnoredAndPurged(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.February, 22, 16, 40, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	if err := store.Create(context.Background(), session.Session{ID: "short", Token: "tok", ExpiresAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("create session: %v", err)
	}

	store.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, ok, err := store.Get(context.Background(), "short"); ok || err != nil {
		t.Fatalf("get expired = %v, %v, want missing", ok, err)
	}
	removed, err := store.PurgeExpired(context.Background())
	if err != nil {
		t.Fatalf("purge expired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
}

func TestCreateRejectsInvalidSession(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.Create(context.Background(), session.Session{ID: "x"}); !errors.Is(err, session.ErrInvalid) {
		t.Fatalf("create invalid = %v, want ErrInvalid", err)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "portal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
