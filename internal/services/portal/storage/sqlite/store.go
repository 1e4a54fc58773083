// Package sqlite provides a SQLite-backed portal session store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/maitri-healthcare/portal/internal/platform/storage/sqlitemigrate"
	"github.com/maitri-healthcare/portal/internal/services/portal/session"
	"github.com/maitri-healthcare/portal/internal/services/portal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists sessions in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite session store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Create inserts one session. Expired rows are purged first.
func (s *Store) Create(ctx context.Context, sess session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := sess.Validate(); err != nil {
		return err
	}
	if _, err := s.PurgeExpired(ctx); err != nil {
		return err
	}
	createdAt := sess.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sessions (id, token, email, created_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		strings.TrimSpace(sess.ID),
		sess.Token,
		strings.TrimSpace(sess.Email),
		toMillis(createdAt),
		toMillis(sess.ExpiresAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return session.ErrDuplicate
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get returns the live session for id. Expired rows are ignored.
func (s *Store) Get(ctx context.Context, id string) (session.Session, bool, error) {
	if err := ctx.Err(); err != nil {
		return session.Session{}, false, err
	}
	if s == nil || s.sqlDB == nil {
		return session.Session{}, false, fmt.Errorf("storage is not configured")
	}
	var (
		sess      session.Session
		createdAt int64
		expiresAt int64
	)
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, token, email, created_at, expires_at FROM sessions WHERE id = ? AND expires_at > ?`,
		strings.TrimSpace(id),
		toMillis(s.now()),
	).Scan(&sess.ID, &sess.Token, &sess.Email, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Session{}, false, nil
	}
	if err != nil {
		return session.Session{}, false, fmt.Errorf("get session: %w", err)
	}
	sess.CreatedAt = fromMillis(createdAt)
	sess.ExpiresAt = fromMillis(expiresAt)
	return sess, true, nil
}

// Delete removes id. Unknown ids are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired deletes expired rows and returns how many were removed.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, toMillis(s.now()))
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}
	return removed, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "sessions.id")
}

var _ session.Store = (*Store)(nil)
