// Package redisstore persists portal sessions in Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maitri-healthcare/portal/internal/services/portal/session"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces session keys.
const KeyPrefix = "portal:session:"

// Config selects the Redis server.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Store keeps each session under its own key with a TTL matching the
// session expiry.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// Open connects to Redis and verifies the connection.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(client), nil
}

// New wraps an existing client.
func New(client *redis.Client) *Store {
	return &Store{client: client, now: time.Now}
}

func key(id string) string {
	return KeyPrefix + strings.TrimSpace(id)
}

// Create stores s until its expiry. An existing id is ErrDuplicate.
func (s *Store) Create(ctx context.Context, sess session.Session) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("redis store is not configured")
	}
	if err := sess.Validate(); err != nil {
		return err
	}
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", session.ErrInvalid)
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	stored, err := s.client.SetNX(ctx, key(sess.ID), payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if !stored {
		return session.ErrDuplicate
	}
	return nil
}

// Get returns the live session for id.
func (s *Store) Get(ctx context.Context, id string) (session.Session, bool, error) {
	if s == nil || s.client == nil {
		return session.Session{}, false, fmt.Errorf("redis store is not configured")
	}
	payload, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Session{}, false, nil
	}
	if err != nil {
		return session.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	var sess session.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return session.Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	if sess.Expired(s.now()) {
		return session.Session{}, false, nil
	}
	return sess, true, nil
}

// Delete removes id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("redis store is not configured")
	}
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

var _ session.Store = (*Store)(nil)
