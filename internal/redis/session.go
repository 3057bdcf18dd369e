package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const activeAdminsKey = "admin_sessions"

// AdminSession represents an issued admin console token stored in Redis
type AdminSession struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminSessions tracks issued admin tokens so they can be revoked before
// they expire
type AdminSessions struct {
	c *Client
}

func (c *Client) AdminSessions() *AdminSessions {
	return &AdminSessions{c: c}
}

func adminSessionKey(id string) string {
	return fmt.Sprintf("admin_session:%s", id)
}

// Track stores a session until its token expires
func (s *AdminSessions) Track(ctx context.Context, id, subject string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", id)
	}

	session := AdminSession{ID: id, Subject: subject, CreatedAt: time.Now(), ExpiresAt: expiresAt}
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}

	pipe := s.c.TxPipeline()
	pipe.Set(ctx, adminSessionKey(id), sessionJSON, ttl)
	pipe.SAdd(ctx, activeAdminsKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store admin session: %w", err)
	}
	return nil
}

// Get retrieves an admin session
func (s *AdminSessions) Get(ctx context.Context, id string) (*AdminSession, error) {
	sessionJSON, err := s.c.Get(ctx, adminSessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("admin session not found: %w", err)
	}

	var session AdminSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin session: %w", err)
	}
	return &session, nil
}

// Active reports whether the session exists and has not been revoked
func (s *AdminSessions) Active(ctx context.Context, id string) (bool, error) {
	n, err := s.c.Exists(ctx, adminSessionKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check admin session: %w", err)
	}
	return n == 1, nil
}

// Revoke removes a session (for logout)
func (s *AdminSessions) Revoke(ctx context.Context, id string) error {
	pipe := s.c.TxPipeline()
	pipe.Del(ctx, adminSessionKey(id))
	pipe.SRem(ctx, activeAdminsKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke admin session: %w", err)
	}
	return nil
}

// Count returns the number of live admin sessions. Expired entries are
// pruned from the index on the way.
func (s *AdminSessions) Count(ctx context.Context) (int64, error) {
	ids, err := s.c.SMembers(ctx, activeAdminsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list admin sessions: %w", err)
	}

	var live int64
	for _, id := range ids {
		err := s.c.Get(ctx, adminSessionKey(id)).Err()
		switch {
		case errors.Is(err, redis.Nil):
			s.c.SRem(ctx, activeAdminsKey, id)
		case err != nil:
			return 0, fmt.Errorf("failed to check admin session: %w", err)
		default:
			live++
		}
	}
	return live, nil
}
