// Package session provides the Redis-backed session store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"estate_backend/internal/feature/auth/domain/entity"
	"estate_backend/internal/feature/auth/usecase"

	"github.com/redis/go-redis/v9"
)

// SessionRedis implements usecase.SessionRepository using Redis.
// Each session is stored under <prefix>:<token> and expires with the session.
// <prefix>:id:<id> holds the token so that access tokens can look the session up by ID.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session token.
func (r *SessionRedis) sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// idKey returns the Redis key that maps a session ID to its token.
func (r *SessionRedis) idKey(id string) string {
	return fmt.Sprintf("%s:id:%s", r.prefix, id)
}

// Create persists a new session to Redis.
func (r *SessionRedis) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.sessionKey(session.Token), data, ttl)
		pipe.Set(ctx, r.idKey(session.ID), session.Token, ttl)
		return nil
	})
	return err
}

// FindByToken retrieves a session by its cookie token.
func (r *SessionRedis) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// FindByID retrieves a session through its ID index key.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	token, err := r.client.Get(ctx, r.idKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return r.FindByToken(ctx, token)
}

// DeleteByToken removes a session and its ID index. Missing keys are not an error.
func (r *SessionRedis) DeleteByToken(ctx context.Context, token string) error {
	keys := []string{r.sessionKey(token)}
	if s, err := r.FindByToken(ctx, token); err == nil && s.ID != "" {
		keys = append(keys, r.idKey(s.ID))
	}
	return r.client.Del(ctx, keys...).Err()
}
