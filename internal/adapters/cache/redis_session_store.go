package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/faithfinder/backend/internal/domain/entities"
	"github.com/faithfinder/backend/internal/domain/providers"
	redisclient "github.com/faithfinder/backend/internal/infrastructure/clients/redis"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps login sessions in Redis with a TTL matching their expiry
type RedisSessionStore struct {
	client *redisclient.Client
	now    func() time.Time
}

// NewRedisSessionStore creates a Redis-backed session store
func NewRedisSessionStore(client *redisclient.Client) providers.SessionStore {
	return &RedisSessionStore{client: client, now: time.Now}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Save stores a session until it expires
func (s *RedisSessionStore) Save(ctx context.Context, session *entities.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return apperrors.NewValidationError("session already expired")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Client().Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get loads a session
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*entities.Session, error) {
	data, err := s.client.Client().Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if session.Expired(s.now()) {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return &session, nil
}

// Delete removes a session
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Client().Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
