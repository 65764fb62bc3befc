package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medagenda/models"
	"medagenda/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionStore persists wizard sessions between HTTP calls.
type SessionStore interface {
	Save(ctx context.Context, session *models.RegistrationSession) error
	Get(ctx context.Context, sessionID string) (*models.RegistrationSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON under regSession:<id> with a TTL,
// refreshed on every save so an active wizard never expires under the user.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

// NewRedisSessionStore builds the production session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl, Logger: logger}
}

// Save marshals and writes the session, bumping LastUpdatedAt and the TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session *models.RegistrationSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		s.Logger.Error("Failed to marshal registration session", zap.Error(err))
		return fmt.Errorf("failed to marshal registration session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.RegistrationSessionPrefix+session.ID, data, s.TTL).Err(); err != nil {
		s.Logger.Error("Failed to save registration session",
			zap.String("sessionID", session.ID), zap.Error(err))
		return fmt.Errorf("failed to save registration session: %w", err)
	}
	return nil
}

// Get retrieves and unmarshals a session by ID.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.RegistrationSession, error) {
	data, err := s.Client.Get(ctx, utils.RegistrationSessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		s.Logger.Error("Failed to get registration session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to get registration session: %w", err)
	}
	var session models.RegistrationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		s.Logger.Error("Failed to unmarshal registration session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal registration session: %w", err)
	}
	return &session, nil
}

// Delete removes a session, typically after a successful submission.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, utils.RegistrationSessionPrefix+sessionID).Err(); err != nil {
		s.Logger.Error("Failed to delete registration session",
			zap.String("sessionID", sessionID), zap.Error(err))
		return fmt.Errorf("failed to delete registration session: %w", err)
	}
	return nil
}
