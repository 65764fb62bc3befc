package platform

import (
	"context"
	"encoding/json"
	"fmt"

	"medagenda/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthStore persists the credentials returned by a successful registration:
// the opaque bearer token and the serialized user profile, written as two
// keys so the surrounding application can re-initialize under the new
// authenticated state. This component only writes; consumers read the keys
// directly. Entries have no TTL; sign-out elsewhere removes them.
type AuthStore struct {
	Client *redis.Client
	Logger *zap.Logger
}

// NewAuthStore builds an AuthStore over the auth cache client.
func NewAuthStore(client *redis.Client, logger *zap.Logger) *AuthStore {
	return &AuthStore{Client: client, Logger: logger}
}

// Persist writes the token and profile under the given owner key. The token
// is logged only as a sha256 fingerprint.
func (s *AuthStore) Persist(ctx context.Context, ownerID, token string, user json.RawMessage) error {
	if err := s.Client.Set(ctx, utils.AuthTokenPrefix+ownerID, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}
	if err := s.Client.Set(ctx, utils.AuthUserPrefix+ownerID, []byte(user), 0).Err(); err != nil {
		return fmt.Errorf("failed to persist user profile: %w", err)
	}
	s.Logger.Info("Persisted registration credentials",
		zap.String("ownerID", ownerID),
		zap.String("tokenHash", utils.HashToken(token)))
	return nil
}
