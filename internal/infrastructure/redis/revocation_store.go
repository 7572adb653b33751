package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/ibeauty-api/internal/application/auth"
	"github.com/redis/go-redis/v9"
)

var _ auth.TokenRevoker = (*RevocationStore)(nil)

// RevocationStore registro de jti revocados. Cada clave vive lo que le quedaba al token.
type RevocationStore struct {
	client *redis.Client
	prefix string
}

// NewRevocationStore construye el registro sobre un cliente existente.
func NewRevocationStore(client *redis.Client, prefix string) *RevocationStore {
	if prefix == "" {
		prefix = "ibeauty"
	}
	return &RevocationStore{client: client, prefix: prefix}
}

// NewClient abre el cliente desde REDIS_URL y verifica la conexión.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *RevocationStore) key(tokenID string) string {
	return s.prefix + ":revoked:" + tokenID
}

// Revoke marca el token. Un ttl <= 0 significa que ya expiró y no hace falta guardarlo.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.key(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked informa si el jti está en el registro.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	err := s.client.Get(ctx, s.key(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return true, nil
}
