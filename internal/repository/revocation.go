package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/jeevan_setu/internal/service"
)

const revokedKeyPrefix = "session:revoked:"

type RevocationStore struct {
	redisClient *redis.Client
}

func NewRevocationStore(redisClient *redis.Client) service.RevocationStore {
	return &RevocationStore{redisClient: redisClient}
}

// revocationTTL - сколько хранить отметку об отзыве. Истекший токен хранить не нужно.
func revocationTTL(until, now time.Time) time.Duration {
	return until.Sub(now)
}

// Revoke помечает токен отозванным до истечения его срока
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := revocationTTL(until, time.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.redisClient.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// IsRevoked сообщает, был ли токен отозван
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}
	return n > 0, nil
}
