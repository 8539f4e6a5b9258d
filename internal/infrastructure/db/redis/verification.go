package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// VerificationStore keeps one-time email verification codes in Redis.
// Key format: email-verify:<address>. Expiry is handled by Redis TTL;
// Consume deletes on match so every code is single use.
type VerificationStore struct {
	client *redis.Client
}

func NewVerificationStore(client *redis.Client) *VerificationStore {
	return &VerificationStore{client: client}
}

func (s *VerificationStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	return nil
}

func (s *VerificationStore) Consume(ctx context.Context, email, code string) (bool, error) {
	key := s.key(email)
	stored, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read verification code: %w", err)
	}
	if stored != code {
		return false, nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, fmt.Errorf("consume verification code: %w", err)
	}
	return true, nil
}

func (s *VerificationStore) key(email string) string {
	return "email-verify:" + email
}
