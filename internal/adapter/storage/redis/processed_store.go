package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ProcessedStore implements ports.ProcessedMarker using Redis SET NX.
type ProcessedStore struct {
	client *goredis.Client
	prefix string
}

// NewProcessedStore creates a new Redis-backed processed-coupon marker.
func NewProcessedStore(client *goredis.Client) *ProcessedStore {
	return &ProcessedStore{
		client: client,
		prefix: "coupon:processed:",
	}
}

// MarkIfNew atomically records a coupon code, returning true when the code
// was unseen and false when it was already marked.
func (s *ProcessedStore) MarkIfNew(ctx context.Context, code string, ttl time.Duration) (bool, error) {
	key := s.prefix + code
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — coupon was already credited
			return false, nil
		}
		return false, fmt.Errorf("redis processed check: %w", err)
	}
	return result == "OK", nil
}

// Unmark deletes a coupon marker so the next delivery is treated as fresh.
func (s *ProcessedStore) Unmark(ctx context.Context, code string) error {
	if err := s.client.Del(ctx, s.prefix+code).Err(); err != nil {
		return fmt.Errorf("redis processed unmark: %w", err)
	}
	return nil
}
