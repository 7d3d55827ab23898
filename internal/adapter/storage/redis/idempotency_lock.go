package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyLock implements ports.IdempotencyLock using Redis SET NX, so
// two concurrent retries of one request cannot both execute.
type IdempotencyLock struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyLock creates a new Redis-backed idempotency lock.
func NewIdempotencyLock(client *goredis.Client) *IdempotencyLock {
	return &IdempotencyLock{
		client: client,
		prefix: keyPrefix + "inflight:",
	}
}

// Acquire reserves key for ttl. Returns false if another request holds it.
func (l *IdempotencyLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis idempotency lock: %w", err)
	}
	return result == "OK", nil
}

// Release frees key.
func (l *IdempotencyLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis idempotency unlock: %w", err)
	}
	return nil
}
