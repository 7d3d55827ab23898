package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache using Redis. Entries
// are write-once: the first recorded response for a key is the one every
// retry replays until it expires.
type IdempotencyCache struct {
	client *goredis.Client
	prefix string
}

// NewIdempotencyCache creates a Redis-backed replay cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: keyPrefix + "idempotency:",
	}
}

// Get returns the recorded response for key, or nil, nil when none is stored.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	stored, err := c.client.Get(ctx, c.prefix+key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("redis replay lookup %q: %w", key, err)
	}
	return stored, nil
}

// Set records response under key for ttl unless a response is already
// recorded. Losing that race is not an error.
func (c *IdempotencyCache) Set(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	err := c.client.SetArgs(ctx, c.prefix+key, response, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis replay record %q: %w", key, err)
	}
	return nil
}
