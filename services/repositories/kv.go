package repositories

import (
	"context"
	"time"
)

// KV is the slice of the key-value store the ledger and review
// repositories need. RedisService satisfies it; tests use an in-memory
// map.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}
