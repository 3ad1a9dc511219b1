package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Allows swapping the implementation (Redis, in-memory) without touching callers.
type Cache interface {
	// Get reads data from cache and unmarshals into dest.
	// Returns: (found bool, error)
	// - found = true: cache hit, data unmarshalled into dest
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores data in cache with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from cache
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection
	Ping(ctx context.Context) error

	// Methods for failed login tracking
	Increment(ctx context.Context, key string) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}
