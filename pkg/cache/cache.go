package cache

import (
	"context"
	"time"
)

// Cache is the contract shared by the Redis implementation and the
// in-memory implementation used in tests. All cache usage in this
// codebase is best-effort: callers log failures and continue.
type Cache interface {
	// Get unmarshals the cached value into dest and reports whether the
	// key was present. On a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern,
	// e.g. "blogs:*" after a blog write.
	DeletePattern(ctx context.Context, pattern string) error

	// Increment atomically increments a counter key and returns the new
	// value. Used by the rate limiter's fixed windows.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets a TTL on an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
