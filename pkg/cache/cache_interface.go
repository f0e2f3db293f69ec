package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache in front of the
// master-data lookups. Implementations must treat a miss as
// (found=false, nil) so callers can fall through to the database.
type Cache interface {
	// Get fetches key and unmarshals it into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	// Used to invalidate slug-keyed entries after a write.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
