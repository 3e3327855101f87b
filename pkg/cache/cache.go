package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer. Implementations
// live in internal/infrastructure/cache.
type Cache interface {
	// Get unmarshals a cached value into dest. found=false means a miss;
	// dest is untouched on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
