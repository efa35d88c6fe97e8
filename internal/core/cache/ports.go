package cache

import (
	"context"
	"time"
)

// Cache defines the storage operations the application needs from a cache
// provider. This is a port that can be implemented by different backends
// (Redis, Memcached, etc.).
type Cache interface {
	// Append pushes value onto the tail of the list at key, trims the list
	// to the newest max entries, and refreshes the key's TTL.
	// A max of 0 means unbounded; a TTL of 0 means no expiration.
	Append(ctx context.Context, key string, value []byte, max int64, ttl time.Duration) error

	// List returns up to n entries from the tail of the list at key,
	// newest first. A missing key yields an empty result.
	List(ctx context.Context, key string, n int64) ([][]byte, error)

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
