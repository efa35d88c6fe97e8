package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAdapter implements the Cache interface using Redis.
type RedisAdapter struct {
	client *redis.Client
}

// NewRedisAdapter creates a new Redis cache adapter.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRedisAdapter(redisURL string) (*RedisAdapter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	return &RedisAdapter{client: client}, nil
}

// Append pushes value onto the list at key, trimming and refreshing the TTL
// in the same transaction.
func (r *RedisAdapter) Append(ctx context.Context, key string, value []byte, max int64, ttl time.Duration) error {
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, value)
	if max > 0 {
		pipe.LTrim(ctx, key, -max, -1)
	}
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append to key %s: %w", key, err)
	}
	return nil
}

// List returns up to n entries from the tail of the list at key, newest first.
func (r *RedisAdapter) List(ctx context.Context, key string, n int64) ([][]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	vals, err := r.client.LRange(ctx, key, -n, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}

	entries := make([][]byte, 0, len(vals))
	for i := len(vals) - 1; i >= 0; i-- {
		entries = append(entries, []byte(vals[i]))
	}
	return entries, nil
}

// Ping checks if Redis is reachable.
func (r *RedisAdapter) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisAdapter) Close() error {
	return r.client.Close()
}
