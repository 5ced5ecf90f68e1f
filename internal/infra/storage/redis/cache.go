package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/txledger/internal/coordinator"

	"github.com/redis/go-redis/v9"
)

// cacheKeyPrefix namespaces every cache key written by txledger.
const cacheKeyPrefix = "txledger"

// cacheKey returns the Redis key for a cache entry. The format is:
//
//	"txledger:cache:<key>"
func cacheKey(key string) string {
	return fmt.Sprintf("%s:cache:%s", cacheKeyPrefix, key)
}

// Set stores value under key with no expiration.
func (c *client) Set(ctx context.Context, key, value string) error {
	return c.conn.Set(ctx, cacheKey(key), value, 0).Err()
}

// Get returns the value stored under key, or coordinator.ErrCacheMiss if
// the key does not exist.
func (c *client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.conn.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = coordinator.ErrCacheMiss
		}

		return "", err
	}

	return val, nil
}

// Compile-time assertion to ensure client implements the Cache interface.
var _ coordinator.Cache = new(client)
