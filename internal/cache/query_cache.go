package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"
)

// QueryCache is the HTTP-level cache for list responses, keyed by resource
// name plus request parameters with a short staleness window. It is
// best-effort: redis trouble reads as a miss and writes are fire-and-forget
// from the caller's point of view.
type QueryCache struct {
	client *redis_v9.Client
	ttl    time.Duration
}

func NewQueryCache(client *redis_v9.Client, ttl time.Duration) *QueryCache {
	return &QueryCache{
		client: client,
		ttl:    ttl,
	}
}

// Key builds a cache key from the resource name and its query parameters.
func Key(resource, userID string, params ...string) string {
	parts := append([]string{"portal", resource, userID}, params...)
	return strings.Join(parts, ":")
}

func (c *QueryCache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.client == nil {
		return false
	}
	encoded, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(encoded, out); err != nil {
		return false
	}
	return true
}

func (c *QueryCache) Set(ctx context.Context, key string, value any) error {
	if c == nil || c.client == nil {
		return nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error saving struct to cache: %s", err)
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		return fmt.Errorf("error saving struct to cache: %s", err)
	}
	return nil
}

// invalidationPattern matches only the user's own parameterized keys. The
// separator before the wildcard keeps a user ID that is a string prefix of
// another (u1 vs u12) from matching the longer one's keys.
func invalidationPattern(resource, userID string) string {
	return Key(resource, userID) + ":*"
}

// Invalidate drops every cached entry for one user's resource, used after a
// successful write so lists do not serve stale rows for the full window.
func (c *QueryCache) Invalidate(ctx context.Context, resource, userID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, invalidationPattern(resource, userID), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("error deleting key %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}
