package cache

import (
	"context"
	"encoding/json"
	"time"
)

// GetOrLoadJSON caches a typed value as JSON under key. A nil *Cache
// disables caching and calls load directly, which keeps call sites free of
// "is the cache configured" branches.
func GetOrLoadJSON[T any](c *Cache, ctx context.Context, key string, ttl time.Duration, load func(ctx context.Context) (*T, error)) (*T, error) {
	if c == nil {
		return load(ctx)
	}
	raw, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}
