package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by GetJSON when the key is absent or caching is disabled.
var ErrCacheMiss = errors.New("cache miss")

// GetJSON reads the key and unmarshals its JSON value into dest.
func GetJSON(ctx context.Context, key string, dest interface{}) error {
	if client == nil {
		return ErrCacheMiss
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON marshals value as JSON and stores it under key with the given TTL.
// Failures are swallowed; the cache is best effort.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	client.Set(ctx, key, raw, ttl)
}

// Aside implements the cache-aside pattern: on a hit dest is filled from the
// cache; on a miss fetch runs and its result is cached for ttl. fetch must
// populate dest itself.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() error) error {
	if err := GetJSON(ctx, key, dest); err == nil {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	SetJSON(ctx, key, dest, ttl)
	return nil
}
