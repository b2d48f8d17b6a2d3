package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tilsley/gallery/apps/server/internal/gallery"
)

const redisKeyPrefix = "gallery:"

// Compile-time check: *RedisCache implements gallery.Cache.
var _ gallery.Cache = (*RedisCache)(nil)

// RedisCache implements gallery.Cache on go-redis so several server replicas
// share one contents cache. Keys expire after ttl on the Redis side as well;
// the gallery.Client still checks StoredAt against its own clock.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache creates a RedisCache whose keys expire after ttl.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// Get returns the entry for key, or nil if it is absent or expired.
func (s *RedisCache) Get(ctx context.Context, key string) (*gallery.CacheEntry, error) {
	val, err := s.rdb.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil //nolint:nilnil // caller checks nil value to detect "not found"
	}
	if err != nil {
		return nil, fmt.Errorf("get cache entry %q: %w", key, err)
	}
	var e gallery.CacheEntry
	if err := json.Unmarshal([]byte(val), &e); err != nil {
		return nil, fmt.Errorf("unmarshal cache entry %q: %w", key, err)
	}
	return &e, nil
}

// Set stores entry, replacing any previous value and resetting its expiry.
func (s *RedisCache) Set(ctx context.Context, entry gallery.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+entry.Key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set cache entry %q: %w", entry.Key, err)
	}
	return nil
}

// Clear deletes every gallery cache key.
func (s *RedisCache) Clear(ctx context.Context) error {
	iter := s.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete cache keys: %w", err)
	}
	return nil
}
