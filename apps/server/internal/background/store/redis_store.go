package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tilsley/gallery/apps/server/internal/background"
	"github.com/tilsley/gallery/pkg/api"
)

const redisCurrentKey = "background:current"

// Compile-time check: *RedisStore implements background.Store.
var _ background.Store = (*RedisStore)(nil)

// RedisStore implements background.Store using go-redis directly.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a new RedisStore.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Load returns the saved configuration, or nil if none exists.
func (s *RedisStore) Load(ctx context.Context) (*api.BackgroundConfig, error) {
	val, err := s.rdb.Get(ctx, redisCurrentKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil //nolint:nilnil // caller checks nil value to detect "not found"
	}
	if err != nil {
		return nil, fmt.Errorf("get background: %w", err)
	}
	var cfg api.BackgroundConfig
	if err := json.Unmarshal([]byte(val), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal background: %w", err)
	}
	return &cfg, nil
}

// Save overwrites the saved configuration.
func (s *RedisStore) Save(ctx context.Context, cfg api.BackgroundConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal background: %w", err)
	}
	if err := s.rdb.Set(ctx, redisCurrentKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save background: %w", err)
	}
	return nil
}
