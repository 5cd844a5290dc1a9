package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"model-catalog/internal/model"
)

const generationKey = "catalog:generation"

// RedisCache stores serialized query responses. Every key embeds the current
// catalog generation, so rotating the generation drops all cached responses
// at once without scanning for keys.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) responseKey(generation, variant string, q model.IncomingModelQuery) (string, error) {
	canonical, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("could not encode query for cache key: %w", err)
	}
	return fmt.Sprintf("catalog:%s:%s:%s", generation, variant, canonical), nil
}

// generation returns the current token, creating one on first use.
func (c *RedisCache) generation(ctx context.Context) (string, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Result()
	if err == nil {
		return gen, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", err
	}
	if err := c.rdb.SetNX(ctx, generationKey, uuid.NewString(), 0).Err(); err != nil {
		return "", err
	}
	return c.rdb.Get(ctx, generationKey).Result()
}

// Lookup reads a cached response into dst. The returned key must be passed to
// Store after a miss; it pins the generation observed before the store query.
func (c *RedisCache) Lookup(ctx context.Context, variant string, q model.IncomingModelQuery, dst interface{}) (string, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return "", false, fmt.Errorf("could not read cache generation: %w", err)
	}
	key, err := c.responseKey(gen, variant, q)
	if err != nil {
		return "", false, err
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return key, false, nil
		}
		return key, false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// A payload that no longer decodes is treated as a miss and overwritten.
		return key, false, nil
	}
	return key, true, nil
}

func (c *RedisCache) Store(ctx context.Context, key string, v interface{}) error {
	if key == "" {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode response for cache: %w", err)
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate rotates the generation. Entries under the old generation expire
// through their TTL.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Set(ctx, generationKey, uuid.NewString(), 0).Err()
}
