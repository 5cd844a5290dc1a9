package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-catalog/internal/model"
	"model-catalog/internal/repository"
)

func setupCache(t *testing.T, ttl time.Duration) (*repository.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return repository.NewRedisCache(rdb, ttl), mr
}

func TestRedisCache_LookupStore(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupCache(t, time.Minute)
	q := query(t, model.IncomingModelQueryFields{ModelOwner: ptr("DeepSeek")})

	var resp model.ModelResponse
	key, hit, err := cache.Lookup(ctx, "models", q, &resp)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NotEmpty(t, key)
	assert.Contains(t, key, `"model_owner":"deepseek"`)

	stored := model.ModelResponse{
		QueryMetrics: model.QueryMetrics{QueryTimeMs: 1.5, TotalRecords: 1},
		Models:       []model.ModelInfo{record("Deepseek R1", "deepseek", "free", 128000).Info},
	}
	require.NoError(t, cache.Store(ctx, key, stored))

	key2, hit, err := cache.Lookup(ctx, "models", q, &resp)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, key, key2)
	require.Len(t, resp.Models, 1)
	assert.Equal(t, "Deepseek R1", resp.Models[0].ID)
	assert.Equal(t, 1, resp.QueryMetrics.TotalRecords)

	// Variants never share entries.
	var other model.ModelResponseWithOptionalParameters
	_, hit, err = cache.Lookup(ctx, "models_with_parameters", q, &other)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_InvalidateRotatesGeneration(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupCache(t, time.Minute)
	q := query(t, model.IncomingModelQueryFields{})

	var resp model.ModelResponse
	key, _, err := cache.Lookup(ctx, "models", q, &resp)
	require.NoError(t, err)
	require.NoError(t, cache.Store(ctx, key, model.ModelResponse{}))

	require.NoError(t, cache.Invalidate(ctx))

	newKey, hit, err := cache.Lookup(ctx, "models", q, &resp)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NotEqual(t, key, newKey)
}

func TestRedisCache_TTLAndCorruptPayload(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupCache(t, 30*time.Second)
	q := query(t, model.IncomingModelQueryFields{ModelType: ptr("free")})

	var resp model.ModelResponse
	key, _, err := cache.Lookup(ctx, "models", q, &resp)
	require.NoError(t, err)
	require.NoError(t, cache.Store(ctx, key, model.ModelResponse{}))
	assert.Equal(t, 30*time.Second, mr.TTL(key))

	mr.FastForward(31 * time.Second)
	_, hit, err := cache.Lookup(ctx, "models", q, &resp)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, mr.Set(key, `{"models":[]}`))
	_, hit, err = cache.Lookup(ctx, "models", q, &resp)
	require.NoError(t, err)
	assert.False(t, hit, "payload missing query_metrics must not count as a hit")
}

func TestRedisCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupCache(t, time.Minute)
	mr.Close()

	var resp model.ModelResponse
	_, _, err := cache.Lookup(ctx, "models", query(t, model.IncomingModelQueryFields{}), &resp)
	assert.Error(t, err)
}
