package storage

import (
	"context"
	"testing"
	"time"

	"pavanxo/menu-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCache_MenuRoundTrip(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	_, ok, err := cache.GetMenu(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	items := []domain.MenuItem{{ID: 1, Name: "Pizza", Price: 200, Category: "Mains"}}
	require.NoError(t, cache.SetMenu(ctx, items))
	assert.Equal(t, time.Minute, mr.TTL(menuCacheKey))

	got, ok, err := cache.GetMenu(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, items, got)

	require.NoError(t, cache.InvalidateMenu(ctx))
	assert.False(t, mr.Exists(menuCacheKey))
}

func TestRedisCache_EmptyMenuIsAHit(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetMenu(ctx, []domain.MenuItem{}))
	got, ok, err := cache.GetMenu(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRedisCache_CorruptSnapshotIsAMiss(t *testing.T) {
	cache, mr := setupCache(t)
	require.NoError(t, mr.Set(menuCacheKey, "{not json"))

	_, ok, err := cache.GetMenu(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_TopOrdered(t *testing.T) {
	cache, mr := setupCache(t)
	mr.ZAdd(popularAllTimeKey, 3, "1")
	mr.ZAdd(popularAllTimeKey, 9, "2")
	mr.ZAdd(popularAllTimeKey, 5, "bogus")
	mr.ZAdd(popularAllTimeKey, 1, "4")

	ranked, err := cache.TopOrdered(context.Background(), "", 3)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].ID)
	assert.Equal(t, 9, ranked[0].Ordered)
	assert.Equal(t, 1, ranked[1].ID)
}

func TestRedisCache_TopOrderedDaily(t *testing.T) {
	cache, mr := setupCache(t)
	mr.ZAdd(popularAllTimeKey, 40, "1")
	mr.ZAdd(popularDailyPrefix+"2026-10-19", 2, "1")
	mr.ZAdd(popularDailyPrefix+"2026-10-19", 6, "3")
	mr.ZAdd(popularDailyPrefix+"2026-10-18", 9, "5")

	ranked, err := cache.TopOrdered(context.Background(), "2026-10-19", 5)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 3, ranked[0].ID)
	assert.Equal(t, 6, ranked[0].Ordered)
	assert.Equal(t, 1, ranked[1].ID)
	assert.Equal(t, 2, ranked[1].Ordered)

	ranked, err = cache.TopOrdered(context.Background(), "2026-10-17", 5)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRedisCache_DailyStats(t *testing.T) {
	cache, mr := setupCache(t)
	mr.HSet(ordersDailyPrefix+"2026-10-19", "orders", "3", "revenue", "1230.5")

	stats, err := cache.DailyStats(context.Background(), "2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, domain.DailyStats{Date: "2026-10-19", Orders: 3, Revenue: 1230.5}, stats)

	stats, err = cache.DailyStats(context.Background(), "2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, domain.DailyStats{Date: "2026-10-18"}, stats)
}

func TestRedisCache_DailyStatsRedisDown(t *testing.T) {
	cache, mr := setupCache(t)
	mr.Close()

	_, err := cache.DailyStats(context.Background(), "2026-10-19")
	assert.Error(t, err)
}
