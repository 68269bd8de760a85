package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feastly/stats-svc/internal/domain"
	"feastly/stats-svc/internal/storage"
)

func newStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewStore(client), mr
}

func TestIncrementStatus(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.IncrementStatus(ctx, "r-1", "order_pending"))
	require.NoError(t, store.IncrementStatus(ctx, "r-1", "order_pending"))
	require.NoError(t, store.IncrementStatus(ctx, "r-1", "reservation_confirmed"))

	assert.Equal(t, "2", mr.HGet("stats:restaurant:r-1", "order_pending"))

	stats, err := store.RestaurantStats(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"order_pending": 2, "reservation_confirmed": 1}, stats)
}

func TestRestaurantStatsEmpty(t *testing.T) {
	store, _ := newStore(t)

	stats, err := store.RestaurantStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestRestaurantStatsCorruptCounter(t *testing.T) {
	store, mr := newStore(t)
	mr.HSet("stats:restaurant:r-1", "order_pending", "lots")

	_, err := store.RestaurantStats(context.Background(), "r-1")
	assert.Error(t, err)
}

func TestIncrementDaily(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	day := time.Date(2024, 5, 2, 23, 30, 0, 0, time.UTC)

	require.NoError(t, store.IncrementDaily(ctx, day, "r-1"))
	require.NoError(t, store.IncrementDaily(ctx, day, "r-2"))
	require.NoError(t, store.IncrementDaily(ctx, day, "r-2"))

	assert.Equal(t, storage.DailyTTL, mr.TTL("stats:daily:2024-05-02"))

	top, err := store.TopRestaurants(ctx, day, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.DailyCount{
		{RestaurantID: "r-2", Count: 2},
		{RestaurantID: "r-1", Count: 1},
	}, top)

	top, err = store.TopRestaurants(ctx, day, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	other, err := store.TopRestaurants(ctx, day.Add(24*time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestDailyKeyUsesUTC(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	day := time.Date(2024, 5, 3, 0, 30, 0, 0, lagos)

	assert.Equal(t, "stats:daily:2024-05-02", storage.DailyKey(day))
}

func TestStoreRedisDown(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()
	ctx := context.Background()

	assert.Error(t, store.IncrementStatus(ctx, "r-1", "order_pending"))
	assert.Error(t, store.IncrementDaily(ctx, time.Now(), "r-1"))
	_, err := store.RestaurantStats(ctx, "r-1")
	assert.Error(t, err)
}
