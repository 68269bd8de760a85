package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feastly/order-svc/internal/storage"
)

func TestWebhookMarkers(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	markers := storage.NewWebhookMarkers(client, time.Hour)
	ctx := context.Background()

	fresh, err := markers.MarkProcessed(ctx, "ref-1")
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = markers.MarkProcessed(ctx, "ref-1")
	require.NoError(t, err)
	assert.False(t, fresh)
	assert.Equal(t, time.Hour, mr.TTL("webhook:paystack:ref-1"))

	require.NoError(t, markers.Forget(ctx, "ref-1"))
	fresh, err = markers.MarkProcessed(ctx, "ref-1")
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestWebhookMarkersExpire(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	markers := storage.NewWebhookMarkers(client, time.Minute)
	ctx := context.Background()

	_, err := markers.MarkProcessed(ctx, "ref-2")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	fresh, err := markers.MarkProcessed(ctx, "ref-2")
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestWebhookMarkersRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	_, err := storage.NewWebhookMarkers(client, time.Minute).MarkProcessed(context.Background(), "ref-3")
	assert.Error(t, err)
}
