package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// WebhookMarkers records payment references already handled, so provider
// retries of the same charge are acknowledged without reprocessing.
type WebhookMarkers struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewWebhookMarkers(client *redis.Client, ttl time.Duration) *WebhookMarkers {
	return &WebhookMarkers{Client: client, TTL: ttl}
}

func (m *WebhookMarkers) MarkerKey(reference string) string {
	return "webhook:paystack:" + reference
}

// MarkProcessed sets the marker for reference and reports whether it was new.
func (m *WebhookMarkers) MarkProcessed(ctx context.Context, reference string) (bool, error) {
	return m.Client.SetNX(ctx, m.MarkerKey(reference), "1", m.TTL).Result()
}

func (m *WebhookMarkers) Forget(ctx context.Context, reference string) error {
	return m.Client.Del(ctx, m.MarkerKey(reference)).Err()
}
