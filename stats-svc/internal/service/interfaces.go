package service

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"feastly/stats-svc/internal/domain"
	"feastly/stats-svc/internal/storage"
)

type StoreInterface interface {
	IncrementStatus(ctx context.Context, restaurantID, field string) error
	IncrementDaily(ctx context.Context, day time.Time, restaurantID string) error
	RestaurantStats(ctx context.Context, restaurantID string) (map[string]int64, error)
	TopRestaurants(ctx context.Context, day time.Time, limit int64) ([]domain.DailyCount, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StatsInterface interface {
	RestaurantStats(ctx context.Context, restaurantID string) (*domain.RestaurantStats, error)
	TopToday(ctx context.Context, limit int64) ([]domain.DailyCount, error)
}

var (
	_ StoreInterface = (*storage.Store)(nil)
	_ MessageReader  = (*kafka.Reader)(nil)
	_ StatsInterface = (*StatsService)(nil)
)
