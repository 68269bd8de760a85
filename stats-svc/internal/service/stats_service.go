package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"feastly/stats-svc/internal/domain"
)

const DefaultTopLimit = 10

type StatsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewStatsService(store StoreInterface) *StatsService {
	return &StatsService{store: store, now: time.Now}
}

func (s *StatsService) RestaurantStats(ctx context.Context, restaurantID string) (*domain.RestaurantStats, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return nil, fmt.Errorf("%w: restaurant id is required", domain.ErrValidation)
	}

	counters, err := s.store.RestaurantStats(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if counters == nil {
		counters = map[string]int64{}
	}
	return &domain.RestaurantStats{RestaurantID: restaurantID, Counters: counters}, nil
}

// TopToday ranks restaurants by orders and reservations created today (UTC).
// A non-positive limit falls back to DefaultTopLimit.
func (s *StatsService) TopToday(ctx context.Context, limit int64) ([]domain.DailyCount, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	top, err := s.store.TopRestaurants(ctx, s.now().UTC(), limit)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []domain.DailyCount{}
	}
	return top, nil
}
