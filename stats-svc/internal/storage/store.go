package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"feastly/stats-svc/internal/domain"
)

const DailyTTL = 7 * 24 * time.Hour

// Store keeps per-restaurant lifecycle counters and a daily leaderboard of
// new orders and reservations in Redis.
type Store struct {
	rdb      *redis.Client
	dailyTTL time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb:      rdb,
		dailyTTL: DailyTTL,
	}
}

func RestaurantKey(restaurantID string) string {
	return "stats:restaurant:" + restaurantID
}

func DailyKey(day time.Time) string {
	return "stats:daily:" + day.UTC().Format("2006-01-02")
}

func (s *Store) IncrementStatus(ctx context.Context, restaurantID, field string) error {
	if err := s.rdb.HIncrBy(ctx, RestaurantKey(restaurantID), field, 1).Err(); err != nil {
		return fmt.Errorf("increment %s: %w", field, err)
	}
	return nil
}

// IncrementDaily bumps restaurantID on the leaderboard of day and refreshes
// the key expiry.
func (s *Store) IncrementDaily(ctx context.Context, day time.Time, restaurantID string) error {
	key := DailyKey(day)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, key, 1, restaurantID)
		pipe.Expire(ctx, key, s.dailyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("increment daily: %w", err)
	}
	return nil
}

// RestaurantStats returns the counters of restaurantID; a restaurant with no
// events yields an empty map.
func (s *Store) RestaurantStats(ctx context.Context, restaurantID string) (map[string]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, RestaurantKey(restaurantID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read restaurant stats: %w", err)
	}

	counters := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %s: %w", field, err)
		}
		counters[field] = n
	}
	return counters, nil
}

// TopRestaurants returns up to limit restaurants of day, busiest first.
func (s *Store) TopRestaurants(ctx context.Context, day time.Time, limit int64) ([]domain.DailyCount, error) {
	if limit <= 0 {
		return []domain.DailyCount{}, nil
	}
	entries, err := s.rdb.ZRevRangeWithScores(ctx, DailyKey(day), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read daily leaderboard: %w", err)
	}

	top := make([]domain.DailyCount, 0, len(entries))
	for _, z := range entries {
		member, _ := z.Member.(string)
		top = append(top, domain.DailyCount{RestaurantID: member, Count: int64(z.Score)})
	}
	return top, nil
}
