package domain

// DailyCount is one restaurant's number of new orders and reservations for a day.
type DailyCount struct {
	RestaurantID string `json:"restaurant_id"`
	Count        int64  `json:"count"`
}

// RestaurantStats holds the lifetime counters of a restaurant keyed by
// <kind>_<status>.
type RestaurantStats struct {
	RestaurantID string           `json:"restaurant_id"`
	Counters     map[string]int64 `json:"counters"`
}
