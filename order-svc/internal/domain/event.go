package domain

import "time"

const (
	EventOrderPlaced              = "order_placed"
	EventOrderStatusChanged       = "order_status_changed"
	EventReservationCreated       = "reservation_created"
	EventReservationStatusChanged = "reservation_status_changed"
)

// KafkaMessage is published on the order events topic for every lifecycle change.
type KafkaMessage struct {
	Type         string    `json:"type"`
	EntityID     string    `json:"entity_id"`
	RestaurantID string    `json:"restaurant_id"`
	UserID       string    `json:"user_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}
