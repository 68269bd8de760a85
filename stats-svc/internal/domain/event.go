package domain

import "time"

const (
	EventOrderPlaced              = "order_placed"
	EventOrderStatusChanged       = "order_status_changed"
	EventReservationCreated       = "reservation_created"
	EventReservationStatusChanged = "reservation_status_changed"
)

const (
	KindOrder       = "order"
	KindReservation = "reservation"
)

// KafkaMessage mirrors the lifecycle event order-svc publishes.
type KafkaMessage struct {
	Type         string    `json:"type"`
	EntityID     string    `json:"entity_id"`
	RestaurantID string    `json:"restaurant_id"`
	UserID       string    `json:"user_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

// Kind returns the entity kind the event belongs to, or "" for event types
// this service does not count.
func (m KafkaMessage) Kind() string {
	switch m.Type {
	case EventOrderPlaced, EventOrderStatusChanged:
		return KindOrder
	case EventReservationCreated, EventReservationStatusChanged:
		return KindReservation
	}
	return ""
}

// IsCreation reports whether the event introduces a new order or reservation.
func (m KafkaMessage) IsCreation() bool {
	return m.Type == EventOrderPlaced || m.Type == EventReservationCreated
}

// CounterField names the hash field incremented for the event, e.g.
// "order_pending" or "reservation_confirmed".
func (m KafkaMessage) CounterField() string {
	status := m.Status
	if status == "" {
		status = "unknown"
	}
	return m.Kind() + "_" + status
}
