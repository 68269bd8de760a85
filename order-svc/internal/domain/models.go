package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ImageURL    string    `json:"img_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
	ImageURL     string          `json:"img_url"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MenuItemPatch carries a partial update; nil fields keep the stored value.
type MenuItemPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Available   *bool            `json:"available"`
}

type OrderItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	RestaurantID  string          `json:"restaurant_id"`
	Items         []OrderItem     `json:"items"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Reservation struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	RestaurantID    string            `json:"restaurant_id"`
	ReservationTime string            `json:"reservation_time"`
	Status          ReservationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Contact is the user and restaurant context needed to address a notification.
type Contact struct {
	Email          string
	UserName       string
	RestaurantName string
}

// OrderContext is an order joined with its user and restaurant.
type OrderContext struct {
	Order   Order
	Contact Contact
}

type ReservationContext struct {
	Reservation Reservation
	Contact     Contact
}
