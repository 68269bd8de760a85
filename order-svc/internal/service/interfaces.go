package service

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/notify"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id string) (int64, error)
	UpdateRestaurantImage(ctx context.Context, id, imageURL string) error
}

type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, patch domain.MenuItemPatch) error
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
	UpdateMenuItemImage(ctx context.Context, id, imageURL string) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	GetOrderContext(ctx context.Context, id string) (*domain.OrderContext, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
	ConfirmPaidOrder(ctx context.Context, id string, amount decimal.Decimal) (int64, error)
	GetContact(ctx context.Context, userID, restaurantID string) (*domain.Contact, error)
	MenuItemNames(ctx context.Context, ids []string) (map[string]string, error)
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, res *domain.Reservation) error
	ListUserReservations(ctx context.Context, userID string) ([]domain.Reservation, error)
	GetReservationContext(ctx context.Context, id string) (*domain.ReservationContext, error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	GetContact(ctx context.Context, userID, restaurantID string) (*domain.Contact, error)
}

// Notifier delivers a notification carrying a QR code. Only validation
// errors are returned; delivery failures are handled by the implementation.
type Notifier interface {
	Notify(ctx context.Context, n notify.Notification) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, msg domain.KafkaMessage) error
}

type ImageHost interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// WebhookMarker records processed payment references. MarkProcessed returns
// false when the reference was already recorded.
type WebhookMarker interface {
	MarkProcessed(ctx context.Context, reference string) (bool, error)
	Forget(ctx context.Context, reference string) error
}

// OrderConfirmer moves a paid order to confirmed when the paid amount
// matches its total exactly.
type OrderConfirmer interface {
	ConfirmPaid(ctx context.Context, id string, amount decimal.Decimal) (bool, error)
}

type UserServiceInterface interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, rest *domain.Restaurant) error
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Update(ctx context.Context, rest *domain.Restaurant) error
	Delete(ctx context.Context, id string) error
	UpdateImage(ctx context.Context, id, filename string, image io.Reader) (string, error)
}

type MenuItemServiceInterface interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	List(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) error
	Delete(ctx context.Context, id string) error
	UpdateImage(ctx context.Context, id, filename string, image io.Reader) (string, error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type ReservationServiceInterface interface {
	Create(ctx context.Context, res *domain.Reservation) error
	ListForUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}

type PaymentServiceInterface interface {
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}
