package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"feastly/logger"
	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/notify"
)

type OrderService struct {
	repo      OrderRepository
	notifier  Notifier
	publisher EventPublisher
	log       *logger.Logger
	now       func() time.Time
}

func NewOrderService(repo OrderRepository, notifier Notifier, publisher EventPublisher, log *logger.Logger) *OrderService {
	return &OrderService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

func validateOrder(order *domain.Order) error {
	var missing []string
	if strings.TrimSpace(order.UserID) == "" {
		missing = append(missing, "user_id")
	}
	if strings.TrimSpace(order.RestaurantID) == "" {
		missing = append(missing, "restaurant_id")
	}
	if len(order.Items) == 0 {
		missing = append(missing, "items")
	}
	if !order.TotalPrice.IsPositive() {
		missing = append(missing, "total_price")
	}
	if strings.TrimSpace(order.PaymentMethod) == "" {
		missing = append(missing, "payment_method")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing or empty fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}

	for i, item := range order.Items {
		if item.ID == "" {
			return fmt.Errorf("%w: items[%d].id is required", domain.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d].quantity must be positive", domain.ErrValidation, i)
		}
	}
	return nil
}

// PlaceOrder stores a new pending order and then resolves the recipient.
// The row is kept even when the user or restaurant cannot be resolved.
func (s *OrderService) PlaceOrder(ctx context.Context, order *domain.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	order.ID = uuid.NewString()
	order.Status = domain.OrderPending
	order.CreatedAt = s.now().UTC()

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	s.log.Info(ctx, "order_placed", "order stored", slog.String("order_id", order.ID))
	s.publish(ctx, domain.EventOrderPlaced, order)

	contact, err := s.repo.GetContact(ctx, order.UserID, order.RestaurantID)
	if err != nil {
		return fmt.Errorf("resolve user or restaurant: %w", err)
	}

	s.notifyOrder(ctx, order, contact, orderPlacedMessage)
	return nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.repo.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status value %q", domain.ErrValidation, status)
	}

	oc, err := s.repo.GetOrderContext(ctx, id)
	if err != nil {
		return err
	}

	previous := oc.Order.Status
	if previous != status && !previous.CanTransition(status) {
		s.log.Warn(ctx, "order_status_out_of_order", "status update does not follow the order lifecycle",
			slog.String("order_id", id),
			slog.String("from", string(previous)),
			slog.String("to", string(status)),
		)
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	oc.Order.Status = status
	s.publish(ctx, domain.EventOrderStatusChanged, &oc.Order)

	if msg, ok := orderStatusMessages[status]; ok {
		s.notifyOrder(ctx, &oc.Order, &oc.Contact, msg)
	}
	return nil
}

// ConfirmPaid confirms the order only when amount equals its stored total.
// A mismatch leaves the order untouched and reports false.
func (s *OrderService) ConfirmPaid(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	rows, err := s.repo.ConfirmPaidOrder(ctx, id, amount)
	if err != nil {
		return false, fmt.Errorf("confirm paid order: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	oc, err := s.repo.GetOrderContext(ctx, id)
	if err != nil {
		s.log.Error(ctx, "order_confirm_notify", "confirmed order could not be loaded for notification", err,
			slog.String("order_id", id))
		return true, nil
	}
	s.publish(ctx, domain.EventOrderStatusChanged, &oc.Order)
	s.notifyOrder(ctx, &oc.Order, &oc.Contact, orderStatusMessages[domain.OrderConfirmed])
	return true, nil
}

func (s *OrderService) notifyOrder(ctx context.Context, order *domain.Order, contact *domain.Contact, msg message) {
	names, err := s.repo.MenuItemNames(ctx, itemIDs(order.Items))
	if err != nil {
		s.log.Error(ctx, "order_notify", "failed to resolve menu item names", err, slog.String("order_id", order.ID))
		return
	}

	subject, body, err := msg.render(messageData{
		UserName:       contact.UserName,
		RestaurantName: contact.RestaurantName,
		Items:          describeItems(order.Items, names),
		TotalPrice:     order.TotalPrice.StringFixed(2),
	})
	if err != nil {
		s.log.Error(ctx, "order_notify", "failed to render notification", err, slog.String("order_id", order.ID))
		return
	}

	err = s.notifier.Notify(ctx, notify.Notification{
		To:         contact.Email,
		Subject:    subject,
		HTML:       body,
		ArtifactID: order.ID,
		Kind:       notify.KindOrder,
	})
	if err != nil {
		s.log.Error(ctx, "order_notify", "notification rejected", err, slog.String("order_id", order.ID))
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishEvent(ctx, domain.KafkaMessage{
		Type:         eventType,
		EntityID:     order.ID,
		RestaurantID: order.RestaurantID,
		UserID:       order.UserID,
		Status:       string(order.Status),
		Timestamp:    s.now().UTC(),
	})
	if err != nil {
		s.log.Error(ctx, "order_event", "failed to publish order event", err, slog.String("order_id", order.ID))
	}
}

var (
	_ OrderServiceInterface = (*OrderService)(nil)
	_ OrderConfirmer        = (*OrderService)(nil)
)
