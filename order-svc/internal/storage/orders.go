package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"feastly/order-svc/internal/domain"
)

const orderColumns = "o.id, o.user_id, o.restaurant_id, o.items, o.total_price, o.status, o.payment_method, o.created_at"

func scanOrder(row rowScanner, extra ...any) (domain.Order, error) {
	var (
		order domain.Order
		items []byte
	)
	dest := append([]any{&order.ID, &order.UserID, &order.RestaurantID, &items, &order.TotalPrice,
		&order.Status, &order.PaymentMethod, &order.CreatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return order, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return order, fmt.Errorf("decode items of order %s: %w", order.ID, err)
	}
	return order, nil
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, restaurant_id, items, total_price, status, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID, order.UserID, order.RestaurantID, string(items), order.TotalPrice,
		order.Status, order.PaymentMethod, order.CreatedAt)
	return err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders o WHERE o.id = $1", id))
	if err != nil {
		return nil, notFound(err, "order")
	}
	return &order, nil
}

// ListUserOrders returns the user's orders newest first; equal timestamps
// fall back to id descending so the order is deterministic.
func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders o WHERE o.user_id = $1 ORDER BY o.created_at DESC, o.id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetOrderContext(ctx context.Context, id string) (*domain.OrderContext, error) {
	var oc domain.OrderContext
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`, u.email, u.name, r.name
		FROM orders o
		JOIN users u ON o.user_id = u.id
		JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.id = $1`, id),
		&oc.Contact.Email, &oc.Contact.UserName, &oc.Contact.RestaurantName)
	if err != nil {
		return nil, notFound(err, "order, user or restaurant")
	}
	oc.Order = order
	return &oc, nil
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE orders SET status=$1 WHERE id=$2", status, id)
	if err != nil {
		return err
	}
	return requireRow(res, "order")
}

// ConfirmPaidOrder confirms the order only if amount equals total_price and
// reports how many rows changed.
func (r *PostgresRepository) ConfirmPaidOrder(ctx context.Context, id string, amount decimal.Decimal) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status=$1 WHERE id=$2 AND total_price=$3", domain.OrderConfirmed, id, amount)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetContact resolves the recipient of a notification for userID at restaurantID.
func (r *PostgresRepository) GetContact(ctx context.Context, userID, restaurantID string) (*domain.Contact, error) {
	var c domain.Contact
	err := r.DB.QueryRowContext(ctx, `
		SELECT u.email, u.name, r.name
		FROM users u, restaurants r
		WHERE u.id = $1 AND r.id = $2`, userID, restaurantID).
		Scan(&c.Email, &c.UserName, &c.RestaurantName)
	if err != nil {
		return nil, notFound(err, "user or restaurant")
	}
	return &c, nil
}
