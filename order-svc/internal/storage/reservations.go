package storage

import (
	"context"

	"feastly/order-svc/internal/domain"
)

const reservationColumns = "v.id, v.user_id, v.restaurant_id, v.reservation_time, v.status, v.created_at"

func (r *PostgresRepository) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reservations (id, user_id, restaurant_id, reservation_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID, res.UserID, res.RestaurantID, res.ReservationTime, res.Status, res.CreatedAt)
	return err
}

func (r *PostgresRepository) ListUserReservations(ctx context.Context, userID string) ([]domain.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+reservationColumns+" FROM reservations v WHERE v.user_id = $1 ORDER BY v.created_at DESC, v.id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.RestaurantID, &res.ReservationTime, &res.Status, &res.CreatedAt); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *PostgresRepository) GetReservationContext(ctx context.Context, id string) (*domain.ReservationContext, error) {
	var rc domain.ReservationContext
	res := &rc.Reservation
	err := r.DB.QueryRowContext(ctx, `
		SELECT `+reservationColumns+`, u.email, u.name, r.name
		FROM reservations v
		JOIN users u ON v.user_id = u.id
		JOIN restaurants r ON v.restaurant_id = r.id
		WHERE v.id = $1`, id).
		Scan(&res.ID, &res.UserID, &res.RestaurantID, &res.ReservationTime, &res.Status, &res.CreatedAt,
			&rc.Contact.Email, &rc.Contact.UserName, &rc.Contact.RestaurantName)
	if err != nil {
		return nil, notFound(err, "reservation, user or restaurant")
	}
	return &rc, nil
}

func (r *PostgresRepository) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE reservations SET status=$1 WHERE id=$2", status, id)
	if err != nil {
		return err
	}
	return requireRow(res, "reservation")
}
