package storage

import (
	"context"

	"feastly/order-svc/internal/domain"
)

const restaurantColumns = "id, name, COALESCE(location, ''), COALESCE(description, ''), COALESCE(img_url, ''), created_at"

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO restaurants (id, name, location, description, img_url, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		rest.ID, rest.Name, rest.Location, rest.Description, rest.ImageURL, rest.CreatedAt)
	return err
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Location, &rest.Description, &rest.ImageURL, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id).
		Scan(&rest.ID, &rest.Name, &rest.Location, &rest.Description, &rest.ImageURL, &rest.CreatedAt)
	if err != nil {
		return nil, notFound(err, "restaurant")
	}
	return &rest, nil
}

// UpdateRestaurant rewrites the descriptive columns and reloads the row,
// leaving img_url as stored.
func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE restaurants SET name=$1, location=$2, description=$3 WHERE id=$4 RETURNING "+restaurantColumns,
		rest.Name, rest.Location, rest.Description, rest.ID).
		Scan(&rest.ID, &rest.Name, &rest.Location, &rest.Description, &rest.ImageURL, &rest.CreatedAt)
	return notFound(err, "restaurant")
}

func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateRestaurantImage(ctx context.Context, id, imageURL string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE restaurants SET img_url=$1 WHERE id=$2", imageURL, id)
	if err != nil {
		return err
	}
	return requireRow(res, "restaurant")
}
