package storage

import (
	"context"

	"github.com/lib/pq"

	"feastly/order-svc/internal/domain"
)

const menuItemColumns = "id, restaurant_id, name, COALESCE(description, ''), price, available, COALESCE(img_url, ''), created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description, &item.Price,
		&item.Available, &item.ImageURL, &item.CreatedAt)
	return item, err
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, restaurant_id, name, description, price, available, img_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.RestaurantID, item.Name, item.Description, item.Price, item.Available, item.ImageURL, item.CreatedAt)
	return err
}

// ListMenuItems returns all menu items, filtered by restaurant when restaurantID is set.
func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	query := "SELECT " + menuItemColumns + " FROM menu_items"
	var args []any
	if restaurantID != "" {
		query += " WHERE restaurant_id = $1"
		args = append(args, restaurantID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, "SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, "menu item")
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, id string, patch domain.MenuItemPatch) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items SET
			name = COALESCE($1, name),
			description = COALESCE($2, description),
			price = COALESCE($3, price),
			available = COALESCE($4, available)
		WHERE id = $5`,
		patch.Name, patch.Description, patch.Price, patch.Available, id)
	if err != nil {
		return err
	}
	return requireRow(res, "menu item")
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateMenuItemImage(ctx context.Context, id, imageURL string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE menu_items SET img_url=$1 WHERE id=$2", imageURL, id)
	if err != nil {
		return err
	}
	return requireRow(res, "menu item")
}

// MenuItemNames maps the given ids to item names. Ids without a row are absent.
func (r *PostgresRepository) MenuItemNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM menu_items WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
