// Package menu provides read access to the menu_items table.
package menu

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	ListByRestaurant(ctx context.Context, restaurant string) ([]MenuItem, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByRestaurant(ctx context.Context, restaurant string) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_number, name, description, price, category, image_url, available, created_at
		FROM menu_items
		WHERE restaurant_number = $1
		ORDER BY id
	`, restaurant)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MenuItem{}
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(&m.ID, &m.RestaurantNumber, &m.Name, &m.Description,
			&m.Price, &m.Category, &m.ImageURL, &m.Available, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
