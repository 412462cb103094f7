package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context, restaurant, status string) ([]Order, error)
	Update(ctx context.Context, id int64, u Update) (*Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderColumns = `id, restaurant_number, table_no, items, total, payment_mode, payment_status, status, created_at, placed_at, updated_at`

func scanOrder(row pgx.Row, o *Order) error {
	return row.Scan(&o.ID, &o.RestaurantNumber, &o.TableNo, &o.Items, &o.Total,
		&o.PaymentMode, &o.PaymentStatus, &o.Status, &o.CreatedAt, &o.PlacedAt, &o.UpdatedAt)
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (restaurant_number, table_no, items, total, payment_mode, payment_status, status, created_at, placed_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`, o.RestaurantNumber, o.TableNo, o.Items, o.Total, o.PaymentMode,
		o.PaymentStatus, o.Status, o.CreatedAt, o.PlacedAt, o.UpdatedAt).Scan(&o.ID)
}

// List returns all orders of a restaurant, newest first (ids are assigned
// monotonically by the store). An empty status means all statuses.
func (r *PGRepo) List(ctx context.Context, restaurant, status string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_number = $1 AND ($2 = '' OR status = $2)
		ORDER BY id DESC
	`, restaurant, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{} // nunca nil: la respuesta vacía debe ser []
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Update applies a whitelisted partial update to exactly one row by id and
// returns the updated row, or nil if no row matched.
func (r *PGRepo) Update(ctx context.Context, id int64, u Update) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cols, vals := u.Fields()
	set := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(vals)+2)
	args = append(args, id)
	for i, col := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+2))
	}
	args = append(args, vals...)
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)+1))
	args = append(args, u.UpdatedAt)

	var o Order
	err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders SET `+strings.Join(set, ", ")+`
		WHERE id = $1
		RETURNING `+orderColumns, args...), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
