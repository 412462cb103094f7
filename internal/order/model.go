package order

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the canonical row shape of the orders table. Items are opaque to
// the backend: the line-item JSON from the frontend is stored and returned
// as-is.
type Order struct {
	ID               int64           `json:"id"`
	RestaurantNumber string          `json:"restaurant_number"`
	TableNo          *string         `json:"table_no"`
	Items            json.RawMessage `json:"items"`
	// NUMERIC in Postgres; serialized as a string to avoid rounding errors
	Total         decimal.Decimal `json:"total"`
	PaymentMode   string          `json:"payment_mode"`
	PaymentStatus string          `json:"payment_status"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	PlacedAt      time.Time       `json:"placed_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
