package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a read-only row of the menu_items table. The backend never
// writes menu items; restaurants manage them directly in the hosted store.
type MenuItem struct {
	ID               int64  `json:"id"`
	RestaurantNumber string `json:"restaurant_number"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	// NUMERIC in Postgres; serialized as a string to avoid rounding errors
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	Available bool            `json:"available"`
	CreatedAt time.Time       `json:"created_at"`
}
