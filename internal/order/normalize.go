// Package order holds the order lifecycle contract: creation normalization,
// the partial-update field whitelist, and the Postgres repository.
package order

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrMissingRestaurant signals a request without a usable restaurant_number.
	ErrMissingRestaurant = errors.New("missing restaurant_number")
)

// Defaults fixed by convention with the frontend; the store treats them as
// plain strings.
const (
	defaultPaymentMode = "cash"
	defaultStatus      = "pending"
)

// Normalize maps a loosely-typed placement request onto the canonical Order
// shape. Defaults apply per field with null-check semantics: absent and
// explicit-null fall through, explicit zero values (total: 0) are kept.
// created_at and placed_at are stamped here and never overwritten later.
func Normalize(req CreateOrderRequest, now time.Time) (*Order, error) {
	if req.RestaurantNumber == nil || *req.RestaurantNumber == "" {
		return nil, ErrMissingRestaurant
	}

	o := &Order{
		RestaurantNumber: string(*req.RestaurantNumber),
		Items:            json.RawMessage("[]"),
		PaymentMode:      defaultPaymentMode,
		PaymentStatus:    defaultStatus,
		Status:           defaultStatus,
		CreatedAt:        now,
		PlacedAt:         now,
		UpdatedAt:        now,
	}

	// table_no wins over the legacy table_number alias
	tab := req.TableNo
	if tab == nil {
		tab = req.TableNumber
	}
	if tab != nil {
		v := string(*tab)
		o.TableNo = &v
	}

	if len(req.Items) > 0 {
		o.Items = req.Items
	}
	if req.Total != nil {
		o.Total = *req.Total
	}
	if req.PaymentMode != nil {
		o.PaymentMode = *req.PaymentMode
	}
	if req.PaymentStatus != nil {
		o.PaymentStatus = *req.PaymentStatus
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	return o, nil
}
