package order

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FlexString decodes a JSON string or number into its textual form. The
// frontend sends restaurant_number and table_no sometimes as strings and
// sometimes as numbers; the store column is text either way.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

// CreateOrderRequest payload of order placement. Pointer fields distinguish
// an absent field from an explicit zero, so `total: 0` survives defaulting.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	RestaurantNumber *FlexString `json:"restaurant_number" example:"7"`
	TableNo          *FlexString `json:"table_no"     example:"12"`
	// TableNumber is a legacy alias for table_no still sent by older frontends.
	TableNumber   *FlexString      `json:"table_number" example:"12"`
	Items         json.RawMessage  `json:"items"`
	Total         *decimal.Decimal `json:"total" example:"240.50"`
	PaymentMode   *string          `json:"payment_mode"   example:"cash"`
	PaymentStatus *string          `json:"payment_status" example:"pending"`
	Status        *string          `json:"status"         example:"pending"`
}
