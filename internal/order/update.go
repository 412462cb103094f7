package order

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoUpdatableFields signals a patch body with nothing the whitelist allows.
	ErrNoUpdatableFields = errors.New("no updatable fields provided")
)

// updatableFields is the fixed whitelist a partial update may touch, in the
// order the UPDATE statement applies them.
var updatableFields = []string{"status", "payment_status", "table_no", "total", "payment_mode"}

// Update is the minimal record written by a partial update: the whitelisted
// fields present in the request plus the updated_at stamp.
type Update struct {
	set       map[string]any
	UpdatedAt time.Time
}

// BuildUpdate filters a raw patch body down to the whitelisted fields. It
// iterates the whitelist, not the input, and uses key presence rather than
// truthiness, so an explicit `total: 0` is applied and an explicit null
// clears the column. Everything else in the body is dropped silently.
func BuildUpdate(body map[string]json.RawMessage, now time.Time) (Update, error) {
	u := Update{set: make(map[string]any), UpdatedAt: now}
	for _, f := range updatableFields {
		raw, ok := body[f]
		if !ok {
			continue
		}
		v, err := decodeField(f, raw)
		if err != nil {
			return Update{}, err
		}
		u.set[f] = v
	}
	if len(u.set) == 0 {
		return Update{}, ErrNoUpdatableFields
	}
	return u, nil
}

func decodeField(name string, raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	if name == "total" {
		var d decimal.Decimal
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("invalid total: %w", err)
		}
		return d, nil
	}
	var s FlexString
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return string(s), nil
}

// Fields returns the column/value pairs in whitelist order, ready to be
// interpolated into a SET clause.
func (u Update) Fields() (cols []string, vals []any) {
	for _, f := range updatableFields {
		if v, ok := u.set[f]; ok {
			cols = append(cols, f)
			vals = append(vals, v)
		}
	}
	return cols, vals
}

// Len reports how many whitelisted fields the update carries.
func (u Update) Len() int { return len(u.set) }

// Get returns the decoded value for a column and whether it is part of the
// update. A present column with a nil value means an explicit null.
func (u Update) Get(col string) (any, bool) {
	v, ok := u.set[col]
	return v, ok
}
