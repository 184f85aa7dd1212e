// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxCartItems caps the number of items a single cart may hold.
const MaxCartItems = 100

// Cart is the sole persisted aggregate: one item list owned by an anonymous
// browser session, an authenticated user, or both during migration.
// At least one of SessionID/UserID is always set on records this service creates.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	SessionID *string    `json:"session_id,omitempty"` // Anonymous session token, set before login.
	UserID    *uuid.UUID `json:"user_id,omitempty"`    // Account UUID, set once the cart is linked to a user.
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a value object with an open schema: the four typed fields are
// required and validated, everything else the client sends is carried in
// Attrs and round-trips verbatim.
type CartItem struct {
	ID       string                     `validate:"required,min=1,max=100"`
	Name     string                     `validate:"required,min=1,max=255"`
	Price    float64                    `validate:"gte=0,lte=999999"`
	Quantity int                        `validate:"gt=0,lte=999"`
	Attrs    map[string]json.RawMessage `validate:"-"`
}

// Reserved JSON keys that map to typed CartItem fields.
const (
	itemKeyID       = "id"
	itemKeyName     = "name"
	itemKeyPrice    = "price"
	itemKeyQuantity = "quantity"
)

// UnmarshalJSON decodes the typed fields and keeps every unrecognized key in Attrs.
func (i *CartItem) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw[itemKeyID]; ok {
		if err := json.Unmarshal(v, &i.ID); err != nil {
			return err
		}
		delete(raw, itemKeyID)
	}
	if v, ok := raw[itemKeyName]; ok {
		if err := json.Unmarshal(v, &i.Name); err != nil {
			return err
		}
		delete(raw, itemKeyName)
	}
	if v, ok := raw[itemKeyPrice]; ok {
		if err := json.Unmarshal(v, &i.Price); err != nil {
			return err
		}
		delete(raw, itemKeyPrice)
	}
	if v, ok := raw[itemKeyQuantity]; ok {
		if err := json.Unmarshal(v, &i.Quantity); err != nil {
			return err
		}
		delete(raw, itemKeyQuantity)
	}

	if len(raw) > 0 {
		i.Attrs = raw
	} else {
		i.Attrs = nil
	}

	return nil
}

// MarshalJSON merges the typed fields back with the preserved attribute bag.
// Typed fields win over any stale duplicate key in Attrs.
func (i CartItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(i.Attrs)+4)
	for k, v := range i.Attrs {
		out[k] = v
	}

	for key, value := range map[string]any{
		itemKeyID:       i.ID,
		itemKeyName:     i.Name,
		itemKeyPrice:    i.Price,
		itemKeyQuantity: i.Quantity,
	} {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		out[key] = encoded
	}

	return json.Marshal(out)
}

// itemValidator is shared; validator.Validate is safe for concurrent use.
var itemValidator = validator.New()

// itemBatch exists so the whole list is validated in one pass,
// including the cart-level length cap.
type itemBatch struct {
	Items []CartItem `validate:"max=100,dive"`
}

// ValidateItems checks an item list as one batch against the CartItem shape
// and the cart length cap. The returned error carries per-field detail and
// must only ever reach logs, never a response body.
func ValidateItems(items []CartItem) error {
	return itemValidator.Struct(itemBatch{Items: items})
}
