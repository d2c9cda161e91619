package types

import (
	"strings"
	"time"
)

// ShoppingListItem is one entry of the shopping list. Checked means the
// user marked it as purchased; checked items are pending reconciliation
// into the freezer or plain removal.
type ShoppingListItem struct {
	ShoppingListItemID string    `json:"id"`
	Name               string    `json:"name"`
	Quantity           float64   `json:"quantity,omitempty"`
	Unit               string    `json:"unit,omitempty"`
	Checked            bool      `json:"checked"`
	DateAdded          time.Time `json:"dateAdded"`
	Notes              string    `json:"notes,omitempty"`
}

// Validate checks that the item has a non-empty name and a non-negative
// quantity.
func (s *ShoppingListItem) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrInvalidName
	}
	if s.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
