package types

import (
	"strings"
	"time"
)

// FreezerLocation pinpoints where an item physically sits in the freezer.
type FreezerLocation struct {
	Drawer  int    `json:"drawer"`
	Section string `json:"section"`
}

// FoodItem represents one item stored in the freezer. Category holds a
// Category ID; recipes and shopping items refer to food items by name
// only, so Name is the de facto cross-reference key.
type FoodItem struct {
	FoodItemID     string           `json:"id"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Quantity       int              `json:"quantity"`
	DateAdded      time.Time        `json:"dateAdded"`
	ExpirationDate *time.Time       `json:"expirationDate,omitempty"`
	Location       *FreezerLocation `json:"location,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// Validate checks the food item invariants: non-empty name, quantity >= 0.
func (f *FoodItem) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrInvalidName
	}
	if f.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// NameEquals reports whether name matches the item's name, ignoring case.
// Exact match only; no fuzzy or partial matching.
func (f *FoodItem) NameEquals(name string) bool {
	return strings.EqualFold(f.Name, name)
}
