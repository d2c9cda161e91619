package types

import (
	"strings"
	"time"
)

// Ingredient is one entry of a recipe's ordered ingredient list. Quantity
// zero means "no quantity specified"; Unit is free text ("kg", "colheres").
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// Recipe represents a stored recipe. Ingredients reference freezer items
// by name only (case-insensitive exact match), not by ID.
type Recipe struct {
	RecipeID     string       `json:"id"`
	Name         string       `json:"name"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
	PrepTime     int          `json:"prepTime,omitempty"` // minutes
	CookTime     int          `json:"cookTime,omitempty"` // minutes
	Servings     int          `json:"servings,omitempty"`
	DateAdded    time.Time    `json:"dateAdded"`
	Notes        string       `json:"notes,omitempty"`
}

// Validate checks the recipe invariants: non-empty name, at least one
// ingredient with a non-empty name, non-empty instructions, and
// non-negative quantities, times and servings.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	named := false
	for _, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) != "" {
			named = true
		}
		if ing.Quantity < 0 {
			return ErrInvalidQuantity
		}
	}
	if !named {
		return ErrInvalidIngredients
	}
	if strings.TrimSpace(r.Instructions) == "" {
		return ErrInvalidInstructions
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return ErrInvalidTime
	}
	if r.Servings < 0 {
		return ErrInvalidData
	}
	return nil
}

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
