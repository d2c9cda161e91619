package types

import "errors"

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity
// struct.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Set creates or updates an entity. When id is empty an ID is assigned
	// (a UUID v7, or for categories the deterministic name slug). Returns
	// the actual ID used (generated or provided).
	Set(id string, data any) (string, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// Fetch returns all entities matching the filter. An empty filter
	// returns every entity in the table, in collection (insertion) order.
	Fetch(filter map[string]any) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrInvalidFilter = errors.New("invalid filter value type")
)

// Entity validation errors.
var (
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidQuantity     = errors.New("quantity must not be negative")
	ErrInvalidIngredients  = errors.New("recipe needs at least one named ingredient")
	ErrInvalidInstructions = errors.New("instructions must not be empty")
	ErrInvalidTime         = errors.New("time must not be negative")
	ErrDuplicateName       = errors.New("name already in use")
	ErrDefaultCategory     = errors.New("default categories cannot be changed")
	ErrInvalidWidget       = errors.New("invalid widget order")
)
