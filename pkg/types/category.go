package types

import (
	"regexp"
	"strings"
)

// Default category IDs seeded on first initialization of the category
// collection. The ID doubles as the display name for defaults.
const (
	CategoryCaldos     = "CALDOS"
	CategoryCarnes     = "CARNES"
	CategoryProntos    = "PRONTOS"
	CategoryCongelador = "CONGELADOR"
	CategoryGaveta     = "GAVETA"
)

// DefaultCategoryIDs lists the seeded categories in seed order.
var DefaultCategoryIDs = []string{
	CategoryCaldos,
	CategoryCarnes,
	CategoryProntos,
	CategoryCongelador,
	CategoryGaveta,
}

// Category is a user-defined (or seeded default) grouping for food items.
// Default categories cannot be edited or deleted.
type Category struct {
	CategoryID string `json:"id"`
	Name       string `json:"name"`
	IsDefault  bool   `json:"isDefault"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CategoryIDFor derives the deterministic category ID from a name:
// uppercased, runs of whitespace replaced by underscores.
// "Carnes Nobres" becomes "CARNES_NOBRES".
func CategoryIDFor(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToUpper(strings.TrimSpace(name)), "_")
}

// Validate checks that the category has a non-empty name.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidName
	}
	return nil
}
