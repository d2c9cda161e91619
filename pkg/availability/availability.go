// Package availability matches recipe ingredients against the freezer
// inventory by name and formats ingredients for display.
package availability

import (
	"strconv"
	"strings"

	"github.com/frostkeep/icebox/pkg/types"
)

// Result describes whether an ingredient is covered by the inventory and
// how much of it the freezer holds.
type Result struct {
	Available       bool
	FreezerQuantity int
}

// Check matches one ingredient against the inventory. Names are compared
// case-insensitively and must match exactly; no match means not available.
// An ingredient without a quantity is available whenever any stock exists,
// one with a quantity only when stock covers it.
func Check(ing types.Ingredient, items []*types.FoodItem) Result {
	for _, item := range items {
		if !item.NameEquals(ing.Name) {
			continue
		}
		if ing.Quantity <= 0 {
			return Result{Available: item.Quantity > 0, FreezerQuantity: item.Quantity}
		}
		return Result{
			Available:       float64(item.Quantity) >= ing.Quantity,
			FreezerQuantity: item.Quantity,
		}
	}
	return Result{}
}

// ForRecipe reports whether every ingredient of the recipe is available.
func ForRecipe(r *types.Recipe, items []*types.FoodItem) bool {
	for _, ing := range r.Ingredients {
		if !Check(ing, items).Available {
			return false
		}
	}
	return true
}

// FormatIngredient renders an ingredient for display: "2 kg de Frango",
// "2 Frango", "kg de Frango", or just the name.
func FormatIngredient(ing types.Ingredient) string {
	var b strings.Builder
	if ing.Quantity > 0 {
		b.WriteString(formatQuantity(ing.Quantity))
		b.WriteString(" ")
	}
	if ing.Unit != "" {
		b.WriteString(ing.Unit)
		b.WriteString(" de ")
	}
	b.WriteString(ing.Name)
	return b.String()
}

// Annotate renders an ingredient with its availability against the
// inventory appended.
func Annotate(ing types.Ingredient, items []*types.FoodItem) string {
	res := Check(ing, items)
	formatted := FormatIngredient(ing)
	switch {
	case res.Available && ing.Quantity > 0:
		return formatted + " (have " + strconv.Itoa(res.FreezerQuantity) +
			"/need " + formatQuantity(ing.Quantity) + ")"
	case res.Available:
		return formatted + " (available: " + strconv.Itoa(res.FreezerQuantity) + ")"
	default:
		return formatted + " (not available)"
	}
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
