package types

// Dashboard widget identifiers. The widget order preference is an ordered
// sequence over exactly these three values.
const (
	WidgetShoppingList = "shopping-list"
	WidgetSearch       = "search"
	WidgetRecentItems  = "recent-items"
)

// DefaultWidgetOrder returns the default dashboard arrangement.
func DefaultWidgetOrder() []string {
	return []string{WidgetShoppingList, WidgetSearch, WidgetRecentItems}
}

// ValidateWidgetOrder checks that order is a permutation of the known
// widget identifiers: no unknowns, no duplicates, none missing.
func ValidateWidgetOrder(order []string) error {
	if len(order) != len(DefaultWidgetOrder()) {
		return ErrInvalidWidget
	}
	seen := make(map[string]bool, len(order))
	for _, w := range order {
		switch w {
		case WidgetShoppingList, WidgetSearch, WidgetRecentItems:
		default:
			return ErrInvalidWidget
		}
		if seen[w] {
			return ErrInvalidWidget
		}
		seen[w] = true
	}
	return nil
}
