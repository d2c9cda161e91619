// Package query implements filtering, grouping, and sorting of the
// inventory and recipe collections for display.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/frostkeep/icebox/pkg/types"
)

// Filters narrows the inventory: a case-insensitive substring match on
// the name and an exact category ID. An empty category means "all".
type Filters struct {
	SearchTerm string
	Category   string
}

func (f Filters) matches(item *types.FoodItem) bool {
	if f.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.SearchTerm)) {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	return true
}

// FilterItems returns the matching items flat, in collection order.
func FilterItems(items []*types.FoodItem, f Filters) []*types.FoodItem {
	matched := []*types.FoodItem{}
	for _, item := range items {
		if f.matches(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Group is one category partition of the inventory.
type Group struct {
	Category string
	Items    []*types.FoodItem
}

// GroupItems partitions the matching items by category, sorts each
// partition by name with a Portuguese collator, and returns the
// partitions in ascending category ID order.
func GroupItems(items []*types.FoodItem, f Filters) []Group {
	byCategory := map[string][]*types.FoodItem{}
	for _, item := range items {
		if f.matches(item) {
			byCategory[item.Category] = append(byCategory[item.Category], item)
		}
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	c := newCollator()
	groups := make([]Group, 0, len(categories))
	for _, category := range categories {
		partition := byCategory[category]
		sort.SliceStable(partition, func(i, j int) bool {
			return c.CompareString(partition[i].Name, partition[j].Name) < 0
		})
		groups = append(groups, Group{Category: category, Items: partition})
	}
	return groups
}

// FilterRecipes returns recipes whose names contain the term,
// case-insensitively, always sorted by name with the collator. An empty
// term returns all recipes, sorted.
func FilterRecipes(recipes []*types.Recipe, term string) []*types.Recipe {
	matched := []*types.Recipe{}
	lower := strings.ToLower(term)
	for _, r := range recipes {
		if term == "" || strings.Contains(strings.ToLower(r.Name), lower) {
			matched = append(matched, r)
		}
	}
	c := newCollator()
	sort.SliceStable(matched, func(i, j int) bool {
		return c.CompareString(matched[i].Name, matched[j].Name) < 0
	})
	return matched
}

// RecentItems returns up to n items, newest first by dateAdded.
func RecentItems(items []*types.FoodItem, n int) []*types.FoodItem {
	recent := make([]*types.FoodItem, len(items))
	copy(recent, items)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DateAdded.After(recent[j].DateAdded)
	})
	if n >= 0 && n < len(recent) {
		recent = recent[:n]
	}
	return recent
}

func newCollator() *collate.Collator {
	return collate.New(language.Portuguese)
}
