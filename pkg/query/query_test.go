package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostkeep/icebox/pkg/types"
)

func testItems() []*types.FoodItem {
	return []*types.FoodItem{
		{Name: "Frango", Category: "CARNES", Quantity: 2},
		{Name: "Sopa de frango", Category: "CALDOS", Quantity: 1},
		{Name: "Batata", Category: "GAVETA", Quantity: 5},
		{Name: "Bife", Category: "CARNES", Quantity: 3},
		{Name: "Arroz pronto", Category: "PRONTOS", Quantity: 1},
	}
}

func names(items []*types.FoodItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestFilterItems(t *testing.T) {
	items := testItems()

	t.Run("no filters returns everything in collection order", func(t *testing.T) {
		got := FilterItems(items, Filters{})
		assert.Equal(t, []string{"Frango", "Sopa de frango", "Batata", "Bife", "Arroz pronto"}, names(got))
	})

	t.Run("search term is a case-insensitive substring", func(t *testing.T) {
		got := FilterItems(items, Filters{SearchTerm: "FRANGO"})
		assert.Equal(t, []string{"Frango", "Sopa de frango"}, names(got))
	})

	t.Run("category narrows exactly", func(t *testing.T) {
		got := FilterItems(items, Filters{Category: "CARNES"})
		assert.Equal(t, []string{"Frango", "Bife"}, names(got))
	})

	t.Run("term and category combine with AND", func(t *testing.T) {
		got := FilterItems(items, Filters{SearchTerm: "frango", Category: "CARNES"})
		assert.Equal(t, []string{"Frango"}, names(got))
	})

	t.Run("no matches is an empty non-nil slice", func(t *testing.T) {
		got := FilterItems(items, Filters{SearchTerm: "peixe"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGroupItems(t *testing.T) {
	items := testItems()

	t.Run("partitions sorted by category then name", func(t *testing.T) {
		groups := GroupItems(items, Filters{})
		require.Len(t, groups, 4)

		assert.Equal(t, "CALDOS", groups[0].Category)
		assert.Equal(t, "CARNES", groups[1].Category)
		assert.Equal(t, "GAVETA", groups[2].Category)
		assert.Equal(t, "PRONTOS", groups[3].Category)

		// Within CARNES the names sort alphabetically.
		assert.Equal(t, []string{"Bife", "Frango"}, names(groups[1].Items))
	})

	t.Run("search term filters before grouping", func(t *testing.T) {
		groups := GroupItems(items, Filters{SearchTerm: "frango"})
		require.Len(t, groups, 2)
		assert.Equal(t, "CALDOS", groups[0].Category)
		assert.Equal(t, []string{"Sopa de frango"}, names(groups[0].Items))
		assert.Equal(t, "CARNES", groups[1].Category)
		assert.Equal(t, []string{"Frango"}, names(groups[1].Items))
	})

	t.Run("accented names sort with the collator", func(t *testing.T) {
		groups := GroupItems([]*types.FoodItem{
			{Name: "Pêssego", Category: "GAVETA"},
			{Name: "Pera", Category: "GAVETA"},
			{Name: "Pizza", Category: "GAVETA"},
		}, Filters{})
		require.Len(t, groups, 1)
		assert.Equal(t, []string{"Pera", "Pêssego", "Pizza"}, names(groups[0].Items))
	})
}

func TestFilterRecipes(t *testing.T) {
	recipes := []*types.Recipe{
		{Name: "Sopa de legumes"},
		{Name: "Arroz de forno"},
		{Name: "Sopa de frango"},
	}

	recipeNames := func(rs []*types.Recipe) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.Name
		}
		return out
	}

	t.Run("empty term returns all, sorted", func(t *testing.T) {
		got := FilterRecipes(recipes, "")
		assert.Equal(t, []string{"Arroz de forno", "Sopa de frango", "Sopa de legumes"}, recipeNames(got))
	})

	t.Run("term narrows and stays sorted", func(t *testing.T) {
		got := FilterRecipes(recipes, "sopa")
		assert.Equal(t, []string{"Sopa de frango", "Sopa de legumes"}, recipeNames(got))
	})

	t.Run("no matches", func(t *testing.T) {
		got := FilterRecipes(recipes, "feijoada")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestRecentItems(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := []*types.FoodItem{
		{Name: "Primeiro", DateAdded: base},
		{Name: "Terceiro", DateAdded: base.Add(48 * time.Hour)},
		{Name: "Segundo", DateAdded: base.Add(24 * time.Hour)},
	}

	t.Run("newest first", func(t *testing.T) {
		got := RecentItems(items, 2)
		assert.Equal(t, []string{"Terceiro", "Segundo"}, names(got))
	})

	t.Run("n larger than the collection", func(t *testing.T) {
		got := RecentItems(items, 10)
		assert.Len(t, got, 3)
	})

	t.Run("input order is untouched", func(t *testing.T) {
		RecentItems(items, 1)
		assert.Equal(t, "Primeiro", items[0].Name)
	})
}
