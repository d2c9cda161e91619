package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostkeep/icebox/pkg/types"
)

func shoppingListPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "shopping_list.jsonl")
}

func TestShoppingList_MissingFileIsEmptyList(t *testing.T) {
	s := NewShoppingList(shoppingListPath(t))

	require.NoError(t, s.FetchAll())
	assert.Empty(t, s.Items())
	assert.Empty(t, s.Message())
}

func TestShoppingList_AddPersists(t *testing.T) {
	path := shoppingListPath(t)
	s := NewShoppingList(path)

	id, err := s.Add(&types.ShoppingListItem{Name: "Frango", Quantity: 2, Unit: "kg"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.False(t, s.Items()[0].DateAdded.IsZero())

	// A fresh store over the same file sees the item.
	s2 := NewShoppingList(path)
	require.NoError(t, s2.FetchAll())
	items := s2.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Frango", items[0].Name)
	assert.False(t, items[0].Checked)
}

func TestShoppingList_UpdateAndDelete(t *testing.T) {
	s := NewShoppingList(shoppingListPath(t))

	id, err := s.Add(&types.ShoppingListItem{Name: "Arroz", Quantity: 1})
	require.NoError(t, err)

	item := s.Items()[0]
	item.Quantity = 2
	require.NoError(t, s.Update(item))
	assert.Equal(t, float64(2), s.Items()[0].Quantity)

	require.NoError(t, s.Delete(id))
	assert.Empty(t, s.Items())

	assert.ErrorIs(t, s.Delete(id), types.ErrNotFound)
	assert.ErrorIs(t, s.Update(item), types.ErrNotFound)
}

func TestShoppingList_CheckedLifecycle(t *testing.T) {
	s := NewShoppingList(shoppingListPath(t))

	idA, err := s.Add(&types.ShoppingListItem{Name: "Frango", Quantity: 2})
	require.NoError(t, err)
	_, err = s.Add(&types.ShoppingListItem{Name: "Batata", Quantity: 5})
	require.NoError(t, err)
	idC, err := s.Add(&types.ShoppingListItem{Name: "Cenoura", Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, s.ToggleCheck(idA))
	require.NoError(t, s.ToggleCheck(idC))

	checked := s.Checked()
	require.Len(t, checked, 2)
	assert.Equal(t, "Frango", checked[0].Name)
	assert.Equal(t, "Cenoura", checked[1].Name)

	// Toggle back.
	require.NoError(t, s.ToggleCheck(idC))
	assert.Len(t, s.Checked(), 1)
	require.NoError(t, s.ToggleCheck(idC))

	require.NoError(t, s.ClearChecked())
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Batata", items[0].Name)
}

func TestShoppingList_SkipsMalformedLines(t *testing.T) {
	path := shoppingListPath(t)
	content := `{"id":"a","name":"Frango","quantity":2,"checked":false}
not json at all
{"id":"b","name":"Batata","quantity":1,"checked":true}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := NewShoppingList(path)
	require.NoError(t, s.FetchAll())
	assert.Len(t, s.Items(), 2)
}
