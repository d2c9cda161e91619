// Shared helpers for icebox CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/frostkeep/icebox/internal/sqlite"
	"github.com/frostkeep/icebox/pkg/store"
	"github.com/frostkeep/icebox/pkg/types"
)

// Flat files living alongside the SQLite-backed collections.
const (
	shoppingListFileName = "shopping_list.jsonl"
	widgetOrderFileName  = "widget_order.json"
)

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, string, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, "", fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: defaultBackend,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, "", fmt.Errorf("attach backend: %w", err)
	}

	return backend, dataDir, nil
}

// foodItemStore builds a food item store over the attached backend and
// loads its snapshot.
func foodItemStore(backend *sqlite.Backend) (*store.FoodItems, error) {
	table, err := backend.GetTable(types.TableFoodItems)
	if err != nil {
		return nil, fmt.Errorf("get food items table: %w", err)
	}
	s := store.NewFoodItems(table)
	if err := s.FetchAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func categoryStore(backend *sqlite.Backend) (*store.Categories, error) {
	table, err := backend.GetTable(types.TableCategories)
	if err != nil {
		return nil, fmt.Errorf("get categories table: %w", err)
	}
	s := store.NewCategories(table)
	if err := s.FetchAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func recipeStore(backend *sqlite.Backend) (*store.Recipes, error) {
	table, err := backend.GetTable(types.TableRecipes)
	if err != nil {
		return nil, fmt.Errorf("get recipes table: %w", err)
	}
	s := store.NewRecipes(table)
	if err := s.FetchAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func shoppingListStore(dataDir string) (*store.ShoppingList, error) {
	s := store.NewShoppingList(filepath.Join(dataDir, shoppingListFileName))
	if err := s.FetchAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func preferencesStore(dataDir string) *store.Preferences {
	return store.NewPreferences(filepath.Join(dataDir, widgetOrderFileName))
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// formatDate renders a timestamp for table output, blank when unset.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
