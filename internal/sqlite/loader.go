package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/frostkeep/icebox/internal/flatfile"
	"github.com/frostkeep/icebox/pkg/types"
)

// Collection file names inside the data directory.
const (
	foodItemsFile  = "food_items.jsonl"
	categoriesFile = "categories.jsonl"
	recipesFile    = "recipes.jsonl"
)

// collectionFiles lists every SQLite-backed collection file. New
// collections are introduced additively: a missing file is created empty
// on attach without touching existing ones.
var collectionFiles = []string{
	foodItemsFile,
	categoriesFile,
	recipesFile,
}

// ensureCollectionFiles creates any missing collection files as empty
// files and reports which ones were created on this attach.
func (b *Backend) ensureCollectionFiles() (map[string]bool, error) {
	created := make(map[string]bool)
	for _, name := range collectionFiles {
		path := filepath.Join(b.dataDir, name)
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		if err := flatfile.WriteJSONL(path, nil); err != nil {
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		created[name] = true
	}
	return created, nil
}

// loadAllCollections reads every collection file into the SQLite cache.
func (b *Backend) loadAllCollections() error {
	if err := b.loadFoodItems(); err != nil {
		return err
	}
	if err := b.loadCategories(); err != nil {
		return err
	}
	return b.loadRecipes()
}

func (b *Backend) loadFoodItems() error {
	records, err := flatfile.ReadJSONL(filepath.Join(b.dataDir, foodItemsFile))
	if err != nil {
		return err
	}
	for _, rec := range records {
		var f types.FoodItem
		if err := json.Unmarshal(rec, &f); err != nil {
			// Skip records that no longer parse as the current entity.
			continue
		}
		if err := insertFoodItem(b, &f); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) loadCategories() error {
	records, err := flatfile.ReadJSONL(filepath.Join(b.dataDir, categoriesFile))
	if err != nil {
		return err
	}
	for _, rec := range records {
		var c types.Category
		if err := json.Unmarshal(rec, &c); err != nil {
			continue
		}
		if _, err := b.db.Exec(
			"INSERT OR REPLACE INTO categories (category_id, name, is_default) VALUES (?, ?, ?)",
			c.CategoryID, c.Name, boolToInt(c.IsDefault)); err != nil {
			return fmt.Errorf("loading category %s: %w", c.CategoryID, err)
		}
	}
	return nil
}

func (b *Backend) loadRecipes() error {
	records, err := flatfile.ReadJSONL(filepath.Join(b.dataDir, recipesFile))
	if err != nil {
		return err
	}
	for _, rec := range records {
		var r types.Recipe
		if err := json.Unmarshal(rec, &r); err != nil {
			continue
		}
		if err := insertRecipe(b, &r); err != nil {
			return err
		}
	}
	return nil
}

// formatTime renders a timestamp for storage.
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// parseTime reads a stored timestamp; a broken value yields the zero time
// rather than an error so one bad record cannot wedge a whole fetch.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
