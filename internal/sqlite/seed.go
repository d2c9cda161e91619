// This file implements default category seeding on backend attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/frostkeep/icebox/internal/flatfile"
	"github.com/frostkeep/icebox/pkg/types"
)

// seedDefaultCategories creates the default category records when the
// category collection is initialized for the first time. The defaults use
// their canonical name as ID and carry isDefault=true, which makes them
// immutable and undeletable. Idempotent: seeding only runs while the
// categories table is empty.
func seedDefaultCategories(db *sql.DB, dataDir string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range types.DefaultCategoryIDs {
		if _, err := tx.Exec(
			"INSERT INTO categories (category_id, name, is_default) VALUES (?, ?, 1)",
			id, id); err != nil {
			return fmt.Errorf("seeding category %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	return persistSeededCategories(db, dataDir)
}

// persistSeededCategories writes the seeded categories to the collection
// file after first-run seeding.
func persistSeededCategories(db *sql.DB, dataDir string) error {
	rows, err := db.Query("SELECT category_id, name, is_default FROM categories ORDER BY category_id")
	if err != nil {
		return fmt.Errorf("querying seeded categories: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var c types.Category
		var isDefault int
		if err := rows.Scan(&c.CategoryID, &c.Name, &isDefault); err != nil {
			return fmt.Errorf("scanning seeded category: %w", err)
		}
		c.IsDefault = isDefault != 0
		data, err := json.Marshal(&c)
		if err != nil {
			return fmt.Errorf("marshaling seeded category: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return flatfile.WriteJSONL(filepath.Join(dataDir, categoriesFile), records)
}
