package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/frostkeep/icebox/internal/flatfile"
	"github.com/frostkeep/icebox/pkg/types"
)

var _ types.Table = (*categoriesTable)(nil)

// categoriesTable implements types.Table for categories. Category IDs are
// deterministic name slugs assigned on create, and default categories are
// guarded against update and delete at this layer so the invariant holds
// no matter which caller reaches the table.
type categoriesTable struct {
	backend *Backend
}

// Get retrieves a category by ID.
func (t *categoriesTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return nil, err
	}

	c, err := getCategory(t.backend.db, id)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %s: %w", id, err)
	}
	return c, nil
}

// Set creates or updates a category. On create the ID is derived from the
// name (uppercased, whitespace to underscores); a colliding ID is
// rejected with ErrDuplicateName before anything is written. Updating a
// default category returns ErrDefaultCategory.
func (t *categoriesTable) Set(id string, data any) (string, error) {
	c, ok := data.(*types.Category)
	if !ok {
		return "", types.ErrInvalidData
	}
	if err := c.Validate(); err != nil {
		return "", err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return "", err
	}

	isCreate := id == "" && c.CategoryID == ""
	if isCreate {
		c.CategoryID = types.CategoryIDFor(c.Name)
		var existing int
		err := t.backend.db.QueryRow(
			"SELECT 1 FROM categories WHERE category_id = ?", c.CategoryID).Scan(&existing)
		if err == nil {
			return "", types.ErrDuplicateName
		}
		if err != sql.ErrNoRows {
			return "", fmt.Errorf("checking category ID: %w", err)
		}
	} else {
		if id != "" {
			c.CategoryID = id
		}
		stored, err := getCategory(t.backend.db, c.CategoryID)
		if err == sql.ErrNoRows {
			return "", types.ErrNotFound
		}
		if err != nil {
			return "", fmt.Errorf("checking category: %w", err)
		}
		if stored.IsDefault {
			return "", types.ErrDefaultCategory
		}
	}

	_, err := t.backend.db.Exec(`
		INSERT INTO categories (category_id, name, is_default)
		VALUES (?, ?, ?)
		ON CONFLICT(category_id) DO UPDATE SET
			name = excluded.name,
			is_default = excluded.is_default`,
		c.CategoryID, c.Name, boolToInt(c.IsDefault))
	if err != nil {
		return "", fmt.Errorf("upserting category: %w", err)
	}

	if err := persistCategories(t.backend); err != nil {
		return "", err
	}
	return c.CategoryID, nil
}

// Delete removes a category by ID. Default categories cannot be deleted.
func (t *categoriesTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return err
	}

	stored, err := getCategory(t.backend.db, id)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking category: %w", err)
	}
	if stored.IsDefault {
		return types.ErrDefaultCategory
	}

	if _, err := t.backend.db.Exec(
		"DELETE FROM categories WHERE category_id = ?", id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return persistCategories(t.backend)
}

// Fetch returns all categories ordered by ID. No filters are supported.
func (t *categoriesTable) Fetch(filter map[string]any) ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return nil, err
	}
	if len(filter) > 0 {
		return nil, types.ErrInvalidFilter
	}

	rows, err := t.backend.db.Query(
		"SELECT category_id, name, is_default FROM categories ORDER BY category_id")
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		var c types.Category
		var isDefault int
		if err := rows.Scan(&c.CategoryID, &c.Name, &isDefault); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.IsDefault = isDefault != 0
		results = append(results, &c)
	}
	return results, rows.Err()
}

func getCategory(db *sql.DB, id string) (*types.Category, error) {
	var c types.Category
	var isDefault int
	err := db.QueryRow(
		"SELECT category_id, name, is_default FROM categories WHERE category_id = ?", id).
		Scan(&c.CategoryID, &c.Name, &isDefault)
	if err != nil {
		return nil, err
	}
	c.IsDefault = isDefault != 0
	return &c, nil
}

// persistCategories rewrites the categories collection file from the
// SQLite cache.
func persistCategories(b *Backend) error {
	rows, err := b.db.Query("SELECT category_id, name, is_default FROM categories ORDER BY category_id")
	if err != nil {
		return fmt.Errorf("reading categories for persistence: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var c types.Category
		var isDefault int
		if err := rows.Scan(&c.CategoryID, &c.Name, &isDefault); err != nil {
			return fmt.Errorf("scanning category for persistence: %w", err)
		}
		c.IsDefault = isDefault != 0
		data, err := json.Marshal(&c)
		if err != nil {
			return fmt.Errorf("marshaling category: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return flatfile.WriteJSONL(filepath.Join(b.dataDir, categoriesFile), records)
}
