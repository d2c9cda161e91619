package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/frostkeep/icebox/internal/flatfile"
	"github.com/frostkeep/icebox/pkg/types"
)

var _ types.Table = (*foodItemsTable)(nil)

// foodItemsTable implements types.Table for the freezer inventory.
type foodItemsTable struct {
	backend *Backend
}

const foodItemColumns = "food_item_id, name, category, quantity, date_added, expiration_date, drawer, section, notes"

// Get retrieves a food item by ID.
func (t *foodItemsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return nil, err
	}

	row := t.backend.db.QueryRow(
		"SELECT "+foodItemColumns+" FROM food_items WHERE food_item_id = ?", id)
	f, err := scanFoodItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting food item %s: %w", id, err)
	}
	return f, nil
}

// Set creates or updates a food item. When id is empty a new UUID v7 is
// generated and dateAdded is stamped.
func (t *foodItemsTable) Set(id string, data any) (string, error) {
	f, ok := data.(*types.FoodItem)
	if !ok {
		return "", types.ErrInvalidData
	}
	if err := f.Validate(); err != nil {
		return "", err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return "", err
	}

	isCreate := id == "" && f.FoodItemID == ""
	if isCreate {
		f.FoodItemID = newUUID()
		if f.DateAdded.IsZero() {
			f.DateAdded = time.Now()
		}
	} else if id != "" {
		f.FoodItemID = id
	}

	if err := insertFoodItem(t.backend, f); err != nil {
		return "", err
	}
	if err := persistFoodItems(t.backend); err != nil {
		return "", err
	}
	return f.FoodItemID, nil
}

// Delete removes a food item by ID.
func (t *foodItemsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return err
	}

	var exists int
	if err := t.backend.db.QueryRow(
		"SELECT 1 FROM food_items WHERE food_item_id = ?", id).Scan(&exists); err == sql.ErrNoRows {
		return types.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("checking food item: %w", err)
	}
	if _, err := t.backend.db.Exec(
		"DELETE FROM food_items WHERE food_item_id = ?", id); err != nil {
		return fmt.Errorf("deleting food item: %w", err)
	}
	return persistFoodItems(t.backend)
}

// Fetch returns food items in collection (insertion) order. The filter
// supports "category" (exact category ID).
func (t *foodItemsTable) Fetch(filter map[string]any) ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return nil, err
	}

	for key := range filter {
		if key != "category" {
			return nil, types.ErrInvalidFilter
		}
	}

	query := "SELECT " + foodItemColumns + " FROM food_items"
	var args []any
	if category, ok := filter["category"]; ok {
		c, ok := category.(string)
		if !ok {
			return nil, types.ErrInvalidFilter
		}
		query += " WHERE category = ?"
		args = append(args, c)
	}
	query += " ORDER BY rowid"

	rows, err := t.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching food items: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		f, err := scanFoodItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning food item: %w", err)
		}
		results = append(results, f)
	}
	return results, rows.Err()
}

// scanFoodItem hydrates one food item row via the given scan function.
func scanFoodItem(scan func(...any) error) (*types.FoodItem, error) {
	var f types.FoodItem
	var dateAdded string
	var expiration, section, notes sql.NullString
	var drawer sql.NullInt64
	err := scan(&f.FoodItemID, &f.Name, &f.Category, &f.Quantity,
		&dateAdded, &expiration, &drawer, &section, &notes)
	if err != nil {
		return nil, err
	}
	f.DateAdded = parseTime(dateAdded)
	if expiration.Valid {
		exp := parseTime(expiration.String)
		f.ExpirationDate = &exp
	}
	if drawer.Valid || section.Valid {
		f.Location = &types.FreezerLocation{
			Drawer:  int(drawer.Int64),
			Section: section.String,
		}
	}
	f.Notes = notes.String
	return &f, nil
}

// insertFoodItem upserts a food item row. Shared with the attach loader.
func insertFoodItem(b *Backend, f *types.FoodItem) error {
	var expiration sql.NullString
	if f.ExpirationDate != nil {
		expiration = sql.NullString{String: formatTime(*f.ExpirationDate), Valid: true}
	}
	var drawer sql.NullInt64
	var section sql.NullString
	if f.Location != nil {
		drawer = sql.NullInt64{Int64: int64(f.Location.Drawer), Valid: true}
		section = sql.NullString{String: f.Location.Section, Valid: true}
	}
	var notes sql.NullString
	if f.Notes != "" {
		notes = sql.NullString{String: f.Notes, Valid: true}
	}

	_, err := b.db.Exec(`
		INSERT INTO food_items (`+foodItemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(food_item_id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			quantity = excluded.quantity,
			date_added = excluded.date_added,
			expiration_date = excluded.expiration_date,
			drawer = excluded.drawer,
			section = excluded.section,
			notes = excluded.notes`,
		f.FoodItemID, f.Name, f.Category, f.Quantity,
		formatTime(f.DateAdded), expiration, drawer, section, notes)
	if err != nil {
		return fmt.Errorf("upserting food item: %w", err)
	}
	return nil
}

// persistFoodItems rewrites the food items collection file from the
// SQLite cache.
func persistFoodItems(b *Backend) error {
	rows, err := b.db.Query("SELECT " + foodItemColumns + " FROM food_items ORDER BY rowid")
	if err != nil {
		return fmt.Errorf("reading food items for persistence: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		f, err := scanFoodItem(rows.Scan)
		if err != nil {
			return fmt.Errorf("scanning food item for persistence: %w", err)
		}
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("marshaling food item: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return flatfile.WriteJSONL(filepath.Join(b.dataDir, foodItemsFile), records)
}
