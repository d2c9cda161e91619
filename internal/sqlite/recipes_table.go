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

var _ types.Table = (*recipesTable)(nil)

// recipesTable implements types.Table for recipes. Ingredients live in an
// ordered child table and are rewritten wholesale on every Set, the same
// delete-and-reinsert pattern the inventory uses for its collection file.
type recipesTable struct {
	backend *Backend
}

// Get retrieves a recipe by ID, ingredients in order.
func (t *recipesTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return nil, err
	}

	row := t.backend.db.QueryRow(
		"SELECT recipe_id, name, instructions, prep_time, cook_time, servings, date_added, notes FROM recipes WHERE recipe_id = ?", id)
	r, err := scanRecipe(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting recipe %s: %w", id, err)
	}
	if err := loadIngredients(t.backend.db, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Set creates or updates a recipe. When id is empty a UUID v7 is
// generated and dateAdded is stamped. The recipe invariant (named
// ingredient, non-empty instructions) is checked before any write.
func (t *recipesTable) Set(id string, data any) (string, error) {
	r, ok := data.(*types.Recipe)
	if !ok {
		return "", types.ErrInvalidData
	}
	if err := r.Validate(); err != nil {
		return "", err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return "", err
	}

	isCreate := id == "" && r.RecipeID == ""
	if isCreate {
		r.RecipeID = newUUID()
		if r.DateAdded.IsZero() {
			r.DateAdded = time.Now()
		}
	} else if id != "" {
		r.RecipeID = id
	}

	if err := insertRecipe(t.backend, r); err != nil {
		return "", err
	}
	if err := persistRecipes(t.backend); err != nil {
		return "", err
	}
	return r.RecipeID, nil
}

// Delete removes a recipe and its ingredients.
func (t *recipesTable) Delete(id string) error {
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
		"SELECT 1 FROM recipes WHERE recipe_id = ?", id).Scan(&exists); err == sql.ErrNoRows {
		return types.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("checking recipe: %w", err)
	}

	// Cascade: ingredients first.
	if _, err := t.backend.db.Exec(
		"DELETE FROM recipe_ingredients WHERE recipe_id = ?", id); err != nil {
		return fmt.Errorf("deleting recipe ingredients: %w", err)
	}
	if _, err := t.backend.db.Exec(
		"DELETE FROM recipes WHERE recipe_id = ?", id); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	return persistRecipes(t.backend)
}

// Fetch returns recipes in collection (insertion) order. No filters are
// supported; search and ordering are query-layer concerns.
func (t *recipesTable) Fetch(filter map[string]any) ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.ensureAttachedLocked(); err != nil {
		return nil, err
	}
	if len(filter) > 0 {
		return nil, types.ErrInvalidFilter
	}

	rows, err := t.backend.db.Query(
		"SELECT recipe_id, name, instructions, prep_time, cook_time, servings, date_added, notes FROM recipes ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("fetching recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*types.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	results := []any{}
	for _, r := range recipes {
		if err := loadIngredients(t.backend.db, r); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func scanRecipe(scan func(...any) error) (*types.Recipe, error) {
	var r types.Recipe
	var dateAdded string
	var notes sql.NullString
	err := scan(&r.RecipeID, &r.Name, &r.Instructions,
		&r.PrepTime, &r.CookTime, &r.Servings, &dateAdded, &notes)
	if err != nil {
		return nil, err
	}
	r.DateAdded = parseTime(dateAdded)
	r.Notes = notes.String
	return &r, nil
}

func loadIngredients(db *sql.DB, r *types.Recipe) error {
	rows, err := db.Query(
		"SELECT name, quantity, unit FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position",
		r.RecipeID)
	if err != nil {
		return fmt.Errorf("loading ingredients: %w", err)
	}
	defer rows.Close()

	r.Ingredients = nil
	for rows.Next() {
		var ing types.Ingredient
		var quantity sql.NullFloat64
		var unit sql.NullString
		if err := rows.Scan(&ing.Name, &quantity, &unit); err != nil {
			return fmt.Errorf("scanning ingredient: %w", err)
		}
		ing.Quantity = quantity.Float64
		ing.Unit = unit.String
		r.Ingredients = append(r.Ingredients, ing)
	}
	return rows.Err()
}

// insertRecipe upserts a recipe row and rewrites its ingredient rows.
// Shared with the attach loader.
func insertRecipe(b *Backend, r *types.Recipe) error {
	var notes sql.NullString
	if r.Notes != "" {
		notes = sql.NullString{String: r.Notes, Valid: true}
	}

	_, err := b.db.Exec(`
		INSERT INTO recipes (recipe_id, name, instructions, prep_time, cook_time, servings, date_added, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(recipe_id) DO UPDATE SET
			name = excluded.name,
			instructions = excluded.instructions,
			prep_time = excluded.prep_time,
			cook_time = excluded.cook_time,
			servings = excluded.servings,
			date_added = excluded.date_added,
			notes = excluded.notes`,
		r.RecipeID, r.Name, r.Instructions, r.PrepTime, r.CookTime, r.Servings,
		formatTime(r.DateAdded), notes)
	if err != nil {
		return fmt.Errorf("upserting recipe: %w", err)
	}

	if _, err := b.db.Exec(
		"DELETE FROM recipe_ingredients WHERE recipe_id = ?", r.RecipeID); err != nil {
		return fmt.Errorf("clearing ingredients: %w", err)
	}
	for i, ing := range r.Ingredients {
		var quantity sql.NullFloat64
		if ing.Quantity > 0 {
			quantity = sql.NullFloat64{Float64: ing.Quantity, Valid: true}
		}
		var unit sql.NullString
		if ing.Unit != "" {
			unit = sql.NullString{String: ing.Unit, Valid: true}
		}
		if _, err := b.db.Exec(
			"INSERT INTO recipe_ingredients (recipe_id, position, name, quantity, unit) VALUES (?, ?, ?, ?, ?)",
			r.RecipeID, i, ing.Name, quantity, unit); err != nil {
			return fmt.Errorf("inserting ingredient: %w", err)
		}
	}
	return nil
}

// persistRecipes rewrites the recipes collection file from the SQLite
// cache, ingredients nested per record.
func persistRecipes(b *Backend) error {
	rows, err := b.db.Query(
		"SELECT recipe_id, name, instructions, prep_time, cook_time, servings, date_added, notes FROM recipes ORDER BY rowid")
	if err != nil {
		return fmt.Errorf("reading recipes for persistence: %w", err)
	}
	defer rows.Close()

	var recipes []*types.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows.Scan)
		if err != nil {
			return fmt.Errorf("scanning recipe for persistence: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var records []json.RawMessage
	for _, r := range recipes {
		if err := loadIngredients(b.db, r); err != nil {
			return err
		}
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling recipe: %w", err)
		}
		records = append(records, data)
	}
	return flatfile.WriteJSONL(filepath.Join(b.dataDir, recipesFile), records)
}
