package sqlite

// Schema DDL for the SQLite cache. The database file is rebuilt from the
// JSONL collection files on every attach, so the DDL only ever describes
// the current schema.
const (
	createFoodItems = `CREATE TABLE food_items (
    food_item_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    quantity INTEGER NOT NULL,
    date_added TEXT NOT NULL,
    expiration_date TEXT,
    drawer INTEGER,
    section TEXT,
    notes TEXT
);`

	createCategories = `CREATE TABLE categories (
    category_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    is_default INTEGER NOT NULL DEFAULT 0
);`

	createRecipes = `CREATE TABLE recipes (
    recipe_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    instructions TEXT NOT NULL,
    prep_time INTEGER NOT NULL DEFAULT 0,
    cook_time INTEGER NOT NULL DEFAULT 0,
    servings INTEGER NOT NULL DEFAULT 0,
    date_added TEXT NOT NULL,
    notes TEXT
);`

	createRecipeIngredients = `CREATE TABLE recipe_ingredients (
    recipe_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    quantity REAL,
    unit TEXT,
    PRIMARY KEY (recipe_id, position),
    FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id)
);`
)

// schemaDDL lists the statements executed on attach, in order.
var schemaDDL = []string{
	createFoodItems,
	createCategories,
	createRecipes,
	createRecipeIngredients,
}
