package types

// Standard table names recognized by Icebox.GetTable.
const (
	TableFoodItems  = "food_items"
	TableCategories = "categories"
	TableRecipes    = "recipes"
)
