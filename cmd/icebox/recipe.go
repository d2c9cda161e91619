// Recipe commands manage recipes and match them against the inventory.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/frostkeep/icebox/pkg/availability"
	"github.com/frostkeep/icebox/pkg/query"
	"github.com/frostkeep/icebox/pkg/types"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes",
}

var (
	recipeName         string
	recipeIngredients  []string
	recipeInstructions string
	recipePrepTime     int
	recipeCookTime     int
	recipeServings     int
	recipeNotes        string

	recipeListSearch string
)

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe",
	Long: `Add a recipe. Ingredients are given as name[:quantity[:unit]].

Example:
  icebox recipe add --name "Sopa de legumes" \
    --ingredient "Batata:3" --ingredient "Caldo de legumes:1:l" \
    --instructions "Cozinhar tudo por 40 minutos e bater." \
    --prep 15 --cook 40 --servings 4`,
	Args: cobra.NoArgs,
	RunE: runRecipeAdd,
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes, marking the ones the freezer can cover",
	Args:  cobra.NoArgs,
	RunE:  runRecipeList,
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe with ingredient availability",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipeShow,
}

var recipeRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipeRm,
}

func init() {
	recipeAddCmd.Flags().StringVar(&recipeName, "name", "", "recipe name")
	recipeAddCmd.Flags().StringArrayVar(&recipeIngredients, "ingredient", nil, "ingredient as name[:quantity[:unit]] (repeatable)")
	recipeAddCmd.Flags().StringVar(&recipeInstructions, "instructions", "", "preparation instructions")
	recipeAddCmd.Flags().IntVar(&recipePrepTime, "prep", 0, "preparation time in minutes")
	recipeAddCmd.Flags().IntVar(&recipeCookTime, "cook", 0, "cooking time in minutes")
	recipeAddCmd.Flags().IntVar(&recipeServings, "servings", 0, "number of servings")
	recipeAddCmd.Flags().StringVar(&recipeNotes, "notes", "", "free-form notes")
	recipeAddCmd.MarkFlagRequired("name")
	recipeAddCmd.MarkFlagRequired("ingredient")
	recipeAddCmd.MarkFlagRequired("instructions")

	recipeListCmd.Flags().StringVar(&recipeListSearch, "search", "", "filter by name substring")

	recipeCmd.AddCommand(recipeAddCmd)
	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeShowCmd)
	recipeCmd.AddCommand(recipeRmCmd)
}

func runRecipeAdd(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	recipes, err := recipeStore(backend)
	if err != nil {
		return err
	}

	ingredients, err := parseIngredients(recipeIngredients)
	if err != nil {
		return err
	}

	recipe := &types.Recipe{
		Name:         recipeName,
		Ingredients:  ingredients,
		Instructions: recipeInstructions,
		PrepTime:     recipePrepTime,
		CookTime:     recipeCookTime,
		Servings:     recipeServings,
		Notes:        recipeNotes,
	}
	id, err := recipes.Add(recipe)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(recipe)
	}
	fmt.Println("Added recipe", id)
	return nil
}

func runRecipeList(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	recipes, err := recipeStore(backend)
	if err != nil {
		return err
	}
	items, err := foodItemStore(backend)
	if err != nil {
		return err
	}

	filtered := query.FilterRecipes(recipes.Recipes(), recipeListSearch)
	inventory := items.Items()

	if flagJSON {
		type recipeWithAvailability struct {
			*types.Recipe
			AllAvailable bool `json:"allAvailable"`
		}
		out := make([]recipeWithAvailability, len(filtered))
		for i, r := range filtered {
			out[i] = recipeWithAvailability{r, availability.ForRecipe(r, inventory)}
		}
		return printJSON(out)
	}

	if len(filtered) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSERVINGS\tREADY")
	for _, r := range filtered {
		ready := ""
		if availability.ForRecipe(r, inventory) {
			ready = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%dmin\t%d\t%s\n",
			r.RecipeID, r.Name, r.TotalTime(), r.Servings, ready)
	}
	w.Flush()
	fmt.Print(sb.String())
	return nil
}

func runRecipeShow(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	recipes, err := recipeStore(backend)
	if err != nil {
		return err
	}
	items, err := foodItemStore(backend)
	if err != nil {
		return err
	}

	recipe, err := recipes.Get(args[0])
	if err != nil {
		return fmt.Errorf("get recipe: %w", err)
	}

	if flagJSON {
		return printJSON(recipe)
	}

	inventory := items.Items()
	fmt.Println(recipe.Name)
	if recipe.Servings > 0 {
		fmt.Printf("Serves %d, %d minutes total\n", recipe.Servings, recipe.TotalTime())
	}
	fmt.Println("\nIngredients:")
	for _, ing := range recipe.Ingredients {
		fmt.Println("  -", availability.Annotate(ing, inventory))
	}
	fmt.Println("\nInstructions:")
	fmt.Println(recipe.Instructions)
	if recipe.Notes != "" {
		fmt.Println("\nNotes:", recipe.Notes)
	}
	return nil
}

func runRecipeRm(cmd *cobra.Command, args []string) error {
	backend, _, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	recipes, err := recipeStore(backend)
	if err != nil {
		return err
	}

	if err := recipes.Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("Removed recipe", args[0])
	return nil
}

// parseIngredients parses repeated --ingredient flags of the form
// name[:quantity[:unit]].
func parseIngredients(specs []string) ([]types.Ingredient, error) {
	ingredients := make([]types.Ingredient, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		ing := types.Ingredient{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 && parts[1] != "" {
			quantity, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, fmt.Errorf("parse ingredient quantity %q: %w", spec, err)
			}
			ing.Quantity = quantity
		}
		if len(parts) > 2 {
			ing.Unit = strings.TrimSpace(parts[2])
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}
