package types

import (
	"errors"
	"testing"
)

func TestRecipeValidate(t *testing.T) {
	base := func() *Recipe {
		return &Recipe{
			Name:         "Sopa de Legumes",
			Ingredients:  []Ingredient{{Name: "Batata", Quantity: 3}},
			Instructions: "Cozinhar tudo.",
		}
	}

	t.Run("valid recipe", func(t *testing.T) {
		if err := base().Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		r := base()
		r.Name = "  "
		if !errors.Is(r.Validate(), ErrInvalidName) {
			t.Fatal("expected ErrInvalidName")
		}
	})

	t.Run("no named ingredient", func(t *testing.T) {
		r := base()
		r.Ingredients = []Ingredient{{Name: "  "}}
		if !errors.Is(r.Validate(), ErrInvalidIngredients) {
			t.Fatal("expected ErrInvalidIngredients")
		}
	})

	t.Run("empty instructions", func(t *testing.T) {
		r := base()
		r.Instructions = ""
		if !errors.Is(r.Validate(), ErrInvalidInstructions) {
			t.Fatal("expected ErrInvalidInstructions")
		}
	})

	t.Run("negative ingredient quantity", func(t *testing.T) {
		r := base()
		r.Ingredients[0].Quantity = -1
		if !errors.Is(r.Validate(), ErrInvalidQuantity) {
			t.Fatal("expected ErrInvalidQuantity")
		}
	})

	t.Run("negative prep time", func(t *testing.T) {
		r := base()
		r.PrepTime = -5
		if !errors.Is(r.Validate(), ErrInvalidTime) {
			t.Fatal("expected ErrInvalidTime")
		}
	})
}

func TestFoodItemValidate(t *testing.T) {
	f := &FoodItem{Name: "Frango", Quantity: 2}
	if err := f.Validate(); err != nil {
		t.Fatal(err)
	}
	f.Quantity = -1
	if !errors.Is(f.Validate(), ErrInvalidQuantity) {
		t.Fatal("expected ErrInvalidQuantity")
	}
	f = &FoodItem{Name: "", Quantity: 1}
	if !errors.Is(f.Validate(), ErrInvalidName) {
		t.Fatal("expected ErrInvalidName")
	}
}

func TestFoodItemNameEquals(t *testing.T) {
	f := &FoodItem{Name: "Frango"}
	if !f.NameEquals("fRANGO") {
		t.Fatal("match should ignore case")
	}
	if f.NameEquals("Fran") {
		t.Fatal("partial names must not match")
	}
}

func TestValidateWidgetOrder(t *testing.T) {
	t.Run("default order valid", func(t *testing.T) {
		if err := ValidateWidgetOrder(DefaultWidgetOrder()); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("permutation valid", func(t *testing.T) {
		order := []string{WidgetRecentItems, WidgetShoppingList, WidgetSearch}
		if err := ValidateWidgetOrder(order); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("unknown widget rejected", func(t *testing.T) {
		order := []string{WidgetSearch, WidgetShoppingList, "weather"}
		if !errors.Is(ValidateWidgetOrder(order), ErrInvalidWidget) {
			t.Fatal("expected ErrInvalidWidget")
		}
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		order := []string{WidgetSearch, WidgetSearch, WidgetRecentItems}
		if !errors.Is(ValidateWidgetOrder(order), ErrInvalidWidget) {
			t.Fatal("expected ErrInvalidWidget")
		}
	})

	t.Run("short order rejected", func(t *testing.T) {
		if !errors.Is(ValidateWidgetOrder([]string{WidgetSearch}), ErrInvalidWidget) {
			t.Fatal("expected ErrInvalidWidget")
		}
	})
}
