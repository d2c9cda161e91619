package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostkeep/icebox/pkg/types"
)

func soupRecipe() *types.Recipe {
	return &types.Recipe{
		Name: "Sopa de legumes",
		Ingredients: []types.Ingredient{
			{Name: "Batata", Quantity: 3},
			{Name: "Cenoura", Quantity: 2},
		},
		Instructions: "Cozinhar tudo e bater.",
		Servings:     4,
	}
}

func TestRecipes_Lifecycle(t *testing.T) {
	s := NewRecipes(testTable(t, types.TableRecipes))

	id, err := s.Add(soupRecipe())
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Len(t, s.Recipes(), 1)

	recipe := s.Recipes()[0]
	recipe.Servings = 6
	require.NoError(t, s.Update(recipe))
	assert.Equal(t, 6, s.Recipes()[0].Servings)

	require.NoError(t, s.Delete(id))
	assert.Empty(t, s.Recipes())
}

func TestRecipes_ValidationBeforePersistence(t *testing.T) {
	s := NewRecipes(failingTable{})

	r := soupRecipe()
	r.Instructions = ""
	_, err := s.Add(r)
	assert.ErrorIs(t, err, types.ErrInvalidInstructions)
	assert.Empty(t, s.Message())
}

func TestRecipes_FetchFailurePreservesSnapshot(t *testing.T) {
	s := NewRecipes(failingTable{})
	s.recipes = []*types.Recipe{soupRecipe()}

	err := s.FetchAll()
	require.Error(t, err)
	assert.Equal(t, "Erro ao carregar receitas", s.Message())
	assert.Len(t, s.Recipes(), 1)
}
