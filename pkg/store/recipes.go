package store

import (
	"fmt"
	"sync"

	"github.com/frostkeep/icebox/pkg/types"
)

// Recipes manages the recipe collection.
type Recipes struct {
	mu      sync.Mutex
	table   types.Table
	recipes []*types.Recipe
	loading bool
	message string
}

// NewRecipes creates a recipe store over the given table.
func NewRecipes(table types.Table) *Recipes {
	return &Recipes{table: table}
}

// FetchAll reloads the snapshot from the backend.
func (s *Recipes) FetchAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchLocked()
}

func (s *Recipes) fetchLocked() error {
	s.loading = true
	defer func() { s.loading = false }()

	results, err := s.table.Fetch(nil)
	if err != nil {
		s.message = "Erro ao carregar receitas"
		return fmt.Errorf("%s: %w", s.message, err)
	}

	recipes := make([]*types.Recipe, 0, len(results))
	for _, result := range results {
		if r, ok := result.(*types.Recipe); ok {
			recipes = append(recipes, r)
		}
	}
	s.recipes = recipes
	s.message = ""
	return nil
}

// Recipes returns the current snapshot.
func (s *Recipes) Recipes() []*types.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Message returns the last user-facing error message.
func (s *Recipes) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Add persists a new recipe and refreshes the snapshot.
func (s *Recipes) Add(r *types.Recipe) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := r.Validate(); err != nil {
		return "", err
	}
	id, err := s.table.Set("", r)
	if err != nil {
		s.message = "Erro ao adicionar receita"
		return "", fmt.Errorf("%s: %w", s.message, err)
	}
	if err := s.fetchLocked(); err != nil {
		return id, err
	}
	return id, nil
}

// Update persists changes to an existing recipe.
func (s *Recipes) Update(r *types.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.RecipeID == "" {
		return types.ErrInvalidID
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if _, err := s.table.Set(r.RecipeID, r); err != nil {
		s.message = "Erro ao atualizar receita"
		return fmt.Errorf("%s: %w", s.message, err)
	}
	return s.fetchLocked()
}

// Delete removes a recipe and refreshes the snapshot.
func (s *Recipes) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.table.Delete(id); err != nil {
		s.message = "Erro ao remover receita"
		return fmt.Errorf("%s: %w", s.message, err)
	}
	return s.fetchLocked()
}

// Get returns a recipe by ID from the backend.
func (s *Recipes) Get(id string) (*types.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.table.Get(id)
	if err != nil {
		return nil, err
	}
	r, ok := result.(*types.Recipe)
	if !ok {
		return nil, types.ErrInvalidData
	}
	return r, nil
}
