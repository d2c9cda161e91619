package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/frostkeep/icebox/pkg/types"
)

// Categories manages the category collection. The default categories are
// immutable; the guards here mirror the ones the table layer enforces so
// the rule holds for every caller.
type Categories struct {
	mu         sync.Mutex
	table      types.Table
	categories []*types.Category
	loading    bool
	message    string
}

// NewCategories creates a category store over the given table.
func NewCategories(table types.Table) *Categories {
	return &Categories{table: table}
}

// FetchAll reloads the snapshot from the backend.
func (s *Categories) FetchAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchLocked()
}

func (s *Categories) fetchLocked() error {
	s.loading = true
	defer func() { s.loading = false }()

	results, err := s.table.Fetch(nil)
	if err != nil {
		s.message = "Erro ao carregar categorias"
		return fmt.Errorf("%s: %w", s.message, err)
	}

	categories := make([]*types.Category, 0, len(results))
	for _, result := range results {
		if c, ok := result.(*types.Category); ok {
			categories = append(categories, c)
		}
	}
	s.categories = categories
	s.message = ""
	return nil
}

// Categories returns the current snapshot, ordered by category ID.
func (s *Categories) Categories() []*types.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Message returns the last user-facing error message.
func (s *Categories) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Add creates a category from a display name. The stable ID is derived
// from the name, and a collision with any existing category is rejected.
func (s *Categories) Add(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &types.Category{Name: name}
	if err := c.Validate(); err != nil {
		return "", err
	}
	id, err := s.table.Set("", c)
	if err != nil {
		if errors.Is(err, types.ErrDuplicateName) {
			s.message = "Já existe uma categoria com este nome"
		} else {
			s.message = "Erro ao adicionar categoria"
		}
		return "", fmt.Errorf("%s: %w", s.message, err)
	}
	if err := s.fetchLocked(); err != nil {
		return id, err
	}
	return id, nil
}

// Update renames a custom category. Default categories are immutable.
func (s *Categories) Update(c *types.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.CategoryID == "" {
		return types.ErrInvalidID
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if _, err := s.table.Set(c.CategoryID, c); err != nil {
		if errors.Is(err, types.ErrDefaultCategory) {
			s.message = "Não é possível editar uma categoria padrão"
		} else {
			s.message = "Erro ao atualizar categoria"
		}
		return fmt.Errorf("%s: %w", s.message, err)
	}
	return s.fetchLocked()
}

// Delete removes a custom category. Default categories are immutable.
func (s *Categories) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.table.Delete(id); err != nil {
		if errors.Is(err, types.ErrDefaultCategory) {
			s.message = "Não é possível remover uma categoria padrão"
		} else {
			s.message = "Erro ao remover categoria"
		}
		return fmt.Errorf("%s: %w", s.message, err)
	}
	return s.fetchLocked()
}

// Get returns a category by its ID from the backend.
func (s *Categories) Get(id string) (*types.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.table.Get(id)
	if err != nil {
		return nil, err
	}
	c, ok := result.(*types.Category)
	if !ok {
		return nil, types.ErrInvalidData
	}
	return c, nil
}
