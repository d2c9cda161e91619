package store

import (
	"fmt"
	"sync"

	"github.com/frostkeep/icebox/pkg/types"
)

// FoodItems manages the freezer inventory collection.
type FoodItems struct {
	mu      sync.Mutex
	table   types.Table
	items   []*types.FoodItem
	loading bool
	message string
}

// NewFoodItems creates a food item store over the given table.
func NewFoodItems(table types.Table) *FoodItems {
	return &FoodItems{table: table}
}

// FetchAll reloads the snapshot from the backend. On failure the previous
// snapshot is kept and a user-facing message is recorded.
func (s *FoodItems) FetchAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchLocked()
}

func (s *FoodItems) fetchLocked() error {
	s.loading = true
	defer func() { s.loading = false }()

	results, err := s.table.Fetch(nil)
	if err != nil {
		s.message = "Erro ao carregar itens"
		return fmt.Errorf("%s: %w", s.message, err)
	}

	items := make([]*types.FoodItem, 0, len(results))
	for _, result := range results {
		if item, ok := result.(*types.FoodItem); ok {
			items = append(items, item)
		}
	}
	s.items = items
	s.message = ""
	return nil
}

// Items returns the current snapshot.
func (s *FoodItems) Items() []*types.FoodItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.FoodItem, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether a fetch is in flight.
func (s *FoodItems) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Message returns the last user-facing error message, empty after a
// successful operation.
func (s *FoodItems) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Add persists a new item and refreshes the snapshot.
func (s *FoodItems) Add(item *types.FoodItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := item.Validate(); err != nil {
		return "", err
	}
	id, err := s.table.Set("", item)
	if err != nil {
		s.message = "Erro ao adicionar item"
		return "", fmt.Errorf("%s: %w", s.message, err)
	}
	if err := s.fetchLocked(); err != nil {
		return id, err
	}
	return id, nil
}

// Update persists changes to an existing item and refreshes the snapshot.
func (s *FoodItems) Update(item *types.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.FoodItemID == "" {
		return types.ErrInvalidID
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if _, err := s.table.Set(item.FoodItemID, item); err != nil {
		s.message = "Erro ao atualizar item"
		return fmt.Errorf("%s: %w", s.message, err)
	}
	return s.fetchLocked()
}

// Delete removes an item and refreshes the snapshot.
func (s *FoodItems) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.table.Delete(id); err != nil {
		s.message = "Erro ao remover item"
		return fmt.Errorf("%s: %w", s.message, err)
	}
	return s.fetchLocked()
}

// Get returns an item by ID from the backend.
func (s *FoodItems) Get(id string) (*types.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.table.Get(id)
	if err != nil {
		return nil, err
	}
	item, ok := result.(*types.FoodItem)
	if !ok {
		return nil, types.ErrInvalidData
	}
	return item, nil
}

// FindByName returns the first item whose name matches case-insensitively.
// This is the single point where name-based cross-referencing happens.
func (s *FoodItems) FindByName(name string) (*types.FoodItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.NameEquals(name) {
			return item, true
		}
	}
	return nil, false
}
