package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/frostkeep/icebox/internal/flatfile"
	"github.com/frostkeep/icebox/pkg/types"
)

// ShoppingList manages the shopping list, persisted as a flat JSONL file
// outside the SQLite-backed collections. Every mutation rewrites the file
// atomically and refreshes the snapshot.
type ShoppingList struct {
	mu      sync.Mutex
	path    string
	items   []*types.ShoppingListItem
	message string
}

// NewShoppingList creates a shopping list store over the given file path.
func NewShoppingList(path string) *ShoppingList {
	return &ShoppingList{path: path}
}

// FetchAll reloads the snapshot from the file. A missing file yields an
// empty list; a read failure preserves the previous snapshot.
func (s *ShoppingList) FetchAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *ShoppingList) loadLocked() error {
	records, err := flatfile.ReadJSONL(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.items = nil
		s.message = ""
		return nil
	}
	if err != nil {
		s.message = "Falha ao carregar a lista de compras"
		return fmt.Errorf("%s: %w", s.message, err)
	}

	items := make([]*types.ShoppingListItem, 0, len(records))
	for _, record := range records {
		var item types.ShoppingListItem
		if err := json.Unmarshal(record, &item); err != nil {
			continue
		}
		items = append(items, &item)
	}
	s.items = items
	s.message = ""
	return nil
}

func (s *ShoppingList) saveLocked() error {
	records := make([]json.RawMessage, 0, len(s.items))
	for _, item := range s.items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshaling shopping list item: %w", err)
		}
		records = append(records, data)
	}
	if err := flatfile.WriteJSONL(s.path, records); err != nil {
		s.message = "Falha ao salvar a lista de compras"
		return fmt.Errorf("%s: %w", s.message, err)
	}
	s.message = ""
	return nil
}

// Items returns the current snapshot.
func (s *ShoppingList) Items() []*types.ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.ShoppingListItem, len(s.items))
	copy(out, s.items)
	return out
}

// Message returns the last user-facing error message.
func (s *ShoppingList) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Add appends a new unchecked item and persists the list.
func (s *ShoppingList) Add(item *types.ShoppingListItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := item.Validate(); err != nil {
		return "", err
	}
	if item.ShoppingListItemID == "" {
		item.ShoppingListItemID = newItemID()
	}
	if item.DateAdded.IsZero() {
		item.DateAdded = time.Now()
	}
	s.items = append(s.items, item)
	if err := s.saveLocked(); err != nil {
		s.items = s.items[:len(s.items)-1]
		return "", err
	}
	return item.ShoppingListItemID, nil
}

// Update replaces an existing item in place.
func (s *ShoppingList) Update(item *types.ShoppingListItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ShoppingListItemID == "" {
		return types.ErrInvalidID
	}
	if err := item.Validate(); err != nil {
		return err
	}
	i := s.indexLocked(item.ShoppingListItemID)
	if i < 0 {
		return types.ErrNotFound
	}
	previous := s.items[i]
	s.items[i] = item
	if err := s.saveLocked(); err != nil {
		s.items[i] = previous
		return err
	}
	return nil
}

// Delete removes an item by ID.
func (s *ShoppingList) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	if err := s.saveLocked(); err != nil {
		s.items = append(s.items[:i], append([]*types.ShoppingListItem{removed}, s.items[i:]...)...)
		return err
	}
	return nil
}

// ToggleCheck flips the checked flag on an item.
func (s *ShoppingList) ToggleCheck(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return types.ErrNotFound
	}
	s.items[i].Checked = !s.items[i].Checked
	if err := s.saveLocked(); err != nil {
		s.items[i].Checked = !s.items[i].Checked
		return err
	}
	return nil
}

// Checked returns the currently checked items, in list order.
func (s *ShoppingList) Checked() []*types.ShoppingListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var checked []*types.ShoppingListItem
	for _, item := range s.items {
		if item.Checked {
			checked = append(checked, item)
		}
	}
	return checked
}

// ClearChecked removes every checked item from the list.
func (s *ShoppingList) ClearChecked() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.items
	remaining := make([]*types.ShoppingListItem, 0, len(s.items))
	for _, item := range s.items {
		if !item.Checked {
			remaining = append(remaining, item)
		}
	}
	s.items = remaining
	if err := s.saveLocked(); err != nil {
		s.items = previous
		return err
	}
	return nil
}

func (s *ShoppingList) indexLocked(id string) int {
	for i, item := range s.items {
		if item.ShoppingListItemID == id {
			return i
		}
	}
	return -1
}

func newItemID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
