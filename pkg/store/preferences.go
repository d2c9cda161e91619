package store

import (
	"fmt"
	"sync"

	"github.com/frostkeep/icebox/internal/flatfile"
	"github.com/frostkeep/icebox/pkg/types"
)

// Preferences manages dashboard widget ordering, persisted as a single
// JSON document. A missing or unreadable file falls back to the default
// order rather than failing.
type Preferences struct {
	mu   sync.Mutex
	path string
}

// NewPreferences creates a preferences store over the given file path.
func NewPreferences(path string) *Preferences {
	return &Preferences{path: path}
}

// WidgetOrder returns the persisted widget order, or the default order
// when the file is missing, corrupt, or holds an invalid order.
func (s *Preferences) WidgetOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order []string
	if err := flatfile.ReadJSON(s.path, &order); err != nil {
		return types.DefaultWidgetOrder()
	}
	if err := types.ValidateWidgetOrder(order); err != nil {
		return types.DefaultWidgetOrder()
	}
	return order
}

// UpdateWidgetOrder validates and persists a new widget order.
func (s *Preferences) UpdateWidgetOrder(order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := types.ValidateWidgetOrder(order); err != nil {
		return err
	}
	if err := flatfile.WriteJSON(s.path, order); err != nil {
		return fmt.Errorf("saving widget order: %w", err)
	}
	return nil
}

// ResetToDefault restores and persists the default widget order.
func (s *Preferences) ResetToDefault() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := flatfile.WriteJSON(s.path, types.DefaultWidgetOrder()); err != nil {
		return fmt.Errorf("resetting widget order: %w", err)
	}
	return nil
}
