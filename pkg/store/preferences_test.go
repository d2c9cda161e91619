package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostkeep/icebox/pkg/types"
)

func preferencesPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "widget_order.json")
}

func TestPreferences_WidgetOrder(t *testing.T) {
	t.Run("missing file yields the default order", func(t *testing.T) {
		s := NewPreferences(preferencesPath(t))
		assert.Equal(t, types.DefaultWidgetOrder(), s.WidgetOrder())
	})

	t.Run("corrupt file yields the default order", func(t *testing.T) {
		path := preferencesPath(t)
		require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))
		s := NewPreferences(path)
		assert.Equal(t, types.DefaultWidgetOrder(), s.WidgetOrder())
	})

	t.Run("stale file with unknown widgets yields the default order", func(t *testing.T) {
		path := preferencesPath(t)
		require.NoError(t, os.WriteFile(path, []byte(`["shopping-list","weather","search"]`), 0o644))
		s := NewPreferences(path)
		assert.Equal(t, types.DefaultWidgetOrder(), s.WidgetOrder())
	})
}

func TestPreferences_UpdateWidgetOrder(t *testing.T) {
	s := NewPreferences(preferencesPath(t))
	custom := []string{types.WidgetRecentItems, types.WidgetShoppingList, types.WidgetSearch}

	require.NoError(t, s.UpdateWidgetOrder(custom))
	assert.Equal(t, custom, s.WidgetOrder())

	t.Run("rejects invalid orders", func(t *testing.T) {
		err := s.UpdateWidgetOrder([]string{types.WidgetSearch})
		assert.ErrorIs(t, err, types.ErrInvalidWidget)

		err = s.UpdateWidgetOrder([]string{types.WidgetSearch, types.WidgetSearch, types.WidgetShoppingList})
		assert.ErrorIs(t, err, types.ErrInvalidWidget)

		// The stored order is untouched.
		assert.Equal(t, custom, s.WidgetOrder())
	})
}

func TestPreferences_ResetToDefault(t *testing.T) {
	s := NewPreferences(preferencesPath(t))
	require.NoError(t, s.UpdateWidgetOrder([]string{
		types.WidgetRecentItems, types.WidgetShoppingList, types.WidgetSearch,
	}))

	require.NoError(t, s.ResetToDefault())
	assert.Equal(t, types.DefaultWidgetOrder(), s.WidgetOrder())
}
