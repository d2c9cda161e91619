package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frostkeep/icebox/internal/sqlite"
	"github.com/frostkeep/icebox/pkg/types"
)

var errTableDown = errors.New("table down")

// failingTable errors on every operation, for snapshot-preservation tests.
type failingTable struct{}

func (failingTable) Get(string) (any, error)            { return nil, errTableDown }
func (failingTable) Set(string, any) (string, error)    { return "", errTableDown }
func (failingTable) Delete(string) error                { return errTableDown }
func (failingTable) Fetch(map[string]any) ([]any, error) { return nil, errTableDown }

// attachBackend attaches a fresh backend over a temp dir and returns it.
func attachBackend(t *testing.T) *sqlite.Backend {
	t.Helper()

	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { b.Detach() })
	return b
}

func testTable(t *testing.T, name string) types.Table {
	t.Helper()

	table, err := attachBackend(t).GetTable(name)
	require.NoError(t, err)
	return table
}
