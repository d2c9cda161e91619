package flatfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.jsonl")

	in := []json.RawMessage{
		json.RawMessage(`{"id":"a","name":"Frango"}`),
		json.RawMessage(`{"id":"b","name":"Batata"}`),
	}
	require.NoError(t, WriteJSONL(path, in))

	out, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.jsonl")
	content := "{\"id\":\"a\"}\nnot json\n\n{\"id\":\"b\"}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := ReadJSONL(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.JSONEq(t, `{"id":"a"}`, string(out[0]))
	assert.JSONEq(t, `{"id":"b"}`, string(out[1]))
}

func TestWriteJSONLEmptyTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.jsonl")
	require.NoError(t, WriteJSONL(path, []json.RawMessage{json.RawMessage(`{"id":"a"}`)}))
	require.NoError(t, WriteJSONL(path, nil))

	out, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget_order.json")

	in := []string{"search", "recent-items", "shopping-list"}
	require.NoError(t, WriteJSON(path, in))

	var out []string
	require.NoError(t, ReadJSON(path, &out))
	assert.Equal(t, in, out)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, WriteJSON(path, map[string]int{"a": 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
}
