package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_SaveLoad(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := testContext()

	err := storage.Save(ctx, map[string]json.RawMessage{
		"folders":  json.RawMessage(`[{"id":"f1","name":"Pekerjaan","todos":[],"expanded":false}]`),
		"settings": json.RawMessage(`{"userName":"User","theme":"auto"}`),
	})
	require.NoError(t, err)

	got, err := storage.Load(ctx, "folders", "settings", "notes")
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.JSONEq(t, `[{"id":"f1","name":"Pekerjaan","todos":[],"expanded":false}]`, string(got["folders"]))
	assert.JSONEq(t, `{"userName":"User","theme":"auto"}`, string(got["settings"]))
	assert.NotContains(t, got, "notes")
}

func TestMemoryStorage_SaveOverwrites(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := testContext()

	require.NoError(t, storage.Save(ctx, map[string]json.RawMessage{
		"notes": json.RawMessage(`[]`),
	}))
	require.NoError(t, storage.Save(ctx, map[string]json.RawMessage{
		"notes": json.RawMessage(`[{"id":"n-1","title":"Note","content":"hello"}]`),
	}))

	got, err := storage.Load(ctx, "notes")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"n-1","title":"Note","content":"hello"}]`, string(got["notes"]))
}

// TestMemoryStorage_LoadCopies verifies that mutating a loaded value does not
// corrupt the stored one.
func TestMemoryStorage_LoadCopies(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := testContext()

	require.NoError(t, storage.Save(ctx, map[string]json.RawMessage{
		"settings": json.RawMessage(`{"userName":"User","theme":"auto"}`),
	}))

	first, err := storage.Load(ctx, "settings")
	require.NoError(t, err)
	for i := range first["settings"] {
		first["settings"][i] = 'x'
	}

	second, err := storage.Load(ctx, "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"userName":"User","theme":"auto"}`, string(second["settings"]))
}

func TestMemoryStorage_LoadEmpty(t *testing.T) {
	storage := NewMemoryStorage()

	got, err := storage.Load(testContext(), "folders")
	require.NoError(t, err)
	assert.Empty(t, got)
}
