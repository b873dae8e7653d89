package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestStore_LoadMissingDocument(t *testing.T) {
	store := New(t.TempDir())

	records := []record{}
	err := store.Load("products.json", &records)

	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_SaveThenLoad(t *testing.T) {
	store := New(t.TempDir())

	in := []record{{ID: "1", Name: "Widget"}, {ID: "2", Name: "Gadget"}}
	require.NoError(t, store.Save("products.json", in))

	out := []record{}
	require.NoError(t, store.Load("products.json", &out))
	assert.Equal(t, in, out)
}

func TestStore_LoadMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o644))

	out := []record{}
	err := store.Load("cart.json", &out)

	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestStore_SaveOverwritesWholeDocument(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Save("cart.json", []record{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, store.Save("cart.json", []record{}))

	out := []record{{ID: "stale"}}
	out = out[:0]
	require.NoError(t, store.Load("cart.json", &out))
	assert.Empty(t, out)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, store.Save("products.json", []record{{ID: "1"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "products.json", entries[0].Name())
}
