package rulestore

import (
	"os"
	"path/filepath"
	"testing"

	"bankdash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "categories.json"))
}

func TestNewStore_MissingFile(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, []string{models.CategoryUncategorised}, store.Rules().Categories())
}

func TestNewStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.json")
	writeFile(t, path, `{"Groceries": not json`)

	store := NewStore(path)

	// Corruption falls back to the default ruleset rather than failing.
	assert.Equal(t, []string{models.CategoryUncategorised}, store.Rules().Categories())

	// The next save overwrites the corrupt content.
	require.NoError(t, store.Save())
	reloaded := NewStore(path)
	assert.Equal(t, []string{models.CategoryUncategorised}, reloaded.Rules().Categories())
}

func TestStore_CreateCategory(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateCategory("Groceries")
	assert.NoError(t, err)
	assert.True(t, created)

	// Idempotent: second creation is a no-op, not an error.
	created, err = store.CreateCategory("Groceries")
	assert.NoError(t, err)
	assert.False(t, created)

	// Blank names are rejected without mutating state.
	_, err = store.CreateCategory("   ")
	assert.Error(t, err)
	assert.Equal(t, 2, store.Rules().Len())

	// Leading/trailing whitespace is trimmed from the stored name.
	created, err = store.CreateCategory("  Transport ")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.True(t, store.Rules().Has("Transport"))
}

func TestStore_CreateCategoryPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.json")

	store := NewStore(path)
	_, err := store.CreateCategory("Groceries")
	require.NoError(t, err)

	// A fresh store against the same file observes the mutation.
	reloaded := NewStore(path)
	assert.True(t, reloaded.Rules().Has("Groceries"))
}

func TestStore_AppendKeywordPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.json")

	store := NewStore(path)
	_, err := store.CreateCategory("Groceries")
	require.NoError(t, err)
	require.NoError(t, store.AppendKeyword("Groceries", "coles"))

	reloaded := NewStore(path)
	assert.Equal(t, []string{"coles"}, reloaded.Rules().Keywords("Groceries"))

	// Unknown categories are an error, and nothing is written.
	assert.Error(t, store.AppendKeyword("Transport", "opal"))
}

func TestStore_SaveLoadSaveIsFixedPoint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.json")

	store := NewStore(path)
	_, err := store.CreateCategory("Groceries")
	require.NoError(t, err)
	require.NoError(t, store.AppendKeyword("Groceries", "coles"))

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Save())

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "rules", "categories.json")

	store := NewStore(path)
	_, err := store.CreateCategory("Groceries")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
