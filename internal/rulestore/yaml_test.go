package rulestore

import (
	"path/filepath"
	"testing"

	"bankdash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ExportImportYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store := NewStore(filepath.Join(dir, "categories.json"))
	_, err := store.CreateCategory("Groceries")
	require.NoError(t, err)
	_, err = store.CreateCategory("Transport")
	require.NoError(t, err)
	require.NoError(t, store.AppendKeyword("Groceries", "coles"))
	require.NoError(t, store.AppendKeyword("Transport", "opal"))

	yamlFile := filepath.Join(dir, "rules.yaml")
	require.NoError(t, store.ExportYAML(yamlFile))

	other := NewStore(filepath.Join(dir, "other.json"))
	require.NoError(t, other.ImportYAML(yamlFile))

	assert.Equal(t, store.Rules().Categories(), other.Rules().Categories())
	assert.Equal(t, []string{"coles"}, other.Rules().Keywords("Groceries"))
	assert.Equal(t, []string{"opal"}, other.Rules().Keywords("Transport"))
}

func TestStore_ImportYAMLKeepsFallback(t *testing.T) {
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "rules.yaml")
	writeFile(t, yamlFile, "- name: Groceries\n  keywords: [coles]\n")

	store := NewStore(filepath.Join(dir, "categories.json"))
	require.NoError(t, store.ImportYAML(yamlFile))

	assert.True(t, store.Rules().Has(models.CategoryUncategorised))
	assert.Equal(t, []string{"coles"}, store.Rules().Keywords("Groceries"))
}

func TestStore_ImportYAMLMalformed(t *testing.T) {
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "rules.yaml")
	writeFile(t, yamlFile, "{not valid: yaml: here}")

	store := NewStore(filepath.Join(dir, "categories.json"))
	assert.Error(t, store.ImportYAML(yamlFile))
	assert.Error(t, store.ImportYAML(filepath.Join(dir, "missing.yaml")))
}
