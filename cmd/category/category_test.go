package category_test

import (
	"testing"

	"bankdash/cmd/category"

	"github.com/stretchr/testify/assert"
)

func TestCategoryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "category", category.Cmd.Use)
	assert.Contains(t, category.Cmd.Short, "categories")
}

func TestCategoryCommand_SubCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range category.Cmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["create"])
	assert.True(t, names["learn"])
	assert.True(t, names["list"])
}

func TestLearnCommand_Flags(t *testing.T) {
	learnCmd, _, err := category.Cmd.Find([]string{"learn"})
	assert.NoError(t, err)

	categoryFlag := learnCmd.Flags().Lookup("category")
	assert.NotNil(t, categoryFlag)
	assert.Equal(t, "c", categoryFlag.Shorthand)

	narrativeFlag := learnCmd.Flags().Lookup("narrative")
	assert.NotNil(t, narrativeFlag)
	assert.Equal(t, "n", narrativeFlag.Shorthand)
}
