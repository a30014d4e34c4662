package categorizer

import (
	"path/filepath"
	"testing"

	"bankdash/internal/models"
	"bankdash/internal/rulestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRules(t *testing.T, categories map[string][]string, order ...string) *rulestore.RuleSet {
	t.Helper()
	rules := rulestore.NewRuleSet()
	for _, name := range order {
		rules.Add(name)
		for _, keyword := range categories[name] {
			require.NoError(t, rules.AppendKeyword(name, keyword))
		}
	}
	return rules
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "woolworths 123", Normalize("  WOOLWORTHS 123 "))
	assert.Equal(t, "", Normalize("   "))
}

func TestCategorize_ExactMatchOnly(t *testing.T) {
	rules := newRules(t, map[string][]string{
		"Groceries": {"woolworths"},
	}, "Groceries")

	// "woolworths 123" is not equal to the keyword "woolworths"; matching
	// is full-string equality, not substring containment.
	transactions := []models.Transaction{
		{Narrative: "WOOLWORTHS 123"},
		{Narrative: "Woolworths"},
	}
	transactions = Categorize(transactions, rules)

	assert.Equal(t, models.CategoryUncategorised, transactions[0].Category)
	assert.Equal(t, "Groceries", transactions[1].Category)
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	rules := newRules(t, map[string][]string{
		"Groceries": {"coles"},
	}, "Groceries")

	transactions := Categorize([]models.Transaction{{Narrative: "Coles"}}, rules)
	assert.Equal(t, "Groceries", transactions[0].Category)
}

func TestCategorize_FirstCategoryWins(t *testing.T) {
	rules := newRules(t, map[string][]string{
		"Food":   {"coles"},
		"Market": {"coles"},
	}, "Food", "Market")

	transactions := Categorize([]models.Transaction{{Narrative: "coles"}}, rules)
	assert.Equal(t, "Food", transactions[0].Category)
}

func TestCategorize_FallbackKeywordsIgnored(t *testing.T) {
	rules := rulestore.NewRuleSet()
	require.NoError(t, rules.AppendKeyword(models.CategoryUncategorised, "coles"))
	rules.Add("Groceries")

	// A keyword filed under the fallback category is never a pattern.
	transactions := Categorize([]models.Transaction{{Narrative: "coles"}}, rules)
	assert.Equal(t, models.CategoryUncategorised, transactions[0].Category)
}

func TestCategorize_EmptyNarrative(t *testing.T) {
	rules := newRules(t, map[string][]string{
		"Groceries": {"coles"},
	}, "Groceries")

	transactions := Categorize([]models.Transaction{
		{Narrative: ""},
		{Narrative: "   "},
	}, rules)

	assert.Equal(t, models.CategoryUncategorised, transactions[0].Category)
	assert.Equal(t, models.CategoryUncategorised, transactions[1].Category)
}

func TestCategorize_Deterministic(t *testing.T) {
	rules := newRules(t, map[string][]string{
		"Groceries": {"coles", "woolworths"},
		"Transport": {"opal"},
	}, "Groceries", "Transport")

	transactions := []models.Transaction{
		{Narrative: "coles"},
		{Narrative: "opal"},
		{Narrative: "unknown merchant"},
	}

	first := Categorize(append([]models.Transaction{}, transactions...), rules)
	second := Categorize(append([]models.Transaction{}, transactions...), rules)
	assert.Equal(t, first, second)
}

func TestCategorize_RelabelsOnRepeat(t *testing.T) {
	rules := newRules(t, map[string][]string{
		"Groceries": {"coles"},
	}, "Groceries")

	transactions := []models.Transaction{{Narrative: "coles", Category: "Stale"}}
	transactions = Categorize(transactions, rules)
	assert.Equal(t, "Groceries", transactions[0].Category)

	// A second pass over already-labeled transactions is idempotent.
	transactions = Categorize(transactions, rules)
	assert.Equal(t, "Groceries", transactions[0].Category)
}

func TestCategorize_LearnedRuleRematches(t *testing.T) {
	dir := t.TempDir()
	store := rulestore.NewStore(filepath.Join(dir, "categories.json"))
	_, err := store.CreateCategory("Groceries")
	require.NoError(t, err)

	transactions := []models.Transaction{{Narrative: "  COLES  "}}
	transactions = Categorize(transactions, store.Rules())
	assert.Equal(t, models.CategoryUncategorised, transactions[0].Category)

	learner := NewLearner(store)
	learned, err := learner.RecordCorrection("Groceries", transactions[0].Narrative)
	require.NoError(t, err)
	assert.True(t, learned)

	transactions = Categorize(transactions, store.Rules())
	assert.Equal(t, "Groceries", transactions[0].Category)
}
