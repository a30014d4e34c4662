// Package categorizer assigns spending categories to transactions by
// matching their narratives against the keyword ruleset, and learns new
// keyword rules from manual corrections.
package categorizer

import (
	"strings"

	"bankdash/internal/config"
	"bankdash/internal/models"
	"bankdash/internal/rulestore"

	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Normalize returns the canonical form of a narrative or keyword:
// lowercased with surrounding whitespace removed. The categorizer and
// the learner share it so a learned rule re-matches the same narrative
// on the next pass.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// buildIndex maps each normalized keyword to the first category, in
// ruleset insertion order, whose list contains it. Resolving ties once
// at build time keeps per-transaction matching independent of iteration
// order. The reserved fallback category and empty keywords are skipped.
func buildIndex(rules *rulestore.RuleSet) map[string]string {
	index := make(map[string]string)
	for _, name := range rules.Categories() {
		if name == models.CategoryUncategorised {
			continue
		}
		for _, keyword := range rules.Keywords(name) {
			normalized := Normalize(keyword)
			if normalized == "" {
				continue
			}
			if _, taken := index[normalized]; !taken {
				index[normalized] = name
			}
		}
	}
	return index
}

// Categorize labels every transaction with the first category whose
// keyword list contains the transaction's normalized narrative. The
// match is full-string equality, never substring containment: the
// keyword "woolworths" does not match the narrative "woolworths 123".
// Transactions that match nothing, including ones with an empty
// narrative, get the Uncategorised label. The input slice is labeled in
// place and returned.
func Categorize(transactions []models.Transaction, rules *rulestore.RuleSet) []models.Transaction {
	index := buildIndex(rules)

	matched := 0
	for i := range transactions {
		transactions[i].Category = models.CategoryUncategorised

		narrative := Normalize(transactions[i].Narrative)
		if narrative == "" {
			continue
		}
		if category, ok := index[narrative]; ok {
			transactions[i].Category = category
			matched++
		}
	}

	log.WithFields(logrus.Fields{
		"transactions": len(transactions),
		"matched":      matched,
		"keywords":     len(index),
	}).Debug("Categorized transactions")

	return transactions
}
