package categorizer

import (
	"fmt"

	"bankdash/internal/rulestore"

	"github.com/sirupsen/logrus"
)

// Learner turns manual category corrections into keyword rules so that
// the next categorization pass labels the same narrative automatically.
type Learner struct {
	store *rulestore.Store
}

// NewLearner creates a Learner backed by the given rule store.
func NewLearner(store *rulestore.Store) *Learner {
	return &Learner{store: store}
}

// RecordCorrection records that the user assigned category to a
// transaction with the given raw narrative. The normalized narrative is
// appended to the category's keyword list and the ruleset is persisted.
//
// It reports false when there is nothing to record: an empty narrative,
// or a keyword the category already has. Applying the same correction
// twice therefore mutates the ruleset at most once. The category must
// already exist; an unknown category is an error and leaves the ruleset
// unchanged.
func (l *Learner) RecordCorrection(category, narrative string) (bool, error) {
	rules := l.store.Rules()
	if !rules.Has(category) {
		return false, fmt.Errorf("unknown category: %s", category)
	}

	keyword := Normalize(narrative)
	if keyword == "" {
		return false, nil
	}

	for _, existing := range rules.Keywords(category) {
		if Normalize(existing) == keyword {
			return false, nil
		}
	}

	if err := l.store.AppendKeyword(category, keyword); err != nil {
		return false, err
	}

	log.WithFields(logrus.Fields{
		"category": category,
		"keyword":  keyword,
	}).Debug("Learned keyword rule")
	return true, nil
}
