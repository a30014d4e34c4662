// Package rulestore owns the category-to-keyword ruleset and its persistence.
//
// A ruleset maps category names to lists of keyword strings. Category
// order is insertion order and is meaningful: when a keyword appears in
// more than one category, the earliest category wins during matching.
// The reserved Uncategorised category always exists and acts as the
// fallback; its keyword list is never consulted.
package rulestore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"bankdash/internal/models"
)

// RuleSet is an ordered mapping from category name to its keyword list.
type RuleSet struct {
	names    []string
	keywords map[string][]string
}

// NewRuleSet returns a ruleset containing only the reserved fallback category.
func NewRuleSet() *RuleSet {
	r := &RuleSet{keywords: make(map[string][]string)}
	r.insert(models.CategoryUncategorised)
	return r
}

func (r *RuleSet) insert(name string) {
	r.names = append(r.names, name)
	r.keywords[name] = []string{}
}

// Categories returns the category names in insertion order.
func (r *RuleSet) Categories() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Keywords returns a copy of the keyword list for a category, or nil
// when the category does not exist.
func (r *RuleSet) Keywords(name string) []string {
	keywords, ok := r.keywords[name]
	if !ok {
		return nil
	}
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}

// Has reports whether the category exists.
func (r *RuleSet) Has(name string) bool {
	_, ok := r.keywords[name]
	return ok
}

// Len returns the number of categories, the fallback included.
func (r *RuleSet) Len() int {
	return len(r.names)
}

// Add inserts an empty category at the end of the order and reports
// whether it was added. An existing category is left untouched.
func (r *RuleSet) Add(name string) bool {
	if r.Has(name) {
		return false
	}
	r.insert(name)
	return true
}

// AppendKeyword appends a keyword to an existing category's list.
func (r *RuleSet) AppendKeyword(name, keyword string) error {
	if !r.Has(name) {
		return fmt.Errorf("unknown category: %s", name)
	}
	r.keywords[name] = append(r.keywords[name], keyword)
	return nil
}

// MarshalJSON encodes the ruleset as a JSON object whose keys appear in
// insertion order. Empty keyword lists encode as [] rather than null so
// that a load/save cycle is a byte-for-byte fixed point.
func (r *RuleSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("encoding category name: %w", err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		keywords := r.keywords[name]
		if keywords == nil {
			keywords = []string{}
		}
		list, err := json.Marshal(keywords)
		if err != nil {
			return nil, fmt.Errorf("encoding keywords for %q: %w", name, err)
		}
		buf.Write(list)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the ruleset, preserving the
// order in which keys appear. The reserved fallback category is re-added
// when the stored object omits it.
func (r *RuleSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("parsing ruleset: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ruleset must be a JSON object")
	}

	r.names = nil
	r.keywords = make(map[string][]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parsing ruleset: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ruleset keys must be strings")
		}

		var keywords []string
		if err := dec.Decode(&keywords); err != nil {
			return fmt.Errorf("parsing keywords for %q: %w", name, err)
		}
		if keywords == nil {
			keywords = []string{}
		}

		// Last occurrence wins for duplicate keys, order keeps the first.
		if !r.Has(name) {
			r.names = append(r.names, name)
		}
		r.keywords[name] = keywords
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("parsing ruleset: %w", err)
	}

	if !r.Has(models.CategoryUncategorised) {
		r.insert(models.CategoryUncategorised)
	}
	return nil
}
