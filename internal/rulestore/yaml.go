package rulestore

import (
	"fmt"
	"os"
	"strings"

	"bankdash/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// yamlCategory is the human-editable form of one ruleset entry.
type yamlCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// ExportYAML writes the ruleset as an ordered YAML list for hand editing.
// The JSON rules file stays the canonical store; this is a convenience
// view of it.
func (s *Store) ExportYAML(path string) error {
	s.mu.RLock()
	categories := make([]yamlCategory, 0, s.rules.Len())
	for _, name := range s.rules.Categories() {
		categories = append(categories, yamlCategory{
			Name:     name,
			Keywords: s.rules.Keywords(name),
		})
	}
	s.mu.RUnlock()

	data, err := yaml.Marshal(categories)
	if err != nil {
		return fmt.Errorf("marshaling YAML rules: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionRulesFile); err != nil {
		return fmt.Errorf("writing YAML rules: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":       path,
		"categories": len(categories),
	}).Info("Exported ruleset to YAML")
	return nil
}

// ImportYAML replaces the ruleset with the categories from a YAML export
// and persists the result. Entries with blank names are skipped; the
// reserved fallback category is re-added when the file omits it.
func (s *Store) ImportYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading YAML rules: %w", err)
	}

	var categories []yamlCategory
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return fmt.Errorf("parsing YAML rules: %w", err)
	}

	rules := NewRuleSet()
	for _, category := range categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			continue
		}
		rules.Add(name)
		for _, keyword := range category.Keywords {
			if err := rules.AppendKeyword(name, keyword); err != nil {
				return err
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = rules
	if err := s.saveLocked(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":       path,
		"categories": rules.Len(),
	}).Info("Imported ruleset from YAML")
	return nil
}
