package rulestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"bankdash/internal/config"
	"bankdash/internal/models"

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

// Store persists a RuleSet to a JSON file. Every mutating operation
// writes the full ruleset back to disk before returning, so a restart
// (or another read through the same file) observes the change.
type Store struct {
	path  string
	rules *RuleSet
	mu    sync.RWMutex
}

// NewStore loads the ruleset at path. A missing, unreadable, or
// malformed file falls back to the default single-category ruleset so
// the tool stays usable; the next save overwrites whatever was there.
func NewStore(path string) *Store {
	s := &Store{path: path, rules: NewRuleSet()}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warnf("Failed to read rules file %s, starting with defaults", s.path)
		}
		return
	}

	rules := NewRuleSet()
	if err := json.Unmarshal(data, rules); err != nil {
		log.WithError(err).Warnf("Failed to parse rules file %s, starting with defaults", s.path)
		return
	}

	s.rules = rules
	log.WithFields(logrus.Fields{
		"file":       s.path,
		"categories": rules.Len(),
	}).Debug("Loaded ruleset")
}

// Path returns the rules file path.
func (s *Store) Path() string {
	return s.path
}

// Rules returns the in-memory ruleset.
func (s *Store) Rules() *RuleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules
}

// Save writes the full ruleset to disk, overwriting prior content.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := json.Marshal(s.rules)
	if err != nil {
		return fmt.Errorf("marshaling ruleset: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("creating rules directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, models.PermissionRulesFile); err != nil {
		return fmt.Errorf("writing rules file: %w", err)
	}

	log.WithField("file", s.path).Debug("Saved ruleset")
	return nil
}

// CreateCategory inserts an empty category and persists the ruleset.
// It reports false without writing when the category already exists.
// Blank names are rejected without mutating anything.
func (s *Store) CreateCategory(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("category name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rules.Add(name) {
		return false, nil
	}
	if err := s.saveLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// AppendKeyword appends a keyword to an existing category's list and
// persists the ruleset. The category must already exist; corrections
// never create categories as a side effect.
func (s *Store) AppendKeyword(category, keyword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rules.AppendKeyword(category, keyword); err != nil {
		return err
	}
	return s.saveLocked()
}
