package store

import (
	_ "embed"
	"fmt"

	"caseboard/models"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the on-disk shape of seed data
type Fixtures struct {
	Clients   []models.Client   `yaml:"clients"`
	Cases     []models.Case     `yaml:"cases"`
	Notes     []models.Note     `yaml:"notes"`
	Documents []models.Document `yaml:"documents"`
}

// ParseFixtures decodes YAML seed data
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

// DefaultFixtures returns the built-in demo clients, cases, notes and documents
func DefaultFixtures() (*Fixtures, error) {
	return ParseFixtures(defaultFixtures)
}

// Load appends fixture records keeping their ids. Records whose id is empty
// or already present are skipped.
func (s *Store) Load(f *Fixtures) {
	s.Clients.load(f.Clients...)
	s.Cases.load(f.Cases...)
	s.Notes.load(f.Notes...)
	s.Documents.load(f.Documents...)
}

// Seed loads the built-in demo data
func (s *Store) Seed() error {
	f, err := DefaultFixtures()
	if err != nil {
		return err
	}
	s.Load(f)
	return nil
}
