// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed loads the fixed page content: polls, events, achievements
// and contacts.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/studcouncil/council/models"
)

//go:embed data.yaml
var defaultData []byte

type Data struct {
	Polls        []models.Poll        `yaml:"polls"`
	Events       []models.Event       `yaml:"events"`
	Achievements []models.Achievement `yaml:"achievements"`
	Contacts     []models.Contact     `yaml:"contacts"`
}

// Default returns the built-in seed data.
func Default() (Data, error) {
	return Parse(defaultData)
}

// Load reads seed data from path, or the built-in data when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML seed document.
func Parse(raw []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("parsing seed data: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Data{}, err
	}
	return d, nil
}

// Validate checks poll ids are unique and counters are non-negative.
func (d Data) Validate() error {
	seen := make(map[int]bool, len(d.Polls))
	for _, p := range d.Polls {
		if seen[p.ID] {
			return fmt.Errorf("duplicate poll id %d", p.ID)
		}
		seen[p.ID] = true

		if p.Question == "" {
			return fmt.Errorf("poll %d: question is required", p.ID)
		}
		if len(p.Options) == 0 {
			return fmt.Errorf("poll %d: at least one option is required", p.ID)
		}
		if p.TotalVotes < 0 {
			return fmt.Errorf("poll %d: total_votes must be non-negative", p.ID)
		}
		for i, o := range p.Options {
			if o.Votes < 0 || o.Dislikes < 0 {
				return fmt.Errorf("poll %d option %d: counts must be non-negative", p.ID, i)
			}
		}
	}
	for _, e := range d.Events {
		if e.Kind == 0 {
			return fmt.Errorf("event %q: type is required", e.Title)
		}
	}
	return nil
}
