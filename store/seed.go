// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSeed = errors.New("invalid poll file")

// SeedOption is one option entry in a poll file
type SeedOption struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
}

// Seed is the start-up definition of the poll
type Seed struct {
	Question string       `yaml:"question"`
	Options  []SeedOption `yaml:"options"`
}

// DefaultSeed returns the built-in poll used when no poll file is configured
func DefaultSeed() Seed {
	return Seed{
		Question: "Comida de despedida",
		Options: []SeedOption{
			{Name: "Jijos del Mar [mariscos]", Location: "https://www.google.com/maps/place/JIJOS+DEL+MAR/@22.1604222,-100.9988385,17z"},
			{Name: "Pizzas Don Perro", Location: "https://www.google.com/maps/place/Pizzas+DON+PERRO/@22.0915427,-100.8776375,17z"},
			{Name: "Bristol Pub", Location: "https://www.google.com/maps/place/Bristol+Pub/@22.1527705,-101.0132917,17z"},
			{Name: "Hell Fire Club", Location: "https://www.google.com/maps/place/Hell+Fire+Club/@22.1487223,-100.9827061,17z"},
		},
	}
}

// LoadSeed reads and validates a YAML poll file
func LoadSeed(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read poll file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse poll file %s: %w", path, err)
	}

	if err := seed.Validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// Validate checks that the seed has a question and at least one named option
func (s Seed) Validate() error {
	if strings.TrimSpace(s.Question) == "" {
		return fmt.Errorf("%w: question is required", ErrInvalidSeed)
	}
	if len(s.Options) == 0 {
		return fmt.Errorf("%w: at least one option is required", ErrInvalidSeed)
	}
	for i, opt := range s.Options {
		if strings.TrimSpace(opt.Name) == "" {
			return fmt.Errorf("%w: option %d has no name", ErrInvalidSeed, i)
		}
	}
	return nil
}

// NewFromSeed creates a store from a seed. All votes start at zero and
// duplicate names after the first are dropped, as AddOption would.
func NewFromSeed(seed Seed) *Store {
	s := New(strings.TrimSpace(seed.Question), nil)
	for _, opt := range seed.Options {
		_ = s.AddOption(opt.Name, opt.Location)
	}
	return s
}

