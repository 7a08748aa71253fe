// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/danielhkuo/simple-poll/models"
)

var (
	ErrIndexOutOfRange = errors.New("option index out of range")
	ErrEmptyName       = errors.New("option name is empty")
	ErrDuplicateName   = errors.New("option name already exists")
	ErrLastOption      = errors.New("cannot remove the last option")
)

// Store holds the single poll in memory.
// Every mutation either applies fully or returns an error and leaves the poll unchanged.
type Store struct {
	mu       sync.RWMutex
	question string
	options  []models.Option
}

// New creates a store with the given question and options.
// Vote counts are kept as given; names and locations are trimmed.
func New(question string, options []models.Option) *Store {
	s := &Store{question: question, options: make([]models.Option, 0, len(options))}
	for _, opt := range options {
		s.options = append(s.options, models.Option{
			Name:     strings.TrimSpace(opt.Name),
			Location: strings.TrimSpace(opt.Location),
			Votes:    opt.Votes,
		})
	}
	return s
}

// Question returns the poll question. It never changes after New.
func (s *Store) Question() string {
	return s.question
}

// Len returns the current number of options
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.options)
}

// Option returns a copy of the option at index
func (s *Store) Option(index int) (models.Option, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.options) {
		return models.Option{}, false
	}
	return s.options[index], true
}

// Snapshot returns a copy of the poll that is safe to read without locking
func (s *Store) Snapshot() models.Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()

	options := make([]models.Option, len(s.options))
	copy(options, s.options)
	return models.Poll{Question: s.question, Options: options}
}

// CastVote adds one vote to the option at index
func (s *Store) CastVote(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.options[index].Votes++
	return nil
}

// AddOption appends a new option with zero votes.
// Names are compared exactly (case-sensitive) after trimming.
func (s *Store) AddOption(name, location string) error {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, opt := range s.options {
		if opt.Name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	s.options = append(s.options, models.Option{Name: name, Location: location})
	return nil
}

// EditOption renames the option at index and replaces its location.
// Votes are kept. Unlike AddOption, the new name is not checked against other options.
func (s *Store) EditOption(index int, name, location string) error {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}
	s.options[index].Name = name
	s.options[index].Location = location
	return nil
}

// RemoveOption deletes the option at index. At least one option always remains.
func (s *Store) RemoveOption(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.options) <= 1 {
		return ErrLastOption
	}
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.options = append(s.options[:index], s.options[index+1:]...)
	return nil
}

// ResetVotes sets every vote count to zero
func (s *Store) ResetVotes() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.options {
		s.options[i].Votes = 0
	}
}

// checkIndex must be called with s.mu held
func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.options) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.options))
	}
	return nil
}
