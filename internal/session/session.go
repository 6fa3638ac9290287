// Package session persists the seed and last threshold of a viewing session
// so a restart reproduces the same grid at the same position.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"percolator/internal/core"
)

// State is the persisted session context.
type State struct {
	Seed  int64  `yaml:"seed"`
	Level string `yaml:"level"`
}

// New returns a State for seed at level.
func New(seed int64, level core.Level) State {
	return State{Seed: seed, Level: level.String()}
}

// Threshold parses the stored level, falling back to def when it is missing
// or malformed.
func (s State) Threshold(def core.Level) core.Level {
	if s.Level == "" {
		return def
	}
	l, err := core.ParseLevel(s.Level)
	if err != nil {
		return def
	}
	return l
}

// Load reads the state at path. ok is false when there is no saved session.
func Load(path string) (st State, ok bool, err error) {
	if path == "" {
		return State{}, false, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("reading session: %w", err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, false, fmt.Errorf("parsing session: %w", err)
	}
	return st, true, nil
}

// Save writes st to path. An empty path disables persistence.
func Save(path string, st State) error {
	if path == "" {
		return nil
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Clear removes the session file, ending the session.
func Clear(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
