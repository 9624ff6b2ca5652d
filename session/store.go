package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Store handles save/load of a session snapshot to one file
type Store struct {
	path string
}

// NewStore creates a store writing to path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (st *Store) Path() string {
	return st.path
}

// Exists checks if a saved session file exists
func (st *Store) Exists() bool {
	_, err := os.Stat(st.path)
	return err == nil
}

// Save writes the session snapshot to disk
func (st *Store) Save(s *Session) error {
	if dir := filepath.Dir(st.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}

	data, err := toml.Marshal(Snapshot(s))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if err := os.WriteFile(st.path, data, 0644); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reads a session snapshot from disk and rebuilds the session
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var state State
	if err := toml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	s, err := Restore(state)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}
