// Package save persists quackshot meta progress: coins, upgrades, unlocked levels and codes.
package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"quackshot/game"
)

// FileStore keeps one snapshot in a YAML file
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path. The file is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the store writes
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file returns the default snapshot and an
// error wrapping game.ErrNotFound; a corrupt file returns the default snapshot and the parse error.
func (s *FileStore) Load() (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.DefaultSnapshot(), fmt.Errorf("load %s: %w", s.path, game.ErrNotFound)
	}
	if err != nil {
		return game.DefaultSnapshot(), fmt.Errorf("failed to read save: %w", err)
	}

	var snap game.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return game.DefaultSnapshot(), fmt.Errorf("failed to parse save %s: %w", s.path, err)
	}
	return snap.Normalize(), nil
}

// Save writes the snapshot through a temporary file so a crash never leaves half a save
func (s *FileStore) Save(snap game.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(snap.Normalize())
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create save dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace save: %w", err)
	}
	return nil
}

// Delete removes the save file. Deleting a missing file is not an error.
func (s *FileStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}
