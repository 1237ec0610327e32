// Package roots persists the ordered list of registered root directories.
package roots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/tmux-ggg/internal/logging/events"
)

// Store is a JSON array of paths in a single file. Entries are only ever
// appended, and appending a path that is already present is a no-op.
type Store struct {
	Path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns the registered roots in insertion order. A missing file is an
// empty store.
func (s *Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read roots %s: %w", s.Path, err)
	}
	var roots []string
	if err := json.Unmarshal(data, &roots); err != nil {
		return nil, fmt.Errorf("decode roots %s: %w", s.Path, err)
	}
	if roots == nil {
		roots = []string{}
	}
	events.Roots.Load(s.Path, roots)
	return roots, nil
}

// Add appends path unless it is already registered. It reports whether the
// store changed.
func (s *Store) Add(path string) (bool, error) {
	roots, err := s.Load()
	if err != nil {
		return false, err
	}
	for _, existing := range roots {
		if existing == path {
			events.Roots.Duplicate(path)
			return false, nil
		}
	}
	if err := s.write(append(roots, path)); err != nil {
		return false, err
	}
	events.Roots.Add(path)
	return true, nil
}

func (s *Store) write(roots []string) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", dir, err)
	}
	data, err := json.Marshal(roots)
	if err != nil {
		return fmt.Errorf("encode roots: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("write roots: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write roots: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write roots: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write roots: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace roots %s: %w", s.Path, err)
	}
	return nil
}
