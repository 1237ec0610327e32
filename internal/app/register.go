package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atomicstack/tmux-ggg/internal/roots"
)

// Register adds path to the root store. A path that is already registered is
// an error unless existOK is set, in which case a notice is written to out.
func Register(store *roots.Store, path string, existOK bool, out io.Writer) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &PathNotFoundError{Path: abs}
		}
		return fmt.Errorf("stat %s: %w", abs, err)
	}
	added, err := store.Add(abs)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(out, "Added %s\n", abs)
		return nil
	}
	if !existOK {
		return &AlreadyRegisteredError{Path: abs, Store: store.Path}
	}
	fmt.Fprintf(out, "Path already in %s\n", store.Path)
	return nil
}

// RootStatus describes one registered directory and whether it still exists.
type RootStatus struct {
	Kind    roots.Kind
	Path    string
	Missing bool
}

// ListRoots reports the registered workspaces and then the registered
// projects, each in insertion order.
func ListRoots(set *roots.Set) ([]RootStatus, error) {
	var statuses []RootStatus
	for _, kind := range []roots.Kind{roots.KindWorkspace, roots.KindProject} {
		paths, err := set.Store(kind).Load()
		if err != nil {
			return nil, fmt.Errorf("load %ss: %w", kind, err)
		}
		missing := make(map[string]bool)
		for _, p := range missingPaths(paths) {
			missing[p] = true
		}
		for _, p := range paths {
			statuses = append(statuses, RootStatus{Kind: kind, Path: p, Missing: missing[p]})
		}
	}
	return statuses, nil
}
