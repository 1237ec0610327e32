package roots

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/tmux-ggg/internal/session"
)

const (
	WorkspacesFileName = "workspaces.json"
	ProjectsFileName   = "projects.json"
)

// Kind tells how a registered directory contributes roots.
type Kind string

const (
	// KindWorkspace directories hold roots: each eligible subdirectory is one.
	KindWorkspace Kind = "workspace"
	// KindProject directories are roots themselves.
	KindProject Kind = "project"
)

// Set is the pair of stores kept in the data directory.
type Set struct {
	Workspaces *Store
	Projects   *Store
}

// NewSet returns the stores under dataDir.
func NewSet(dataDir string) *Set {
	return &Set{
		Workspaces: NewStore(filepath.Join(dataDir, WorkspacesFileName)),
		Projects:   NewStore(filepath.Join(dataDir, ProjectsFileName)),
	}
}

// Store returns the store holding directories of kind.
func (s *Set) Store(kind Kind) *Store {
	if kind == KindWorkspace {
		return s.Workspaces
	}
	return s.Projects
}

// Load resolves the roots: the subdirectories of every workspace first, then
// the registered projects. A workspace that no longer exists is returned as a
// root itself so the caller reports it as missing.
func (s *Set) Load() ([]string, error) {
	workspaces, err := s.Workspaces.Load()
	if err != nil {
		return nil, err
	}
	var roots []string
	for _, ws := range workspaces {
		dirs, err := session.Subdirectories(ws)
		if errors.Is(err, os.ErrNotExist) {
			roots = append(roots, ws)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("list workspace %s: %w", ws, err)
		}
		roots = append(roots, dirs...)
	}
	projects, err := s.Projects.Load()
	if err != nil {
		return nil, err
	}
	return append(roots, projects...), nil
}
