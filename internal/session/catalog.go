package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuildCandidates lists the direct subdirectories of every root, in root
// order and then by name, and maps each through Normalize. Entries starting
// with "_" or "." and entries containing a space are skipped.
func BuildCandidates(roots []string) ([]Session, error) {
	var out []Session
	for _, root := range roots {
		dirs, err := Subdirectories(root)
		if err != nil {
			return nil, fmt.Errorf("list root %s: %w", root, err)
		}
		for _, path := range dirs {
			out = append(out, Session{Name: Normalize(filepath.Base(path)), Path: path})
		}
	}
	return out, nil
}

// Subdirectories returns the eligible direct subdirectories of dir, sorted by
// name. Symlinks to directories count as directories.
func Subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	// os.ReadDir already sorts by filename.
	for _, entry := range entries {
		name := entry.Name()
		if !eligible(name) {
			continue
		}
		path := filepath.Join(dir, name)
		if isDir(entry, path) {
			out = append(out, path)
		}
	}
	return out, nil
}

func eligible(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
		return false
	}
	return !strings.Contains(name, " ")
}

func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
