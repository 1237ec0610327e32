package app

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRoots matches any NoRootsError via errors.Is.
var ErrNoRoots = errors.New("no roots are defined")

// NoRootsError reports an empty root store along with how to fill it.
type NoRootsError struct {
	App string
}

func (e *NoRootsError) Error() string {
	return fmt.Sprintf("%s, please run `%s add path/to/projects/dir`", ErrNoRoots, e.App)
}

func (e *NoRootsError) Is(target error) bool {
	return target == ErrNoRoots
}

// MissingRootsError lists registered roots that no longer exist.
type MissingRootsError struct {
	Paths []string
}

func (e *MissingRootsError) Error() string {
	var b strings.Builder
	b.WriteString("the following roots could not be found, aborting:")
	for _, p := range e.Paths {
		b.WriteString("\n- ")
		b.WriteString(p)
	}
	return b.String()
}

// PathNotFoundError is returned when registering a path that does not exist.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path `%s` does not exist", e.Path)
}

// AlreadyRegisteredError is returned when registering a known root without
// allowing duplicates.
type AlreadyRegisteredError struct {
	Path  string
	Store string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("path `%s` already in %s", e.Path, e.Store)
}
