package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tmux-ggg/internal/logging/events"
	"github.com/atomicstack/tmux-ggg/internal/roots"
	"github.com/atomicstack/tmux-ggg/internal/session"
	"github.com/atomicstack/tmux-ggg/internal/tmux"
	"github.com/atomicstack/tmux-ggg/internal/ui"
)

// Config describes the resolved application options.
type Config struct {
	Name    string
	DataDir string
	Tmux    tmux.Options
}

// RootStore yields the registered root directories.
type RootStore interface {
	Load() ([]string, error)
}

// Multiplexer is the subset of the tmux client the launcher drives.
type Multiplexer interface {
	ListActive(ctx context.Context) tmux.Active
	Create(ctx context.Context, s session.Session) error
	Attach(ctx context.Context, s session.Session) error
}

// Picker asks the user to choose one of candidates. ok is false when the
// user cancelled.
type Picker interface {
	Choose(ctx context.Context, candidates []session.Session) (chosen session.Session, ok bool, err error)
}

// Launcher lists the sessions that can be started, lets the user pick one and
// hands the terminal over to it.
type Launcher struct {
	Name   string
	Roots  RootStore
	Tmux   Multiplexer
	Picker Picker
	Out    io.Writer
}

// New wires a launcher to the real root store, tmux client and picker.
func New(cfg Config) *Launcher {
	return &Launcher{
		Name:   cfg.Name,
		Roots:  roots.NewSet(cfg.DataDir),
		Tmux:   tmux.NewClient(cfg.Tmux),
		Picker: ui.Picker{},
		Out:    os.Stdout,
	}
}

// Run executes one launch. Informational outcomes such as an empty list or a
// cancelled picker return nil.
func (l *Launcher) Run(ctx context.Context) error {
	paths, err := l.Roots.Load()
	if err != nil {
		return fmt.Errorf("load roots: %w", err)
	}
	if missing := missingPaths(paths); len(missing) > 0 {
		events.Roots.Missing(missing)
		return &MissingRootsError{Paths: missing}
	}
	if len(paths) == 0 {
		return &NoRootsError{App: l.Name}
	}

	active := l.Tmux.ListActive(ctx)
	candidates, err := session.BuildCandidates(paths)
	if err != nil {
		return fmt.Errorf("build candidates: %w", err)
	}
	available := session.Exclude(candidates, active.Names)
	events.App.Candidates(len(candidates), len(active.Names), len(available))
	if len(available) == 0 {
		l.println("No available sessions")
		events.App.Exit("no-sessions")
		return nil
	}

	chosen, ok, err := l.Picker.Choose(ctx, available)
	if err != nil {
		return err
	}
	if !ok {
		l.println("No session chosen")
		events.App.Exit("cancelled")
		return nil
	}

	if err := l.Tmux.Create(ctx, chosen); err != nil {
		return fmt.Errorf("create session %q: %w", chosen.Name, err)
	}
	if err := l.Tmux.Attach(ctx, chosen); err != nil {
		return fmt.Errorf("attach session %q: %w", chosen.Name, err)
	}
	events.App.Exit("attached")
	return nil
}

func (l *Launcher) println(msg string) {
	if l.Out == nil {
		return
	}
	fmt.Fprintln(l.Out, msg)
}

func missingPaths(paths []string) []string {
	var missing []string
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			missing = append(missing, p)
		}
	}
	return missing
}
