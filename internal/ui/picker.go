package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/tmux-ggg/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Picker lets the user choose one of the candidate sessions.
type Picker struct {
	Width  int
	Height int
}

// Choose runs the picker on the alternate screen. Bubble Tea owns the
// terminal for the duration of the call and restores its previous mode on
// every exit path before Choose returns. ok is false when the user cancelled.
func (p Picker) Choose(ctx context.Context, candidates []session.Session) (chosen session.Session, ok bool, err error) {
	model := NewModel(candidates, p.Width, p.Height)
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tea.WithInputTTY())
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return session.Session{}, false, nil
	}
	if err != nil {
		return session.Session{}, false, fmt.Errorf("run picker: %w", err)
	}
	result, isModel := final.(*Model)
	if !isModel {
		return session.Session{}, false, fmt.Errorf("run picker: unexpected final model %T", final)
	}
	chosen, ok = result.Result()
	return chosen, ok, nil
}
