package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingNarrowsOptions(t *testing.T) {
	h := NewHarness(NewModel(sampleSessions(), 0, 0))
	h.Type("MM")
	sel := h.Model().selection
	if sel.Filter != "mm" {
		t.Fatalf("expected lowercased filter, got %q", sel.Filter)
	}
	if got := sel.Options(); len(got) != 1 || got[0] != "Gamma" {
		t.Fatalf("expected only Gamma, got %v", got)
	}
}

func TestRejectedRuneLeavesStateUntouched(t *testing.T) {
	h := NewHarness(NewModel(sampleSessions(), 0, 0))
	h.Press(tea.KeyDown)
	h.Type("z")
	sel := h.Model().selection
	if sel.Filter != "" {
		t.Fatalf("expected filter to stay empty, got %q", sel.Filter)
	}
	if sel.Cursor != 1 {
		t.Fatalf("expected cursor to stay at 1, got %d", sel.Cursor)
	}
}

func TestPastedRunesAreCheckedIndividually(t *testing.T) {
	h := NewHarness(NewModel(sampleSessions(), 0, 0))
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gxa")})
	if got := h.Model().selection.Filter; got != "ga" {
		t.Fatalf("expected rejected rune to be skipped, got %q", got)
	}
}

func TestAltRunesAreIgnored(t *testing.T) {
	h := NewHarness(NewModel(sampleSessions(), 0, 0))
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true})
	if got := h.Model().selection.Filter; got != "" {
		t.Fatalf("expected alt-modified runes to be ignored, got %q", got)
	}
}

func TestSpaceExtendsFilter(t *testing.T) {
	candidates := sampleSessions()
	candidates[0].Name = "My Project"
	h := NewHarness(NewModel(candidates, 0, 0))
	h.Type("y p")
	sel := h.Model().selection
	if sel.Filter != "y p" {
		t.Fatalf("expected filter with space, got %q", sel.Filter)
	}
	if got := sel.Options(); len(got) != 1 || got[0] != "My Project" {
		t.Fatalf("unexpected options %v", got)
	}
}

func TestBackspaceWidensFilter(t *testing.T) {
	h := NewHarness(NewModel(sampleSessions(), 0, 0))
	h.Type("mm")
	h.Press(tea.KeyBackspace)
	sel := h.Model().selection
	if sel.Filter != "m" {
		t.Fatalf("expected filter m, got %q", sel.Filter)
	}
	h.Press(tea.KeyBackspace)
	h.Press(tea.KeyBackspace)
	if sel.Filter != "" || len(sel.Options()) != 3 {
		t.Fatalf("expected full list after clearing filter, got %q %v", sel.Filter, sel.Options())
	}
}

func TestCursorKeysStayInBounds(t *testing.T) {
	h := NewHarness(NewModel(sampleSessions(), 0, 0))
	h.Press(tea.KeyUp)
	if got := h.Model().selection.Cursor; got != 0 {
		t.Fatalf("expected cursor 0, got %d", got)
	}
	for i := 0; i < 5; i++ {
		h.Press(tea.KeyDown)
	}
	if got := h.Model().selection.Cursor; got != 2 {
		t.Fatalf("expected cursor 2, got %d", got)
	}
}
