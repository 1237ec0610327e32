package ui

import (
	"unicode"

	"github.com/atomicstack/tmux-ggg/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		return m.cancel(events.PickerReasonEscape)
	case key.Matches(keyMsg, m.keys.Interrupt):
		return m.cancel(events.PickerReasonInterrupt)
	case key.Matches(keyMsg, m.keys.EOF):
		return m.cancel(events.PickerReasonEOF)
	case key.Matches(keyMsg, m.keys.Choose):
		return m.choose()
	case key.Matches(keyMsg, m.keys.Up):
		if m.selection.MoveUp() {
			events.Picker.Cursor(m.selection.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selection.MoveDown() {
			events.Picker.Cursor(m.selection.Cursor)
		}
	case key.Matches(keyMsg, m.keys.Backspace):
		if m.selection.DeleteFilterRune() {
			events.Picker.Backspace(m.selection.Filter)
		}
	default:
		m.handleTextInput(keyMsg)
	}
	m.selection.EnsureCursorVisible(m.maxVisibleItems())
	return nil
}

// handleTextInput appends printable runes to the filter one at a time, so a
// pasted string goes through the same acceptance check as typed keys.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	var runes []rune
	switch msg.Type {
	case tea.KeySpace:
		runes = []rune{' '}
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		runes = msg.Runes
	default:
		return false
	}
	changed := false
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			continue
		}
		before := m.selection.Filter
		if !m.selection.AppendFilter(r) {
			events.Picker.Reject(before, before+string(unicode.ToLower(r)))
			continue
		}
		changed = true
		events.Picker.Append(m.selection.Filter)
	}
	return changed
}

func (m *Model) choose() tea.Cmd {
	name, ok := m.selection.Selected()
	if !ok {
		return nil
	}
	chosen, ok := m.sessions[name]
	if !ok {
		return nil
	}
	m.outcome = outcomeChosen
	m.chosen = chosen
	events.Picker.Choose(name)
	return tea.Quit
}

func (m *Model) cancel(reason events.PickerReason) tea.Cmd {
	m.outcome = outcomeCancelled
	events.Picker.Cancel(reason)
	return tea.Quit
}
