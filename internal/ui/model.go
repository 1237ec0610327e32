package ui

import (
	"reflect"

	"github.com/atomicstack/tmux-ggg/internal/logging/events"
	"github.com/atomicstack/tmux-ggg/internal/session"
	"github.com/atomicstack/tmux-ggg/internal/theme"
	uistate "github.com/atomicstack/tmux-ggg/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type outcome int

const (
	outcomeActive outcome = iota
	outcomeChosen
	outcomeCancelled
)

// Model implements the Bubble Tea model for the session picker.
type Model struct {
	selection *uistate.Selection
	sessions  map[string]session.Session
	keys      keyMap

	outcome outcome
	chosen  session.Session

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a picker over candidates. When two candidates share a
// name the later one is the one launched. Non-zero width or height pin the
// viewport instead of following the terminal.
func NewModel(candidates []session.Session, width, height int) *Model {
	sessions := make(map[string]session.Session, len(candidates))
	for _, c := range candidates {
		sessions[c.Name] = c
	}
	m := &Model{
		selection: uistate.NewSelection(session.Names(candidates)),
		sessions:  sessions,
		keys:      defaultKeyMap(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	events.Picker.Open(len(m.selection.Full))
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.outcome != outcomeActive {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Result reports the chosen session. ok is false when the picker was
// cancelled or has not finished.
func (m *Model) Result() (chosen session.Session, ok bool) {
	if m.outcome != outcomeChosen {
		return session.Session{}, false
	}
	return m.chosen, true
}

// Done reports whether the picker reached a terminal outcome.
func (m *Model) Done() bool {
	return m.outcome != outcomeActive
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.selection.EnsureCursorVisible(m.maxVisibleItems())
	return nil
}
