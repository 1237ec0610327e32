package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	filterLabel       = "Filter: "
	filterPlaceholder = "(no filter)"
	// header line plus the blank line under it
	headerRows = 2
)

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View implements tea.Model. The whole screen is rebuilt on every call.
func (m *Model) View() string {
	if m.Done() {
		return ""
	}
	lines := make([]styledLine, 0, len(m.selection.Full)+headerRows)
	lines = append(lines, m.headerLine(), styledLine{})

	maxVisible := m.maxVisibleItems()
	m.selection.EnsureCursorVisible(maxVisible)
	start, rows := m.selection.Visible(maxVisible)
	for i, name := range rows {
		style := styles.Item
		if start+i == m.selection.Cursor {
			style = styles.SelectedItem
		}
		lines = append(lines, styledLine{text: name, style: style})
	}
	return renderLines(applyWidth(lines, m.width))
}

// headerLine returns pre-rendered text; the label and the value carry
// different styles.
func (m *Model) headerLine() styledLine {
	value, style := m.selection.Filter, styles.Filter
	if value == "" {
		value, style = filterPlaceholder, styles.FilterPlaceholder
	}
	return styledLine{text: styles.Header.Render(filterLabel) + style.Render(value)}
}

// maxVisibleItems returns how many option rows fit below the header, or -1
// when the terminal height is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - headerRows
	if remain < 1 {
		return 1
	}
	return remain
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if lipgloss.Width(text) > width {
			text = truncate.StringWithTail(text, uint(width-1), "…")
		}
		result[i] = styledLine{text: text, style: line.style}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}
