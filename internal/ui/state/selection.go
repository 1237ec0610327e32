package state

import "strings"

// Selection is the filter-and-select state behind the session picker. Full
// holds every option in catalog order; the visible options are derived from
// Filter on demand and Cursor indexes into them.
type Selection struct {
	Full           []string
	Filter         string
	Cursor         int
	ViewportOffset int
}

// NewSelection builds a selection over options. Repeated options are kept
// once, at the position of their first occurrence.
func NewSelection(options []string) *Selection {
	seen := make(map[string]struct{}, len(options))
	full := make([]string, 0, len(options))
	for _, opt := range options {
		if _, ok := seen[opt]; ok {
			continue
		}
		seen[opt] = struct{}{}
		full = append(full, opt)
	}
	return &Selection{Full: full}
}

// Options returns the options matching the current filter.
func (s *Selection) Options() []string {
	return FilterOptions(s.Full, s.Filter)
}

// Selected returns the highlighted option.
func (s *Selection) Selected() (string, bool) {
	opts := s.Options()
	if s.Cursor < 0 || s.Cursor >= len(opts) {
		return "", false
	}
	return opts[s.Cursor], true
}

// MoveUp moves the cursor one row up. It reports whether the cursor moved.
func (s *Selection) MoveUp() bool {
	if s.Cursor <= 0 {
		return false
	}
	s.Cursor--
	return true
}

// MoveDown moves the cursor one row down. It reports whether the cursor moved.
func (s *Selection) MoveDown() bool {
	if s.Cursor >= len(s.Options())-1 {
		return false
	}
	s.Cursor++
	return true
}

// FilterOptions returns the options whose lowercase form contains the
// lowercase query, in their original order. An empty query matches all.
func FilterOptions(options []string, query string) []string {
	if query == "" {
		return options
	}
	lower := strings.ToLower(query)
	filtered := make([]string, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt), lower) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

func indexOf(options []string, target string) int {
	for i, opt := range options {
		if opt == target {
			return i
		}
	}
	return -1
}
