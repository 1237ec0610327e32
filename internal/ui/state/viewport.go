package state

// EnsureCursorVisible adjusts the viewport offset so the cursor row lies
// within a window of maxVisible rows. A non-positive maxVisible shows
// everything.
func (s *Selection) EnsureCursorVisible(maxVisible int) {
	total := len(s.Options())
	if total == 0 {
		s.Cursor = 0
		s.ViewportOffset = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= total {
		s.Cursor = total - 1
	}
	if maxVisible <= 0 {
		s.ViewportOffset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if upper := s.ViewportOffset + maxVisible - 1; s.Cursor > upper {
		s.ViewportOffset = s.Cursor - maxVisible + 1
	}
}

// Visible returns the window of options starting at the viewport offset.
func (s *Selection) Visible(maxVisible int) (start int, rows []string) {
	opts := s.Options()
	if maxVisible <= 0 || len(opts) <= maxVisible {
		return 0, opts
	}
	start = s.ViewportOffset
	if start+maxVisible > len(opts) {
		start = len(opts) - maxVisible
	}
	if start < 0 {
		start = 0
	}
	return start, opts[start : start+maxVisible]
}
