package state

import (
	"unicode"
	"unicode/utf8"
)

// SetFilter replaces the filter with candidate, keeping the highlighted
// option under the cursor when it is still visible and falling back to the
// first row otherwise. An edit that would leave no options visible is
// rejected and leaves the selection untouched; SetFilter then returns false.
func (s *Selection) SetFilter(candidate string) bool {
	prev, hadPrev := s.Selected()
	next := FilterOptions(s.Full, candidate)
	if len(next) == 0 {
		return false
	}
	s.Filter = candidate
	s.Cursor = 0
	if hadPrev {
		if idx := indexOf(next, prev); idx >= 0 {
			s.Cursor = idx
		}
	}
	return true
}

// AppendFilter adds the lowercase form of r to the filter.
func (s *Selection) AppendFilter(r rune) bool {
	return s.SetFilter(s.Filter + string(unicode.ToLower(r)))
}

// DeleteFilterRune drops the last rune of the filter. It returns false when
// the filter is already empty.
func (s *Selection) DeleteFilterRune() bool {
	if s.Filter == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.Filter)
	return s.SetFilter(s.Filter[:len(s.Filter)-size])
}
