// Package session turns registered root directories into launchable tmux
// session candidates.
package session

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Session is a named, launchable unit of work bound to one directory.
type Session struct {
	Name string
	Path string
}

// Normalize converts a directory name into a display session name.
//
// The name is split on underscores, each part is capitalized (first rune
// upper-cased, the rest lower-cased) and the parts are joined with single
// spaces. A lone part containing a hyphen is
// treated as already formatted and returned unchanged.
func Normalize(folder string) string {
	parts := strings.Split(folder, "_")
	if len(parts) == 1 && strings.Contains(folder, "-") {
		return folder
	}
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Names returns the session names in order.
func Names(sessions []Session) []string {
	names := make([]string, len(sessions))
	for i, s := range sessions {
		names[i] = s.Name
	}
	return names
}

// Exclude drops every candidate whose name is in active, preserving order.
func Exclude(candidates []Session, active []string) []Session {
	if len(active) == 0 {
		return append([]Session(nil), candidates...)
	}
	skip := make(map[string]struct{}, len(active))
	for _, name := range active {
		skip[name] = struct{}{}
	}
	out := make([]Session, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := skip[c.Name]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}
