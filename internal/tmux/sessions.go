package tmux

import "strings"

// Active describes the sessions a tmux server currently knows about.
type Active struct {
	Names []string
	// Attached is the attached session, or "" when none is attached or the
	// listing failed.
	Attached string
}

// Contains reports whether name is one of the active sessions.
func (a Active) Contains(name string) bool {
	for _, n := range a.Names {
		if n == name {
			return true
		}
	}
	return false
}

// ParseSessionList parses the default `tmux list-sessions` output, one line
// per session, e.g. "work: 2 windows (created ...) (attached)". A line marks
// the attached session when it starts with "*" or mentions "attached"; the
// last such line wins. Blank lines are ignored.
func ParseSessionList(lines []string) Active {
	active := Active{Names: []string{}}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name := strings.TrimSpace(strings.Trim(line, "*"))
		if idx := strings.IndexByte(name, ':'); idx >= 0 {
			name = strings.TrimSpace(name[:idx])
		}
		active.Names = append(active.Names, name)
		if strings.HasPrefix(line, "*") || strings.Contains(line, "attached") {
			active.Attached = name
		}
	}
	return active
}

func splitLines(output []byte) []string {
	text := strings.TrimSpace(string(output))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
