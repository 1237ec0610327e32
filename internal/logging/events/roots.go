package events

import "github.com/atomicstack/tmux-ggg/internal/logging"

type RootsTracer struct{}

var Roots = RootsTracer{}

func (RootsTracer) Load(path string, roots []string) {
	logging.Trace("roots.load", map[string]interface{}{"file": path, "roots": roots})
}

func (RootsTracer) Missing(roots []string) {
	logging.Trace("roots.missing", map[string]interface{}{"roots": roots})
}

func (RootsTracer) Add(path string) {
	logging.Trace("roots.add", map[string]interface{}{"root": path})
}

func (RootsTracer) Duplicate(path string) {
	logging.Trace("roots.duplicate", map[string]interface{}{"root": path})
}
