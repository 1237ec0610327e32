package events

import "github.com/atomicstack/tmux-ggg/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Candidates(total, active, offered int) {
	logging.Trace("app.candidates", map[string]interface{}{
		"total":   total,
		"active":  active,
		"offered": offered,
	})
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
