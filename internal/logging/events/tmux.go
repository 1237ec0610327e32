package events

import "github.com/atomicstack/tmux-ggg/internal/logging"

type TmuxTracer struct{}

var Tmux = TmuxTracer{}

func (TmuxTracer) List(names []string, attached string) {
	logging.Trace("tmux.list", map[string]interface{}{"names": names, "attached": attached})
}

func (TmuxTracer) ListDegraded(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tmux.list.degraded", payload)
}

func (TmuxTracer) Create(name, path string, args []string) {
	logging.Trace("tmux.create", map[string]interface{}{"name": name, "path": path, "args": args})
}

func (TmuxTracer) Attach(name string) {
	logging.Trace("tmux.attach", map[string]interface{}{"name": name})
}
