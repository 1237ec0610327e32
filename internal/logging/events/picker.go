package events

import "github.com/atomicstack/tmux-ggg/internal/logging"

type PickerTracer struct{}

type PickerReason string

const (
	PickerReasonEscape    PickerReason = "escape"
	PickerReasonInterrupt PickerReason = "interrupt"
	PickerReasonEOF       PickerReason = "eof"
)

var Picker = PickerTracer{}

func (PickerTracer) Open(options int) {
	logging.Trace("picker.open", map[string]interface{}{"options": options})
}

func (PickerTracer) Cursor(cursor int) {
	logging.Trace("picker.cursor", map[string]interface{}{"cursor": cursor})
}

func (PickerTracer) Append(filter string) {
	logging.Trace("picker.filter.append", map[string]interface{}{"filter": filter})
}

func (PickerTracer) Backspace(filter string) {
	logging.Trace("picker.filter.backspace", map[string]interface{}{"filter": filter})
}

// Reject records a filter edit that would have left no options visible.
func (PickerTracer) Reject(filter, candidate string) {
	logging.Trace("picker.filter.reject", map[string]interface{}{"filter": filter, "candidate": candidate})
}

func (PickerTracer) Choose(name string) {
	logging.Trace("picker.choose", map[string]interface{}{"name": name})
}

func (PickerTracer) Cancel(reason PickerReason) {
	logging.Trace("picker.cancel", map[string]interface{}{"reason": string(reason)})
}
