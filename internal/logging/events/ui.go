package events

import "github.com/atomicstack/onekey/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Open(preset string, width, height int) {
	logging.Trace("ui.open", map[string]interface{}{"preset": preset, "width": width, "height": height})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Choose(key string) {
	logging.Trace("ui.choose", map[string]interface{}{"key": key})
}

func (UITracer) Abort() {
	logging.Trace("ui.abort", nil)
}

func (FilterTracer) Changed(filter string, matches int) {
	logging.Trace("filter.change", map[string]interface{}{"filter": filter, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
