package events

import "github.com/atomicstack/onekey/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (AppTracer) Fallback(feature, reason string) {
	logging.Trace("app.fallback", map[string]interface{}{"feature": feature, "reason": reason})
}
