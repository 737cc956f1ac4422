package events

import "github.com/atomicstack/uvlist/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

// Start records the startup context: flags, resolved config and terminal
// probes.
func (AppTracer) Start(payload interface{}) {
	logging.Trace("app.start", payload)
}
