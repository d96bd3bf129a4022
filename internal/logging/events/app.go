package events

import "github.com/atomicstack/tabdeck/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Seed(typeName string, found bool) {
	logging.Trace("app.seed", map[string]interface{}{"type": typeName, "found": found})
}

func (AppTracer) Exit(openTabs, closedTabs int) {
	logging.Trace("app.exit", map[string]interface{}{"open": openTabs, "closed": closedTabs})
}
