package events

import "github.com/atomicstack/tabdeck/internal/logging"

type TabTracer struct{}

var Tab = TabTracer{}

func (TabTracer) Add(id uint64, typeName string) {
	logging.Trace("tab.add", map[string]interface{}{"id": id, "type": typeName})
}

func (TabTracer) Close(id uint64, closed bool) {
	logging.Trace("tab.close", map[string]interface{}{"id": id, "closed": closed})
}

func (TabTracer) CloseOthers(keep uint64, removed []uint64) {
	logging.Trace("tab.close-others", map[string]interface{}{"keep": keep, "removed": removed})
}

func (TabTracer) Reopen(id uint64, found bool) {
	logging.Trace("tab.reopen", map[string]interface{}{"id": id, "found": found})
}

func (TabTracer) Pin(id uint64, pinned bool) {
	logging.Trace("tab.pin", map[string]interface{}{"id": id, "pinned": pinned})
}

func (TabTracer) Select(id uint64) {
	logging.Trace("tab.select", map[string]interface{}{"id": id})
}

func (TabTracer) Move(id uint64, direction string, moved bool) {
	logging.Trace("tab.move", map[string]interface{}{"id": id, "direction": direction, "moved": moved})
}

func (TabTracer) Evict(ids []uint64) {
	if len(ids) == 0 {
		return
	}
	logging.Trace("tab.evict", map[string]interface{}{"ids": ids})
}
