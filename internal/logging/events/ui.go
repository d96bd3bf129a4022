package events

import "github.com/atomicstack/tabdeck/internal/logging"

type UITracer struct{}

type MenuTracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type RegistryTracer struct{}

var (
	UI       = UITracer{}
	Menu     = MenuTracer{}
	Filter   = FilterTracer{}
	Action   = ActionTracer{}
	Command  = CommandTracer{}
	Registry = RegistryTracer{}
)

func (UITracer) Key(key string, action string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "action": action})
}

func (UITracer) Mouse(x, y int, button, target string) {
	logging.Trace("ui.mouse", map[string]interface{}{"x": x, "y": y, "button": button, "target": target})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (MenuTracer) Open(menuID string, target uint64) {
	logging.Trace("menu.open", map[string]interface{}{"menu": menuID, "target": target})
}

func (MenuTracer) Dismiss(menuID, reason string) {
	logging.Trace("menu.dismiss", map[string]interface{}{"menu": menuID, "reason": reason})
}

func (MenuTracer) Commit(menuID, itemID string) {
	logging.Trace("menu.commit", map[string]interface{}{"menu": menuID, "item": itemID})
}

func (MenuTracer) Cursor(menuID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menuID, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Append(menuID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (FilterTracer) Backspace(menuID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (FilterTracer) WordBackspace(menuID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (CommandTracer) Queue(kind string, target uint64) {
	logging.Trace("command.queue", map[string]interface{}{"kind": kind, "target": target})
}

func (CommandTracer) NoOp(kind string, target uint64) {
	logging.Trace("command.noop", map[string]interface{}{"kind": kind, "target": target})
}

func (CommandTracer) Result(kind string, target uint64, info string) {
	logging.Trace("command.result", map[string]interface{}{"kind": kind, "target": target, "info": info})
}

func (RegistryTracer) Miss(name, suggestion string) {
	logging.Trace("registry.miss", map[string]interface{}{"name": name, "suggestion": suggestion})
}
