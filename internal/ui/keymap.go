package ui

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Action names a global tab shortcut. The names double as the keys of the
// `keys` section in the config file.
type Action string

const (
	ActionNext        Action = "next_tab"
	ActionPrev        Action = "prev_tab"
	ActionClose       Action = "close_tab"
	ActionNew         Action = "new_tab"
	ActionReopen      Action = "reopen_tab"
	ActionPin         Action = "toggle_pin"
	ActionMoveLeft    Action = "move_left"
	ActionMoveRight   Action = "move_right"
	ActionContextMenu Action = "context_menu"
	ActionQuit        Action = "quit"
)

// actionOrder fixes match priority and footer order.
var actionOrder = []Action{
	ActionNew,
	ActionClose,
	ActionReopen,
	ActionNext,
	ActionPrev,
	ActionPin,
	ActionMoveLeft,
	ActionMoveRight,
	ActionContextMenu,
	ActionQuit,
}

var actionHelp = map[Action]string{
	ActionNext:        "next",
	ActionPrev:        "prev",
	ActionClose:       "close",
	ActionNew:         "new",
	ActionReopen:      "reopen",
	ActionPin:         "pin",
	ActionMoveLeft:    "move left",
	ActionMoveRight:   "move right",
	ActionContextMenu: "menu",
	ActionQuit:        "quit",
}

var defaultKeys = map[Action][]string{
	ActionNext:        {"ctrl+right", "alt+l"},
	ActionPrev:        {"ctrl+left", "alt+h"},
	ActionClose:       {"ctrl+w"},
	ActionNew:         {"ctrl+t"},
	ActionReopen:      {"alt+t"},
	ActionPin:         {"alt+p"},
	ActionMoveLeft:    {"ctrl+shift+left"},
	ActionMoveRight:   {"ctrl+shift+right"},
	ActionContextMenu: {"alt+m"},
	ActionQuit:        {"ctrl+c", "ctrl+q"},
}

// KeyMap binds actions to keys. The zero value behaves like DefaultKeyMap.
type KeyMap struct {
	bindings map[Action]key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	k := KeyMap{bindings: make(map[Action]key.Binding, len(defaultKeys))}
	for action, keys := range defaultKeys {
		k.bindings[action] = newBinding(action, keys)
	}
	return k
}

func newBinding(action Action, keys []string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], actionHelp[action]))
}

// KnownAction reports whether name is a bindable action.
func KnownAction(name string) bool {
	_, ok := actionHelp[Action(name)]
	return ok
}

// ActionNames lists every bindable action, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(actionHelp))
	for a := range actionHelp {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return names
}

// WithOverrides returns a copy of k with the given actions rebound. An empty
// key list unbinds the action.
func (k KeyMap) WithOverrides(overrides map[string][]string) (KeyMap, error) {
	out := KeyMap{bindings: make(map[Action]key.Binding, len(actionOrder))}
	for a, b := range k.resolved().bindings {
		out.bindings[a] = b
	}
	for name, keys := range overrides {
		if !KnownAction(name) {
			return k, fmt.Errorf("unknown key action %q", name)
		}
		cleaned := make([]string, 0, len(keys))
		for _, s := range keys {
			if s = strings.TrimSpace(s); s != "" {
				cleaned = append(cleaned, s)
			}
		}
		out.bindings[Action(name)] = newBinding(Action(name), cleaned)
	}
	return out, nil
}

func (k KeyMap) resolved() KeyMap {
	if k.bindings == nil {
		return DefaultKeyMap()
	}
	return k
}

// Match returns the action bound to msg.
func (k KeyMap) Match(msg tea.KeyMsg) (Action, bool) {
	r := k.resolved()
	for _, a := range actionOrder {
		if b, ok := r.bindings[a]; ok && key.Matches(msg, b) {
			return a, true
		}
	}
	return "", false
}

// Keys returns the keys bound to a.
func (k KeyMap) Keys(a Action) []string {
	return k.resolved().bindings[a].Keys()
}

// HelpLine renders the enabled bindings for the footer.
func (k KeyMap) HelpLine() string {
	r := k.resolved()
	parts := make([]string, 0, len(actionOrder))
	for _, a := range actionOrder {
		b := r.bindings[a]
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
