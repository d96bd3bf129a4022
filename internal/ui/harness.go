package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.processCmd(c)
			}
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Keys sends each key in turn. Keys use tea.KeyPressMsg.String() spelling,
// e.g. "ctrl+t", "alt+p", "enter" or plain text.
func (h *Harness) Keys(keys ...string) {
	for _, k := range keys {
		h.Send(KeyMsg(k))
	}
}

// Type sends text one rune at a time.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// Click sends a left-button press at (x, y).
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

// RightClick sends a right-button press at (x, y).
func (h *Harness) RightClick(x, y int) {
	h.Send(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight})
}

// Wheel sends a wheel notch at (x, y), downwards when down is set.
func (h *Harness) Wheel(x, y int, down bool) {
	button := tea.MouseWheelUp
	if down {
		button = tea.MouseWheelDown
	}
	h.Send(tea.MouseWheelMsg{X: x, Y: y, Button: button})
}

// Resize sends a window size change.
func (h *Harness) Resize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// View returns the current view content.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View().Content
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]rune{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"tab":       tea.KeyTab,
	"space":     tea.KeySpace,
}

var modPrefixes = []struct {
	prefix string
	mod    tea.KeyMod
}{
	{"ctrl+", tea.ModCtrl},
	{"alt+", tea.ModAlt},
	{"shift+", tea.ModShift},
}

// KeyMsg builds the key press whose String() is s.
func KeyMsg(s string) tea.KeyPressMsg {
	var mod tea.KeyMod
	for _, p := range modPrefixes {
		if rest, ok := strings.CutPrefix(s, p.prefix); ok && rest != "" {
			mod |= p.mod
			s = rest
		}
	}
	if code, ok := namedKeys[s]; ok {
		msg := tea.KeyPressMsg{Code: code, Mod: mod}
		if code == tea.KeySpace && mod == 0 {
			msg.Text = " "
		}
		return msg
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return tea.KeyPressMsg{Code: tea.KeyExtended, Text: s, Mod: mod}
	}
	msg := tea.KeyPressMsg{Code: runes[0], Mod: mod}
	if !mod.Contains(tea.ModCtrl) && !mod.Contains(tea.ModAlt) {
		msg.Text = s
	}
	return msg
}
