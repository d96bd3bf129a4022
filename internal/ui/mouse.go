package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/menu"
	"github.com/atomicstack/tabdeck/internal/ui/command"
	uistate "github.com/atomicstack/tabdeck/internal/ui/state"
)

func (m *Model) handleMouseClickMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseClickMsg).Mouse()
	if mouse.Button != tea.MouseLeft && mouse.Button != tea.MouseRight {
		return nil
	}
	m.clearStatus()
	p := menu.Point{X: mouse.X, Y: mouse.Y}
	left := mouse.Button == tea.MouseLeft
	button := mouse.Button.String()

	if m.overlays.Context.Visible && m.contextRect().Contains(p) {
		events.UI.Mouse(p.X, p.Y, button, contextMenuID)
		if !left {
			return nil
		}
		return m.clickItem(contextMenuID, m.overlays.Context.List, m.contextItemAt(p))
	}
	if m.overlays.NewTab.Visible && m.newTabRect().Contains(p) {
		events.UI.Mouse(p.X, p.Y, button, newTabMenuID)
		if !left {
			return nil
		}
		return m.clickItem(newTabMenuID, m.overlays.NewTab.List, m.newTabItemAt(p))
	}

	dismissed := m.overlays.PointerDown(p, m.contextRect(), m.newTabRect())
	if dismissed.Context {
		events.Menu.Dismiss(contextMenuID, "outside")
	}
	if dismissed.NewTab {
		events.Menu.Dismiss(newTabMenuID, "outside")
	}

	if p.Y != stripRow {
		events.UI.Mouse(p.X, p.Y, button, "content")
		return m.forwardToContent(msg)
	}
	layout := m.layoutStrip()
	switch {
	case layout.plus.Contains(p):
		events.UI.Mouse(p.X, p.Y, button, "new-tab-button")
		// a click on "+" while the dropdown is open only closes it
		if left && !dismissed.NewTab {
			m.toggleNewTabMenu()
		}
		return nil
	case layout.reopen.Contains(p):
		events.UI.Mouse(p.X, p.Y, button, "reopen-button")
		if left {
			m.execute(command.Request{Kind: command.Reopen})
		}
		return nil
	}
	for _, seg := range layout.segments {
		if !seg.bounds().Contains(p) {
			continue
		}
		events.UI.Mouse(p.X, p.Y, button, "tab")
		switch {
		case !left:
			m.openContextMenu(seg.info.ID, p)
		case seg.closeX >= 0 && p.X == seg.closeX:
			m.execute(command.Request{Kind: command.Close, Target: seg.info.ID})
		default:
			m.execute(command.Request{Kind: command.Select, Target: seg.info.ID})
		}
		return nil
	}
	events.UI.Mouse(p.X, p.Y, button, "strip")
	return nil
}

func (m *Model) clickItem(menuID string, list *uistate.Level, idx int) tea.Cmd {
	item, ok := list.At(idx)
	if !ok || item.Disabled {
		return nil
	}
	list.SetCursor(idx)
	return m.commit(menuID, item)
}

// handleMouseWheelMsg scrolls an open popup, cycles tabs over the strip and
// otherwise hands the wheel to the selected content.
func (m *Model) handleMouseWheelMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseWheelMsg).Mouse()
	var down bool
	switch mouse.Button {
	case tea.MouseWheelDown:
		down = true
	case tea.MouseWheelUp:
	default:
		return nil
	}
	if list := m.overlays.Active(); list != nil {
		if down {
			list.MoveCursorDown()
		} else {
			list.MoveCursorUp()
		}
		return nil
	}
	if mouse.Y != stripRow {
		return m.forwardToContent(msg)
	}
	if down {
		m.execute(command.Request{Kind: command.Next})
	} else {
		m.execute(command.Request{Kind: command.Prev})
	}
	return nil
}
