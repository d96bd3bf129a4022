package ui

import (
	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/menu"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/ui/command"
	tea "charm.land/bubbletea/v2"
)

const (
	contextMenuID = "context"
	newTabMenuID  = "new-tab"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyPressMsg)
	m.clearStatus()
	action, bound := m.keys.Match(keyMsg)
	events.UI.Key(keyMsg.String(), string(action))
	if m.overlays.AnyVisible() {
		return m.handleOverlayKey(keyMsg, action, bound)
	}
	if bound {
		return m.runAction(action)
	}
	return m.forwardToContent(keyMsg)
}

func (m *Model) runAction(action Action) tea.Cmd {
	selected, hasSel := m.store.Selected()
	switch action {
	case ActionQuit:
		m.quitting = true
		return tea.Quit
	case ActionNew:
		m.toggleNewTabMenu()
	case ActionReopen:
		m.execute(command.Request{Kind: command.Reopen})
	case ActionNext:
		m.execute(command.Request{Kind: command.Next})
	case ActionPrev:
		m.execute(command.Request{Kind: command.Prev})
	case ActionClose:
		if hasSel {
			m.execute(command.Request{Kind: command.Close, Target: selected})
		}
	case ActionPin:
		if hasSel {
			m.execute(command.Request{Kind: command.Pin, Target: selected})
		}
	case ActionMoveLeft:
		if hasSel {
			m.execute(command.Request{Kind: command.MoveLeft, Target: selected})
		}
	case ActionMoveRight:
		if hasSel {
			m.execute(command.Request{Kind: command.MoveRight, Target: selected})
		}
	case ActionContextMenu:
		if hasSel {
			m.openContextMenu(selected, m.tabAnchor(selected))
		}
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyPressMsg, action Action, bound bool) tea.Cmd {
	if bound {
		switch action {
		case ActionQuit:
			return m.runAction(action)
		case ActionNew:
			m.toggleNewTabMenu()
			return nil
		}
	}
	list := m.overlays.Active()
	menuID := list.ID
	switch msg.String() {
	case "esc":
		m.overlays.CloseAll()
		events.Menu.Dismiss(menuID, "escape")
		return nil
	case "up", "ctrl+p":
		if list.MoveCursorUp() {
			events.Menu.Cursor(menuID, list.Cursor)
		}
		return nil
	case "down", "ctrl+n":
		if list.MoveCursorDown() {
			events.Menu.Cursor(menuID, list.Cursor)
		}
		return nil
	case "home":
		list.MoveCursorHome()
		return nil
	case "end":
		list.MoveCursorEnd()
		return nil
	case "enter":
		item, ok := list.Current()
		if !ok {
			return nil
		}
		return m.commit(menuID, item)
	}
	if m.overlays.NewTab.Visible {
		m.handleFilterKey(msg)
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyPressMsg) {
	list := m.overlays.NewTab.List
	switch msg.String() {
	case "backspace":
		if list.BackspaceFilter() {
			events.Filter.Backspace(list.ID, list.FilterText())
		}
	case "ctrl+w":
		if list.DeleteFilterWord() {
			events.Filter.WordBackspace(list.ID, list.FilterText())
		}
	case "ctrl+u":
		list.ClearFilter()
	case "left":
		list.CaretLeft()
	case "right":
		list.CaretRight()
	default:
		if msg.Text == "" || msg.Mod.Contains(tea.ModAlt) || msg.Mod.Contains(tea.ModCtrl) {
			return
		}
		if list.TypeFilter(msg.Text) {
			events.Filter.Append(list.ID, list.FilterText())
		}
	}
}

// commit applies a popup item and closes the popup.
func (m *Model) commit(menuID string, item menu.Item) tea.Cmd {
	events.Menu.Commit(menuID, item.ID)
	target := m.overlays.Context.Target
	m.overlays.CloseAll()
	if name, ok := menu.TypeName(item.ID); ok {
		m.execute(command.Request{Kind: command.Add, TypeName: name})
		return nil
	}
	switch item.ID {
	case menu.ActionClose:
		m.execute(command.Request{Kind: command.Close, Target: target})
	case menu.ActionCloseOthers:
		m.execute(command.Request{Kind: command.CloseOthers, Target: target})
	case menu.ActionPin:
		m.execute(command.Request{Kind: command.Pin, Target: target})
	case menu.ActionCopyTitle:
		info, ok := m.store.Info(target)
		if !ok {
			return nil
		}
		return m.copyCmd(info.Title)
	}
	return nil
}

func (m *Model) copyCmd(text string) tea.Cmd {
	write := m.clipboard
	return func() tea.Msg {
		return clipboardResultMsg{text: text, err: write(text)}
	}
}

func (m *Model) toggleNewTabMenu() {
	if m.overlays.ToggleNewTab(menu.NewTabItems(m.registry.List())) {
		events.Menu.Open(newTabMenuID, 0)
		return
	}
	events.Menu.Dismiss(newTabMenuID, "toggle")
}

func (m *Model) openContextMenu(id tabs.TabID, anchor menu.Point) {
	info, ok := m.store.Info(id)
	if !ok {
		return
	}
	m.overlays.OpenContext(id, anchor, menu.ContextItems(info, m.store.Len()))
	events.Menu.Open(contextMenuID, uint64(id))
}
