package state

import (
	"github.com/atomicstack/tabdeck/internal/menu"
	"github.com/atomicstack/tabdeck/internal/tabs"
)

// ContextMenu is the right-click menu of a single tab.
type ContextMenu struct {
	Visible bool
	Target  tabs.TabID
	Anchor  menu.Point
	List    *Level
}

// NewTabMenu is the "+" dropdown listing the registered tab types.
type NewTabMenu struct {
	Visible bool
	List    *Level
}

// Overlays holds the transient popup state. At most one popup is visible:
// opening either one closes the other.
type Overlays struct {
	Context ContextMenu
	NewTab  NewTabMenu
}

// Dismissed reports which popups a pointer event closed.
type Dismissed struct {
	Context bool
	NewTab  bool
}

// Any reports whether anything was closed.
func (d Dismissed) Any() bool {
	return d.Context || d.NewTab
}

// OpenContext shows the context menu for target at anchor.
func (o *Overlays) OpenContext(target tabs.TabID, anchor menu.Point, items []menu.Item) {
	o.CloseNewTab()
	o.Context = ContextMenu{
		Visible: true,
		Target:  target,
		Anchor:  anchor,
		List:    NewLevel("context", items),
	}
}

// OpenNewTab shows the new-tab dropdown with an empty filter.
func (o *Overlays) OpenNewTab(items []menu.Item) {
	o.CloseContext()
	o.NewTab = NewTabMenu{Visible: true, List: NewLevel("new-tab", items)}
}

// ToggleNewTab opens the dropdown when hidden and closes it otherwise. It
// returns the resulting visibility.
func (o *Overlays) ToggleNewTab(items []menu.Item) bool {
	if o.NewTab.Visible {
		o.CloseNewTab()
		return false
	}
	o.OpenNewTab(items)
	return true
}

// CloseContext hides the context menu.
func (o *Overlays) CloseContext() bool {
	if !o.Context.Visible {
		return false
	}
	o.Context = ContextMenu{}
	return true
}

// CloseNewTab hides the new-tab dropdown.
func (o *Overlays) CloseNewTab() bool {
	if !o.NewTab.Visible {
		return false
	}
	o.NewTab = NewTabMenu{}
	return true
}

// CloseAll hides every popup and reports what was closed.
func (o *Overlays) CloseAll() Dismissed {
	return Dismissed{Context: o.CloseContext(), NewTab: o.CloseNewTab()}
}

// AnyVisible reports whether a popup is showing.
func (o *Overlays) AnyVisible() bool {
	return o.Context.Visible || o.NewTab.Visible
}

// Active returns the list of the visible popup.
func (o *Overlays) Active() *Level {
	switch {
	case o.Context.Visible:
		return o.Context.List
	case o.NewTab.Visible:
		return o.NewTab.List
	}
	return nil
}

// PointerDown closes each visible popup whose bounds do not contain p.
func (o *Overlays) PointerDown(p menu.Point, contextBounds, newTabBounds menu.Rect) Dismissed {
	var d Dismissed
	if o.Context.Visible && !contextBounds.Contains(p) {
		d.Context = o.CloseContext()
	}
	if o.NewTab.Visible && !newTabBounds.Contains(p) {
		d.NewTab = o.CloseNewTab()
	}
	return d
}
