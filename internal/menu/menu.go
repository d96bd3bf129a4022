package menu

import (
	"strings"

	"github.com/atomicstack/tabdeck/internal/tabs"
)

// Item represents a selectable menu entry.
type Item struct {
	ID       string
	Label    string
	Icon     string
	Disabled bool
}

// Context menu action identifiers.
const (
	ActionClose       = "tab:close"
	ActionCloseOthers = "tab:close-others"
	ActionPin         = "tab:pin"
	ActionCopyTitle   = "tab:copy-title"
)

const newTabPrefix = "new:"

// NewTabID returns the item id for creating a tab of the named type.
func NewTabID(typeName string) string {
	return newTabPrefix + typeName
}

// TypeName extracts the tab type from a new-tab item id.
func TypeName(id string) (string, bool) {
	if !strings.HasPrefix(id, newTabPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(id, newTabPrefix)
	return name, name != ""
}

// ContextItems builds the right-click menu for a tab given how many tabs are
// open.
func ContextItems(info tabs.Info, openCount int) []Item {
	pin := "Pin Tab"
	if info.Pinned {
		pin = "Unpin Tab"
	}
	return []Item{
		{ID: ActionClose, Label: "Close Tab", Disabled: !info.Closable},
		{ID: ActionCloseOthers, Label: "Close Other Tabs", Disabled: openCount <= 1},
		{ID: ActionPin, Label: pin},
		{ID: ActionCopyTitle, Label: "Copy Title"},
	}
}

// NewTabItems lists one entry per registered tab type, in registration order.
func NewTabItems(descs []tabs.Descriptor) []Item {
	items := make([]Item, 0, len(descs))
	for _, d := range descs {
		items = append(items, Item{ID: NewTabID(d.Name), Label: d.Name, Icon: d.Icon})
	}
	return items
}

// Display joins icon and label for rendering.
func (i Item) Display() string {
	if i.Icon == "" {
		return i.Label
	}
	return i.Icon + " " + i.Label
}
