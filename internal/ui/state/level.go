package state

import "github.com/atomicstack/tabdeck/internal/menu"

// Level holds the state of one popup list: its items, cursor, filter and
// viewport.
type Level struct {
	ID             string
	Items          []menu.Item
	Full           []menu.Item
	Cursor         int
	ViewportOffset int

	query   Query
	restore int
}

// NewLevel constructs a Level with the cursor on the first enabled item.
func NewLevel(id string, items []menu.Item) *Level {
	l := &Level{ID: id, restore: -1}
	l.UpdateItems(items)
	l.Cursor = l.firstEnabled(0, 1)
	return l
}

// IndexOf returns the index of the item with the given id.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems replaces the item set and reapplies the filter.
func (l *Level) UpdateItems(items []menu.Item) {
	l.Full = CloneItems(items)
	l.refilter()
}

// Current returns the item under the cursor. Disabled items are reported
// with ok false.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	item := l.Items[l.Cursor]
	return item, !item.Disabled
}

// At returns the item at visible index i.
func (l *Level) At(i int) (menu.Item, bool) {
	if i < 0 || i >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[i], true
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
