package ui

import (
	"github.com/atomicstack/tabdeck/internal/menu"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	maxTitleWidth   = 20
	tabGap          = 1
	plusLabel       = " + "
	reopenLabel     = " ↶ "
	closeGlyph      = "×"
	dirtyGlyph      = "●"
	pinGlyph        = "📌"
	minNewTabWidth  = 24
	maxNewTabRows   = 10
	chromeRows      = 3 // strip, separator, status
	stripRow        = 0
	menuBorderWidth = 4
)

// segment is one tab's slot in the strip.
type segment struct {
	info   tabs.Info
	x      int
	width  int
	closeX int
}

func (s segment) bounds() menu.Rect {
	return menu.Rect{X: s.x, Y: stripRow, W: s.width, H: 1}
}

// stripLayout positions the visible tabs and the strip buttons.
type stripLayout struct {
	segments []segment
	plus     menu.Rect
	reopen   menu.Rect
}

func tabTitle(info tabs.Info) string {
	return truncate.StringWithTail(info.Title, maxTitleWidth, "…")
}

// tabWidth returns the cell width of a tab segment:
// " [icon ][pin ]title[ ●][ ×] ".
func tabWidth(info tabs.Info) int {
	w := 2 + ansi.StringWidth(tabTitle(info))
	if info.Icon != "" {
		w += ansi.StringWidth(info.Icon) + 1
	}
	if info.Pinned {
		w += ansi.StringWidth(pinGlyph) + 1
	}
	if info.Dirty {
		w += 1 + ansi.StringWidth(dirtyGlyph)
	}
	if info.Closable {
		w += 1 + ansi.StringWidth(closeGlyph)
	}
	return w
}

// tabsWidth is the room left for tabs once the buttons are placed.
func (m *Model) tabsWidth() int {
	w, _ := m.size()
	w -= ansi.StringWidth(plusLabel)
	if m.store.HasClosed() {
		w -= ansi.StringWidth(reopenLabel)
	}
	if w < 0 {
		return 0
	}
	return w
}

func (m *Model) layoutStrip() stripLayout {
	w, _ := m.size()
	var l stripLayout
	plusW := ansi.StringWidth(plusLabel)
	l.plus = menu.Rect{X: w - plusW, Y: stripRow, W: plusW, H: 1}
	if m.store.HasClosed() {
		reopenW := ansi.StringWidth(reopenLabel)
		l.reopen = menu.Rect{X: l.plus.X - reopenW, Y: stripRow, W: reopenW, H: 1}
	}
	avail := m.tabsWidth()
	infos := m.store.Tabs()
	x := 0
	for i := m.stripOffset; i >= 0 && i < len(infos); i++ {
		width := tabWidth(infos[i])
		if x+width > avail {
			break
		}
		seg := segment{info: infos[i], x: x, width: width, closeX: -1}
		if infos[i].Closable {
			seg.closeX = x + width - 2
		}
		l.segments = append(l.segments, seg)
		x += width + tabGap
	}
	return l
}

// ensureSelectedVisible scrolls the strip so the selected tab is drawn.
func (m *Model) ensureSelectedVisible() {
	infos := m.store.Tabs()
	if len(infos) == 0 {
		m.stripOffset = 0
		return
	}
	if m.stripOffset >= len(infos) {
		m.stripOffset = len(infos) - 1
	}
	if m.stripOffset < 0 {
		m.stripOffset = 0
	}
	sel := -1
	for i, info := range infos {
		if info.Selected {
			sel = i
			break
		}
	}
	if sel < 0 {
		return
	}
	if sel < m.stripOffset {
		m.stripOffset = sel
	}
	avail := m.tabsWidth()
	span := func(from, to int) int {
		total := 0
		for i := from; i <= to; i++ {
			total += tabWidth(infos[i])
			if i > from {
				total += tabGap
			}
		}
		return total
	}
	for m.stripOffset < sel && span(m.stripOffset, sel) > avail {
		m.stripOffset++
	}
	for m.stripOffset > 0 && span(m.stripOffset-1, len(infos)-1) <= avail {
		m.stripOffset--
	}
}

// tabAnchor is where a keyboard-opened context menu hangs from.
func (m *Model) tabAnchor(id tabs.TabID) menu.Point {
	for _, seg := range m.layoutStrip().segments {
		if seg.info.ID == id {
			return menu.Point{X: seg.x, Y: stripRow}
		}
	}
	return menu.Point{X: 0, Y: stripRow}
}

func (m *Model) contentHeight() int {
	_, h := m.size()
	h -= chromeRows
	if m.showFooter {
		h--
	}
	if h < 0 {
		return 0
	}
	return h
}

func menuWidth(items []menu.Item) int {
	w := 0
	for _, item := range items {
		if iw := ansi.StringWidth(item.Display()); iw > w {
			w = iw
		}
	}
	return w + menuBorderWidth
}

func clampRect(r menu.Rect, width, height int) menu.Rect {
	if r.X+r.W > width {
		r.X = width - r.W
	}
	if r.Y+r.H > height {
		r.Y = height - r.H
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

// contextRect is drawn one row below the anchor.
func (m *Model) contextRect() menu.Rect {
	ctx := m.overlays.Context
	if !ctx.Visible || ctx.List == nil {
		return menu.Rect{}
	}
	w, h := m.size()
	r := menu.Rect{
		X: ctx.Anchor.X,
		Y: ctx.Anchor.Y + 1,
		W: menuWidth(ctx.List.Items),
		H: len(ctx.List.Items) + 2,
	}
	return clampRect(r, w, h)
}

func (m *Model) newTabVisibleRows() int {
	_, h := m.size()
	rows := h - 1 - 3
	if rows > maxNewTabRows {
		rows = maxNewTabRows
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// newTabRect hangs below the strip, right-aligned to the "+" button.
func (m *Model) newTabRect() menu.Rect {
	nt := m.overlays.NewTab
	if !nt.Visible || nt.List == nil {
		return menu.Rect{}
	}
	w, h := m.size()
	width := menuWidth(nt.List.Full)
	if width < minNewTabWidth {
		width = minNewTabWidth
	}
	rows := len(nt.List.Items)
	if rows < 1 {
		rows = 1
	}
	if visible := m.newTabVisibleRows(); rows > visible {
		rows = visible
	}
	plus := m.layoutStrip().plus
	r := menu.Rect{X: plus.X + plus.W - width, Y: stripRow + 1, W: width, H: rows + 3}
	return clampRect(r, w, h)
}

// contextItemAt maps a point inside the context menu to an item index.
func (m *Model) contextItemAt(p menu.Point) int {
	r := m.contextRect()
	row := p.Y - r.Y - 1
	if row < 0 || row >= len(m.overlays.Context.List.Items) {
		return -1
	}
	return row
}

// newTabItemAt maps a point inside the dropdown to an item index. The first
// inner row holds the filter.
func (m *Model) newTabItemAt(p menu.Point) int {
	r := m.newTabRect()
	list := m.overlays.NewTab.List
	row := p.Y - r.Y - 2
	if row < 0 || row >= r.H-3 {
		return -1
	}
	idx := list.ViewportOffset + row
	if idx >= len(list.Items) {
		return -1
	}
	return idx
}
