package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atomicstack/tabdeck/internal/menu"
	uistate "github.com/atomicstack/tabdeck/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

const (
	emptyTitle      = "No Tabs Open"
	emptyBody       = "You don't have any tabs open. Create a new one to get started!"
	reopenHint      = "Reopen Closed Tab"
	newTabHint      = "New Tab"
	filterHint      = "type to filter"
	noMatches       = "no matches"
	newTabMenuTitle = " New Tab "
)

// View implements tea.Model.
// View renders the frame together with the terminal modes it needs.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = m.altScreen
	if m.mouse {
		v.MouseMode = tea.MouseModeCellMotion
	}
	return v
}

func (m *Model) render() string {
	w, h := m.size()
	layout := m.layoutStrip()
	lines := make([]string, 0, h)
	lines = append(lines, m.renderStrip(layout, w))
	lines = append(lines, styles.Separator.Render(strings.Repeat("─", w)))
	lines = append(lines, m.renderBody(w, m.contentHeight())...)
	lines = append(lines, m.renderStatus(w))
	if m.showFooter {
		lines = append(lines, padRight(styles.Footer.Render(ansi.Truncate(m.keys.HelpLine(), w, "…")), w))
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	view := strings.Join(lines, "\n")
	if r := m.contextRect(); m.overlays.Context.Visible && !r.Empty() {
		view = overlayAt(view, m.renderContextMenu(r), r.X, r.Y, w, h)
	}
	if r := m.newTabRect(); m.overlays.NewTab.Visible && !r.Empty() {
		view = overlayAt(view, m.renderNewTabMenu(r), r.X, r.Y, w, h)
	}
	return view
}

func (m *Model) renderStrip(layout stripLayout, width int) string {
	var b strings.Builder
	x := 0
	for _, seg := range layout.segments {
		if seg.x > x {
			b.WriteString(styles.Strip.Render(strings.Repeat(" ", seg.x-x)))
		}
		b.WriteString(renderSegment(seg))
		x = seg.x + seg.width
	}
	buttons := layout.plus.X
	if !layout.reopen.Empty() {
		buttons = layout.reopen.X
	}
	if buttons > x {
		b.WriteString(styles.Strip.Render(strings.Repeat(" ", buttons-x)))
	}
	if !layout.reopen.Empty() {
		b.WriteString(styles.Button.Render(reopenLabel))
	}
	b.WriteString(styles.Button.Render(plusLabel))
	return ansi.Truncate(b.String(), width, "")
}

func renderSegment(seg segment) string {
	info := seg.info
	base := *styles.Tab
	switch {
	case info.Selected:
		base = *styles.SelectedTab
	case info.Preview:
		base = *styles.PreviewTab
	}
	var b strings.Builder
	b.WriteString(" ")
	if info.Icon != "" {
		b.WriteString(info.Icon + " ")
	}
	if info.Pinned {
		b.WriteString(pinGlyph + " ")
	}
	b.WriteString(tabTitle(info))
	out := base.Render(b.String())
	if info.Dirty {
		out += base.Render(" ") + styles.DirtyMarker.Inherit(base).Render(dirtyGlyph)
	}
	if info.Closable {
		out += base.Render(" ") + styles.CloseGlyph.Inherit(base).Render(closeGlyph)
	}
	return out + base.Render(" ")
}

func (m *Model) renderBody(width, height int) []string {
	if height <= 0 {
		return nil
	}
	var body string
	if rendered, ok := m.store.Render(); ok {
		body = styles.Content.Render(rendered)
	} else {
		body = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.emptyState())
	}
	raw := strings.Split(body, "\n")
	lines := make([]string, height)
	for i := range lines {
		if i < len(raw) {
			lines[i] = padRight(ansi.Truncate(raw[i], width, ""), width)
		} else {
			lines[i] = strings.Repeat(" ", width)
		}
	}
	return lines
}

func (m *Model) emptyState() string {
	rows := []string{
		styles.EmptyTitle.Render(emptyTitle),
		"",
		styles.EmptyBody.Render(emptyBody),
		"",
		styles.EmptyBody.Render(hintLine(m.keys.Keys(ActionNew), newTabHint)),
	}
	if m.store.HasClosed() {
		rows = append(rows, styles.EmptyBody.Render(hintLine(m.keys.Keys(ActionReopen), reopenHint)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func hintLine(keys []string, label string) string {
	if len(keys) == 0 {
		return label
	}
	return keys[0] + "  " + label
}

func (m *Model) renderStatus(width int) string {
	style := styles.Status
	text := m.summary()
	switch {
	case m.errMsg != "":
		style = styles.StatusError
		text = m.errMsg
	case m.infoMsg != "":
		text = m.infoMsg
	}
	text = ansi.Truncate(" "+text, width, "…")
	return style.Render(padRight(text, width))
}

func (m *Model) summary() string {
	open, closed := m.store.Len(), m.store.HistoryLen()
	id, ok := m.store.Selected()
	if !ok {
		return fmt.Sprintf("%d open · %d closed", open, closed)
	}
	info, _ := m.store.Info(id)
	title := info.Title
	if info.Dirty {
		title += " (modified)"
	}
	return fmt.Sprintf("%s · %d open · %d closed", title, open, closed)
}

func (m *Model) renderContextMenu(r menu.Rect) string {
	list := m.overlays.Context.List
	lines := make([]string, 0, r.H)
	lines = append(lines, borderLine("╭", "╮", "", r.W))
	for i, item := range list.Items {
		lines = append(lines, itemLine(item, i == list.Cursor, r.W))
	}
	lines = append(lines, borderLine("╰", "╯", "", r.W))
	return strings.Join(lines, "\n")
}

func (m *Model) renderNewTabMenu(r menu.Rect) string {
	list := m.overlays.NewTab.List
	rows := r.H - 3
	lines := make([]string, 0, r.H)
	lines = append(lines, borderLine("╭", "╮", newTabMenuTitle, r.W))
	lines = append(lines, m.filterLine(list, r.W))
	if len(list.Items) == 0 {
		lines = append(lines, itemLine(menu.Item{Label: noMatches, Disabled: true}, false, r.W))
	}
	for i := list.ViewportOffset; i < len(list.Items) && i < list.ViewportOffset+rows; i++ {
		lines = append(lines, itemLine(list.Items[i], i == list.Cursor, r.W))
	}
	lines = append(lines, borderLine("╰", "╯", "", r.W))
	return strings.Join(lines, "\n")
}

func borderLine(left, right, title string, width int) string {
	fill := width - 2 - ansi.StringWidth(title)
	if fill < 0 {
		fill = 0
	}
	lead := 0
	if title != "" && fill > 0 {
		lead = 1
	}
	return styles.MenuBorder.Render(left + strings.Repeat("─", lead) + title + strings.Repeat("─", fill-lead) + right)
}

func itemLine(item menu.Item, selected bool, width int) string {
	style := styles.MenuItem
	switch {
	case item.Disabled:
		style = styles.MenuDisabled
	case selected:
		style = styles.MenuSelected
	}
	inner := width - menuBorderWidth
	label := padRight(ansi.Truncate(item.Display(), inner, "…"), inner)
	bar := styles.MenuBorder.Render("│")
	return bar + style.Render(" "+label+" ") + bar
}

func (m *Model) filterLine(list *uistate.Level, width int) string {
	const prompt = " › "
	inner := width - 2 - ansi.StringWidth(prompt)
	runes := []rune(list.FilterText())
	pos := list.FilterCaret()
	c := m.filterCursor
	var text string
	if len(runes) == 0 {
		c.SetChar(" ")
		text = c.View() + styles.FilterEmpty.Render(ansi.Truncate(filterHint, inner-1, ""))
	} else {
		under, after := " ", ""
		if pos < len(runes) {
			under = string(runes[pos])
			after = string(runes[pos+1:])
		}
		c.SetChar(under)
		text = styles.Filter.Render(string(runes[:pos])) + c.View() + styles.Filter.Render(after)
		text = ansi.Truncate(text, inner, "")
	}
	bar := styles.MenuBorder.Render("│")
	return bar + styles.FilterPrompt.Render(prompt) + padRight(text, inner) + bar
}

// overlayAt composites overlay onto base with its top-left corner at (x, y).
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		pos := x + ansi.StringWidth(line)
		right := ansi.TruncateLeft(target, pos, "")
		baseLines[row] = ansi.Truncate(left+line+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
