package ui

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tabdeck/internal/editors"
	"github.com/atomicstack/tabdeck/internal/menu"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/testutil"
	"github.com/atomicstack/tabdeck/internal/ui/command"
)

// Geometry at 80 columns: a plain tab is " title × ", so its width is the
// title plus 4 and its close glyph sits at x+width-2. Tabs are one cell apart.
// "Alpha" spans 0-8 (× at 7) and "Beta" spans 10-17 (× at 16). "+" spans
// 77-79 and the reopen button 74-76.
const (
	testWidth  = 80
	testHeight = 12
)

func newTestModel(t *testing.T, names ...string) (*Harness, *tabs.Store) {
	t.Helper()
	return newTestModelWith(t, Options{Width: testWidth, Height: testHeight, Verbose: true}, names...)
}

func newTestModelWith(t *testing.T, opts Options, names ...string) (*Harness, *tabs.Store) {
	t.Helper()
	store := tabs.NewStore()
	reg := tabs.NewRegistry()
	for _, n := range []string{"Alpha", "Beta", "Gamma"} {
		name := n
		reg.Register(tabs.Descriptor{
			Name:    name,
			Factory: func() tabs.ContentProvider { return testutil.NewContent(name) },
		})
	}
	for _, n := range names {
		store.Add(testutil.NewContent(n))
	}
	return NewHarness(NewModel(store, reg, opts)), store
}

func selectedTitle(t *testing.T, s *tabs.Store) string {
	t.Helper()
	id, ok := s.Selected()
	if !ok {
		t.Fatalf("expected a selected tab")
	}
	info, _ := s.Info(id)
	return info.Title
}

func titles(s *tabs.Store) string {
	infos := s.Tabs()
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = info.Title
	}
	return strings.Join(out, ",")
}

func TestEmptyStateShowsCallToAction(t *testing.T) {
	h, store := newTestModel(t)
	view := testutil.StripANSI(h.View())
	for _, want := range []string{emptyTitle, emptyBody, "ctrl+t  New Tab"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected empty state to contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, reopenHint) {
		t.Fatalf("reopen hint should be hidden without history")
	}
	if got := len(strings.Split(view, "\n")); got != testHeight {
		t.Fatalf("expected %d lines, got %d", testHeight, got)
	}

	h.Keys("ctrl+t", "enter")
	if store.Len() != 1 {
		t.Fatalf("expected one tab after creating from the dropdown, got %d", store.Len())
	}
	if line := testutil.Line(h.View(), 2); line != "Alpha #0" {
		t.Fatalf("expected content of the new tab, got %q", line)
	}

	h.Keys("ctrl+w")
	view = testutil.StripANSI(h.View())
	if !strings.Contains(view, "alt+t  "+reopenHint) {
		t.Fatalf("expected reopen hint once a tab was closed, got:\n%s", view)
	}
}

func TestNewTabDropdownFiltersAndCommits(t *testing.T) {
	h, store := newTestModel(t)
	h.Keys("ctrl+t")
	nt := h.Model().Overlays().NewTab
	if !nt.Visible || len(nt.List.Items) != 3 {
		t.Fatalf("expected dropdown with three types, got %+v", nt)
	}
	h.Type("gam")
	if items := h.Model().Overlays().NewTab.List.Items; len(items) != 1 || items[0].Label != "Gamma" {
		t.Fatalf("expected filter to narrow to Gamma, got %#v", items)
	}
	if !strings.Contains(testutil.StripANSI(h.View()), "gam") {
		t.Fatalf("expected filter text in view")
	}
	h.Keys("enter")
	if store.Len() != 1 || selectedTitle(t, store) != "Gamma" {
		t.Fatalf("expected Gamma tab, got %s", titles(store))
	}
	if h.Model().Overlays().AnyVisible() {
		t.Fatalf("dropdown should close after commit")
	}
}

func TestNewTabDropdownToggleAndEscape(t *testing.T) {
	h, _ := newTestModel(t)
	h.Keys("ctrl+t")
	if !h.Model().Overlays().NewTab.Visible {
		t.Fatalf("expected dropdown open")
	}
	h.Keys("ctrl+t")
	if h.Model().Overlays().NewTab.Visible {
		t.Fatalf("expected ctrl+t to close the dropdown")
	}
	h.Keys("ctrl+t", "esc")
	if h.Model().Overlays().AnyVisible() {
		t.Fatalf("expected esc to close the dropdown")
	}
}

func TestNoMatchesKeepsDropdownOpen(t *testing.T) {
	h, store := newTestModel(t)
	h.Keys("ctrl+t")
	h.Type("zzz")
	if !strings.Contains(testutil.StripANSI(h.View()), noMatches) {
		t.Fatalf("expected no-matches row")
	}
	h.Keys("enter")
	if store.Len() != 0 || !h.Model().Overlays().NewTab.Visible {
		t.Fatalf("enter with no matches should do nothing")
	}
	h.Keys("backspace", "backspace", "backspace")
	if got := len(h.Model().Overlays().NewTab.List.Items); got != 3 {
		t.Fatalf("expected full list after clearing filter, got %d", got)
	}
}

func TestUnknownTypeShowsFallbackError(t *testing.T) {
	h, store := newTestModel(t)
	res := h.Model().execute(command.Request{Kind: command.Add, TypeName: "Gama"})
	if !res.Missing || store.Len() != 0 {
		t.Fatalf("expected a miss without a new tab, got %+v", res)
	}
	errMsg, _ := h.Model().Status()
	if errMsg != "Editor not found: Gama (did you mean Gamma?)" {
		t.Fatalf("unexpected error %q", errMsg)
	}
	if line := testutil.Line(h.View(), testHeight-1); !strings.Contains(line, "Editor not found") {
		t.Fatalf("expected error in status row, got %q", line)
	}
	h.Keys("ctrl+right")
	if errMsg, _ := h.Model().Status(); errMsg != "" {
		t.Fatalf("expected status cleared on next key, got %q", errMsg)
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	h, store := newTestModel(t, "A", "B", "C")

	h.Keys("ctrl+w")
	if titles(store) != "A,B" || selectedTitle(t, store) != "B" {
		t.Fatalf("close: got %s selected %s", titles(store), selectedTitle(t, store))
	}
	h.Keys("alt+t")
	if titles(store) != "A,B,C" || selectedTitle(t, store) != "C" {
		t.Fatalf("reopen: got %s", titles(store))
	}
	h.Keys("ctrl+right")
	if selectedTitle(t, store) != "A" {
		t.Fatalf("next should wrap to A, got %s", selectedTitle(t, store))
	}
	h.Keys("alt+h")
	if selectedTitle(t, store) != "C" {
		t.Fatalf("prev should wrap to C, got %s", selectedTitle(t, store))
	}
	h.Keys("ctrl+shift+left")
	if titles(store) != "A,C,B" {
		t.Fatalf("move left: got %s", titles(store))
	}
	h.Keys("alt+p", "ctrl+w")
	if titles(store) != "A,C,B" {
		t.Fatalf("pinned tab must not close, got %s", titles(store))
	}
	if line := testutil.Line(h.View(), 0); !strings.Contains(line, pinGlyph+" C") {
		t.Fatalf("expected pin marker in strip, got %q", line)
	}
	h.Keys("ctrl+shift+right")
	if titles(store) != "A,B,C" {
		t.Fatalf("move right: got %s", titles(store))
	}
}

func TestKeysWithoutTabsAreNoOps(t *testing.T) {
	h, store := newTestModel(t)
	h.Keys("ctrl+w", "alt+t", "ctrl+right", "ctrl+left", "alt+p", "ctrl+shift+left", "alt+m")
	if store.Len() != 0 || h.Model().Overlays().AnyVisible() {
		t.Fatalf("expected nothing to change")
	}
}

func TestClickSelectsClosesAndReopens(t *testing.T) {
	h, store := newTestModel(t, "Alpha", "Beta")
	h.Click(1, 0)
	if selectedTitle(t, store) != "Alpha" {
		t.Fatalf("click should select Alpha")
	}
	beta := h.Model().layoutStrip().segments[1]
	if beta.closeX != 16 {
		t.Fatalf("expected Beta's close glyph at 16, got %d", beta.closeX)
	}
	h.Click(beta.closeX+1, 0)
	if titles(store) != "Alpha,Beta" || selectedTitle(t, store) != "Beta" {
		t.Fatalf("click past the glyph should only select Beta, got %s", titles(store))
	}
	h.Click(beta.closeX, 0)
	if titles(store) != "Alpha" {
		t.Fatalf("click on close glyph should close Beta, got %s", titles(store))
	}
	if line := testutil.Line(h.View(), 0); !strings.Contains(line, strings.TrimSpace(reopenLabel)) {
		t.Fatalf("expected reopen button, got %q", line)
	}
	h.Click(75, 0)
	if titles(store) != "Alpha,Beta" || selectedTitle(t, store) != "Beta" {
		t.Fatalf("reopen button should restore Beta, got %s", titles(store))
	}
	if line := testutil.Line(h.View(), 0); strings.Contains(line, strings.TrimSpace(reopenLabel)) {
		t.Fatalf("reopen button should hide with empty history, got %q", line)
	}
}

func TestPlusButtonTogglesDropdown(t *testing.T) {
	h, store := newTestModel(t)
	h.Click(78, 0)
	if !h.Model().Overlays().NewTab.Visible {
		t.Fatalf("expected dropdown after clicking +")
	}
	// dropdown is 24 wide, right-aligned to "+": x 56-79, items from y 3
	h.Click(60, 4)
	if store.Len() != 1 || selectedTitle(t, store) != "Beta" {
		t.Fatalf("expected Beta from dropdown click, got %s", titles(store))
	}
	h.Click(78, 0)
	h.Click(78, 0)
	if h.Model().Overlays().NewTab.Visible {
		t.Fatalf("second click on + should close the dropdown")
	}
}

func TestRightClickOpensContextMenu(t *testing.T) {
	h, store := newTestModel(t, "Alpha", "Beta")
	h.RightClick(1, 0)
	ctx := h.Model().Overlays().Context
	if !ctx.Visible {
		t.Fatalf("expected context menu")
	}
	info, _ := store.Info(ctx.Target)
	if info.Title != "Alpha" {
		t.Fatalf("expected context target Alpha, got %s", info.Title)
	}
	view := testutil.StripANSI(h.View())
	for _, want := range []string{"Close Tab", "Close Other Tabs", "Pin Tab", "Copy Title"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in context menu, got:\n%s", want, view)
		}
	}
	if selectedTitle(t, store) != "Beta" {
		t.Fatalf("right-click must not change the selection")
	}

	// an outside click dismisses and still reaches the tab beneath
	h.Click(12, 0)
	if h.Model().Overlays().AnyVisible() {
		t.Fatalf("outside click should dismiss the menu")
	}
	if selectedTitle(t, store) != "Beta" {
		t.Fatalf("expected Beta selected after click-through")
	}
	h.RightClick(12, 0)
	h.Click(1, 0)
	if selectedTitle(t, store) != "Alpha" {
		t.Fatalf("expected click-through to select Alpha")
	}
}

func TestContextMenuCloseOthers(t *testing.T) {
	h, store := newTestModel(t, "Alpha", "Beta", "Gamma")
	h.RightClick(1, 0)
	h.Keys("down", "enter")
	if titles(store) != "Alpha" || selectedTitle(t, store) != "Alpha" {
		t.Fatalf("expected only Alpha left, got %s", titles(store))
	}
	if _, info := h.Model().Status(); info != "closed 2 tab(s)" {
		t.Fatalf("unexpected info %q", info)
	}
	if store.HistoryLen() != 2 {
		t.Fatalf("expected two tabs in history, got %d", store.HistoryLen())
	}
}

func TestContextMenuDisabledItems(t *testing.T) {
	h, store := newTestModel(t, "Alpha")
	h.Keys("alt+p", "alt+m")
	list := h.Model().Overlays().Context.List
	if list == nil || !list.Items[0].Disabled || !list.Items[1].Disabled {
		t.Fatalf("expected close items disabled for a pinned single tab, got %#v", list)
	}
	if item, _ := list.Current(); item.ID != menu.ActionPin || item.Label != "Unpin Tab" {
		t.Fatalf("expected cursor on Unpin Tab, got %#v", item)
	}
	// menu hangs below the tab at x 0; first item row is y 2
	h.Click(3, 2)
	if store.Len() != 1 || !h.Model().Overlays().Context.Visible {
		t.Fatalf("clicking a disabled item must be a no-op")
	}
	h.Keys("enter")
	info, _ := store.Info(tabs.TabID(0))
	if info.Pinned {
		t.Fatalf("expected Unpin Tab to unpin")
	}
}

func TestContextMenuCopyTitle(t *testing.T) {
	var copied string
	opts := Options{
		Width:     testWidth,
		Height:    testHeight,
		Verbose:   true,
		Clipboard: func(s string) error { copied = s; return nil },
	}
	h, _ := newTestModelWith(t, opts, "Alpha", "Beta")
	h.RightClick(1, 0)
	h.Keys("down", "down", "down", "enter")
	if copied != "Alpha" {
		t.Fatalf("expected Alpha copied, got %q", copied)
	}
	if _, info := h.Model().Status(); info != "copied Alpha" {
		t.Fatalf("unexpected info %q", info)
	}

	opts.Clipboard = func(string) error { return errors.New("no clipboard") }
	h, _ = newTestModelWith(t, opts, "Alpha")
	h.Keys("alt+m", "up", "enter")
	if errMsg, _ := h.Model().Status(); errMsg != "copy failed: no clipboard" {
		t.Fatalf("unexpected error %q", errMsg)
	}
}

func TestStripScrollsToSelection(t *testing.T) {
	h, store := newTestModelWith(t, Options{Width: 30, Height: testHeight}, "One", "Two", "Three", "Four", "Five")
	line := testutil.Line(h.View(), 0)
	if !strings.Contains(line, "Five") || strings.Contains(line, "One") {
		t.Fatalf("expected strip scrolled to Five, got %q", line)
	}
	h.Keys("ctrl+right")
	if selectedTitle(t, store) != "One" {
		t.Fatalf("expected wrap to One")
	}
	line = testutil.Line(h.View(), 0)
	if !strings.Contains(line, "One") || strings.Contains(line, "Five") {
		t.Fatalf("expected strip scrolled back to One, got %q", line)
	}
}

func TestInteractiveContentReceivesKeys(t *testing.T) {
	store := tabs.NewStore()
	reg := tabs.NewRegistry()
	editors.RegisterDefaults(reg, editors.Options{})
	h := NewHarness(NewModel(store, reg, Options{Width: testWidth, Height: testHeight}))
	h.Model().execute(command.Request{Kind: command.Add, TypeName: editors.TextName})
	h.Type("hi")
	content, _ := store.Content(tabs.TabID(0))
	doc := content.(*editors.TextDocument)
	if doc.Value() != "hi" || !doc.IsDirty() {
		t.Fatalf("expected typed text in the document, got %q", doc.Value())
	}
	if line := testutil.Line(h.View(), 0); !strings.Contains(line, dirtyGlyph) {
		t.Fatalf("expected dirty marker, got %q", line)
	}
	h.Keys("ctrl+s")
	if doc.IsDirty() {
		t.Fatalf("ctrl+s should checkpoint the document")
	}
}

func TestWheelCyclesTabsAndScrollsDropdown(t *testing.T) {
	h, store := newTestModel(t, "Alpha", "Beta", "Gamma")
	h.Wheel(1, 0, false)
	if selectedTitle(t, store) != "Beta" {
		t.Fatalf("wheel up over the strip should select Beta")
	}
	h.Wheel(1, 0, true)
	if selectedTitle(t, store) != "Gamma" {
		t.Fatalf("wheel down over the strip should select Gamma")
	}

	h.Keys("ctrl+t")
	h.Wheel(60, 4, true)
	if got := h.Model().Overlays().NewTab.List.Cursor; got != 1 {
		t.Fatalf("wheel should move the dropdown cursor, got %d", got)
	}
	if selectedTitle(t, store) != "Gamma" {
		t.Fatalf("wheel over a popup must not change tabs")
	}
}

func TestRightClickOutsideDismissesWithoutMenu(t *testing.T) {
	h, store := newTestModel(t, "Alpha")
	h.Keys("ctrl+t")
	h.RightClick(5, 6)
	if h.Model().Overlays().AnyVisible() {
		t.Fatalf("right-click on content should dismiss the dropdown and open nothing")
	}
	h.Wheel(5, 6, true)
	if store.Len() != 1 || selectedTitle(t, store) != "Alpha" {
		t.Fatalf("wheel over content must not change tabs")
	}
}

func TestViewCarriesTerminalModes(t *testing.T) {
	h, _ := newTestModel(t)
	v := h.Model().View()
	if v.AltScreen || v.MouseMode != tea.MouseModeNone {
		t.Fatalf("expected plain view by default, got alt=%v mouse=%v", v.AltScreen, v.MouseMode)
	}
	h, _ = newTestModelWith(t, Options{Width: testWidth, Height: testHeight, AltScreen: true, Mouse: true})
	v = h.Model().View()
	if !v.AltScreen || v.MouseMode != tea.MouseModeCellMotion {
		t.Fatalf("expected alt screen with cell motion, got alt=%v mouse=%v", v.AltScreen, v.MouseMode)
	}
	if v.Content != h.View() {
		t.Fatalf("harness view should match the rendered content")
	}
}

func TestResizeHonoursFixedDimensions(t *testing.T) {
	h, _ := newTestModelWith(t, Options{Width: 40})
	h.Resize(100, 30)
	m := h.Model()
	if m.width != 40 || m.height != 30 {
		t.Fatalf("expected 40x30, got %dx%d", m.width, m.height)
	}
	if got := len(strings.Split(h.View(), "\n")); got != 30 {
		t.Fatalf("expected 30 lines, got %d", got)
	}
}

func TestFooterShowsBindings(t *testing.T) {
	h, _ := newTestModelWith(t, Options{Width: 120, Height: testHeight, ShowFooter: true})
	if line := testutil.Line(h.View(), testHeight-1); !strings.HasPrefix(line, "ctrl+t new • ctrl+w close") {
		t.Fatalf("unexpected footer %q", line)
	}
}

func TestQuit(t *testing.T) {
	h, _ := newTestModel(t)
	h.Keys("ctrl+t", "ctrl+c")
	if !h.Model().Quitting() {
		t.Fatalf("ctrl+c should quit even with a popup open")
	}
}
