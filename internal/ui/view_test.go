package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tabdeck/internal/testutil"
)

func TestViewGoldenTwoTabs(t *testing.T) {
	h, _ := newTestModelWith(t, Options{Width: 40, Height: 8}, "Alpha", "Beta")
	testutil.AssertGolden(t, "two_tabs.golden", testutil.StripANSI(h.View()))
}

func TestViewLinesFitWidth(t *testing.T) {
	h, _ := newTestModel(t, "Alpha", "Beta", "Gamma")
	h.RightClick(12, 0)
	h.Keys("ctrl+t")
	for i, line := range strings.Split(testutil.StripANSI(h.View()), "\n") {
		if w := len([]rune(line)); w > testWidth {
			t.Fatalf("line %d is %d cells wide: %q", i, w, line)
		}
	}
}

func TestContextMenuDrawnAtAnchor(t *testing.T) {
	h, _ := newTestModel(t, "Alpha", "Beta")
	h.RightClick(12, 0)
	if line := testutil.Line(h.View(), 1); !strings.Contains(line, "╭──") {
		t.Fatalf("expected menu border on row 1, got %q", line)
	}
	line := testutil.Line(h.View(), 2)
	if idx := strings.Index(line, "│ Close Tab"); idx < 0 || len([]rune(line[:idx])) != 12 {
		t.Fatalf("expected first item at column 12, got %q", line)
	}
}

func TestNewTabMenuShowsFilterHint(t *testing.T) {
	h, _ := newTestModel(t)
	h.Keys("ctrl+t")
	view := testutil.StripANSI(h.View())
	for _, want := range []string{newTabMenuTitle, filterHint, "Alpha", "Gamma"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in dropdown, got:\n%s", want, view)
		}
	}
}
