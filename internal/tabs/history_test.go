package tabs

import "testing"

func rec(id TabID) *Record {
	return &Record{ID: id, Content: missingContent{}}
}

func TestHistoryPushEvictsHead(t *testing.T) {
	h := newHistory(2)
	if ev := h.push(rec(1)); ev != nil {
		t.Fatalf("unexpected eviction %v", ev.ID)
	}
	h.push(rec(2))
	ev := h.push(rec(3))
	if ev == nil || ev.ID != 1 {
		t.Fatalf("expected head eviction of 1, got %#v", ev)
	}
	if h.len() != 2 {
		t.Fatalf("expected len 2, got %d", h.len())
	}
	r, ok := h.pop()
	if !ok || r.ID != 3 {
		t.Fatalf("expected pop of 3, got %#v", r)
	}
	r, _ = h.pop()
	if r.ID != 2 {
		t.Fatalf("expected pop of 2, got %d", r.ID)
	}
	if _, ok := h.pop(); ok {
		t.Fatalf("expected empty history")
	}
}

func TestHistoryMinimumLimit(t *testing.T) {
	h := newHistory(0)
	h.push(rec(1))
	if ev := h.push(rec(2)); ev == nil || ev.ID != 1 {
		t.Fatalf("expected limit clamped to one")
	}
}

func TestSuccessorAfterRemoval(t *testing.T) {
	open := []*Record{rec(4), rec(5), rec(6)}
	cases := []struct {
		pos  int
		want TabID
	}{
		{0, 4},
		{1, 4},
		{2, 5},
		{3, 6},
	}
	for _, tc := range cases {
		got, ok := successorAfterRemoval(open, tc.pos)
		if !ok || got != tc.want {
			t.Fatalf("pos %d: expected %d, got %d (%v)", tc.pos, tc.want, got, ok)
		}
	}
	if _, ok := successorAfterRemoval(nil, 0); ok {
		t.Fatalf("expected no successor in empty list")
	}
}

func TestCycleFallsBackToFirst(t *testing.T) {
	open := []*Record{rec(1), rec(2)}
	if got, _ := cycle(open, 9, true, 1); got != 1 {
		t.Fatalf("expected fallback to first tab, got %d", got)
	}
	if got, _ := cycle(open, 2, false, 1); got != 1 {
		t.Fatalf("expected invalid selection to fall back, got %d", got)
	}
	if got, _ := cycle(open, 1, true, -1); got != 2 {
		t.Fatalf("expected wrap to last, got %d", got)
	}
}
