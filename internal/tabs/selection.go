package tabs

// Selection rules. They are position based: after a structural change the
// new selection is derived from where the removed tab used to sit, not from
// ids.

func indexOf(open []*Record, id TabID) int {
	for i, r := range open {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// successorAfterRemoval picks the tab to select once the selected tab has
// been removed from position pos: its predecessor, else the new first tab.
func successorAfterRemoval(open []*Record, pos int) (TabID, bool) {
	if len(open) == 0 {
		return 0, false
	}
	if pos > 0 && pos-1 < len(open) {
		return open[pos-1].ID, true
	}
	return open[0].ID, true
}

// cycle moves delta steps from current, wrapping around. A current id that is
// not open falls back to the first tab.
func cycle(open []*Record, current TabID, valid bool, delta int) (TabID, bool) {
	n := len(open)
	if n == 0 {
		return 0, false
	}
	pos := -1
	if valid {
		pos = indexOf(open, current)
	}
	if pos < 0 {
		return open[0].ID, true
	}
	next := ((pos+delta)%n + n) % n
	return open[next].ID, true
}
