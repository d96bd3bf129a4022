package state

// MoveCursorDown moves to the next enabled item, wrapping at the end.
func (l *Level) MoveCursorDown() bool {
	return l.step(1)
}

// MoveCursorUp moves to the previous enabled item, wrapping at the start.
func (l *Level) MoveCursorUp() bool {
	return l.step(-1)
}

func (l *Level) step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	start := l.Cursor + delta
	if l.Cursor < 0 || l.Cursor >= n {
		start = 0
	}
	next := l.firstEnabled(start, delta)
	if next < 0 {
		return false
	}
	l.Cursor = next
	return old != l.Cursor
}

// firstEnabled scans from start in direction delta, wrapping, and returns the
// first enabled index or -1.
func (l *Level) firstEnabled(start, delta int) int {
	n := len(l.Items)
	if n == 0 {
		return -1
	}
	for i := 0; i < n; i++ {
		idx := ((start+i*delta)%n + n) % n
		if !l.Items[idx].Disabled {
			return idx
		}
	}
	return -1
}

// MoveCursorHome moves the cursor to the first enabled item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if idx := l.firstEnabled(0, 1); idx >= 0 {
		l.Cursor = idx
	}
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last enabled item.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if idx := l.firstEnabled(n-1, -1); idx >= 0 {
		l.Cursor = idx
	}
	return old != l.Cursor
}

// SetCursor moves to index i when it names an enabled item.
func (l *Level) SetCursor(i int) bool {
	if i < 0 || i >= len(l.Items) || l.Items[i].Disabled {
		return false
	}
	l.Cursor = i
	return true
}

// EnsureCursorVisible scrolls the viewport so the cursor sits inside a
// window of rows items. It also clamps an out-of-range cursor.
func (l *Level) EnsureCursorVisible(rows int) {
	n := len(l.Items)
	if n == 0 || rows <= 0 {
		l.Cursor = clamp(l.Cursor, 0, n-1)
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	off := clamp(l.ViewportOffset, 0, n-rows)
	switch {
	case l.Cursor < off:
		off = l.Cursor
	case l.Cursor >= off+rows:
		off = l.Cursor - rows + 1
	}
	l.ViewportOffset = off
}

// clamp bounds v to [lo, hi], preferring lo when the range is empty.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
