package state

import (
	"sort"
	"strings"
	"unicode"

	"github.com/atomicstack/tabdeck/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Query is a single-line text buffer with a caret, used as a menu filter.
type Query struct {
	text  []rune
	caret int
}

// String returns the buffer contents.
func (q Query) String() string { return string(q.text) }

// Caret returns the rune offset of the caret.
func (q Query) Caret() int { return q.caret }

// Blank reports whether the query has no visible characters.
func (q Query) Blank() bool { return strings.TrimSpace(string(q.text)) == "" }

func (q *Query) insert(s string) bool {
	add := []rune(s)
	if len(add) == 0 {
		return false
	}
	next := make([]rune, 0, len(q.text)+len(add))
	next = append(next, q.text[:q.caret]...)
	next = append(next, add...)
	q.text = append(next, q.text[q.caret:]...)
	q.caret += len(add)
	return true
}

// cut removes text[from:caret] and leaves the caret at from.
func (q *Query) cut(from int) bool {
	if from < 0 || from >= q.caret {
		return false
	}
	q.text = append(q.text[:from:from], q.text[q.caret:]...)
	q.caret = from
	return true
}

func (q *Query) backspace() bool {
	return q.cut(q.caret - 1)
}

func (q *Query) deleteWord() bool {
	i := q.caret
	for i > 0 && unicode.IsSpace(q.text[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(q.text[i-1]) {
		i--
	}
	return q.cut(i)
}

func (q *Query) shift(delta int) bool {
	next := q.caret + delta
	if next < 0 || next > len(q.text) {
		return false
	}
	q.caret = next
	return true
}

// FilterText returns the current filter query.
func (l *Level) FilterText() string { return l.query.String() }

// FilterCaret returns the caret offset inside the filter query.
func (l *Level) FilterCaret() int { return l.query.Caret() }

// TypeFilter inserts s at the caret and refilters.
func (l *Level) TypeFilter(s string) bool {
	return l.edit(func(q *Query) bool { return q.insert(s) })
}

// BackspaceFilter removes the rune before the caret.
func (l *Level) BackspaceFilter() bool {
	return l.edit((*Query).backspace)
}

// DeleteFilterWord removes the word before the caret along with any
// whitespace between it and the caret.
func (l *Level) DeleteFilterWord() bool {
	return l.edit((*Query).deleteWord)
}

// ClearFilter empties the query and restores the pre-filter cursor.
func (l *Level) ClearFilter() bool {
	return l.edit(func(q *Query) bool {
		if len(q.text) == 0 {
			return false
		}
		*q = Query{}
		return true
	})
}

// CaretLeft moves the filter caret one rune left.
func (l *Level) CaretLeft() bool { return l.query.shift(-1) }

// CaretRight moves the filter caret one rune right.
func (l *Level) CaretRight() bool { return l.query.shift(1) }

// edit applies fn to the query and, when it changed something, recomputes
// the visible items. The cursor jumps to the best match while a query is
// active and returns to where it was once the query is blanked again.
func (l *Level) edit(fn func(*Query) bool) bool {
	wasBlank := l.query.Blank()
	if !fn(&l.query) {
		return false
	}
	blank := l.query.Blank()
	if wasBlank && !blank {
		l.restore = l.Cursor
	}
	l.refilter()
	switch {
	case !blank:
		if idx := BestMatchIndex(l.Items, l.query.String()); idx >= 0 {
			l.Cursor = idx
		}
	case !wasBlank:
		if l.restore >= 0 && l.restore < len(l.Items) {
			l.Cursor = l.restore
		}
		l.restore = -1
	}
	return true
}

func (l *Level) refilter() {
	l.Items = FilterItems(l.Full, l.query.String())
	switch n := len(l.Items); {
	case n == 0:
		l.Cursor, l.ViewportOffset = 0, 0
	case l.Cursor >= n:
		l.Cursor = n - 1
	case l.Cursor < 0:
		l.Cursor = 0
	}
	if l.ViewportOffset >= len(l.Items) {
		l.ViewportOffset = 0
	}
}

type match struct {
	index    int
	distance int
}

// rank returns the fuzzy matches of query among the item labels, best first.
// Ties keep item order.
func rank(items []menu.Item, query string) []match {
	var out []match
	for i, item := range items {
		if d := fuzzy.RankMatchNormalizedFold(query, item.Label); d >= 0 {
			out = append(out, match{index: i, distance: d})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].distance < out[b].distance })
	return out
}

// FilterItems returns the items whose label fuzzily matches query, keeping
// their order. A blank query matches everything.
func FilterItems(items []menu.Item, query string) []menu.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneItems(items)
	}
	hits := rank(items, query)
	keep := make([]bool, len(items))
	for _, h := range hits {
		keep[h.index] = true
	}
	filtered := make([]menu.Item, 0, len(hits))
	for i, item := range items {
		if keep[i] {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex prefers an exact label, then a label prefix, then the
// closest fuzzy match. It returns -1 for an empty list.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0
	}
	prefix := -1
	for i, item := range items {
		if strings.EqualFold(item.Label, query) {
			return i
		}
		if prefix < 0 && strings.HasPrefix(strings.ToLower(item.Label), strings.ToLower(query)) {
			prefix = i
		}
	}
	if prefix >= 0 {
		return prefix
	}
	if hits := rank(items, query); len(hits) > 0 {
		return hits[0].index
	}
	return 0
}
