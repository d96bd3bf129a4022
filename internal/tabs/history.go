package tabs

// HistoryCapacity bounds the closed-tab history.
const HistoryCapacity = 10

// history is the bounded closed-tab buffer: push at the tail, evict from the
// head, pop from the tail.
type history struct {
	records []*Record
	limit   int
}

func newHistory(limit int) *history {
	if limit < 1 {
		limit = 1
	}
	return &history{records: make([]*Record, 0, limit+1), limit: limit}
}

// push appends r and returns the record evicted from the head, if any.
func (h *history) push(r *Record) *Record {
	h.records = append(h.records, r)
	if len(h.records) <= h.limit {
		return nil
	}
	evicted := h.records[0]
	h.records[0] = nil
	h.records = h.records[1:]
	return evicted
}

func (h *history) pop() (*Record, bool) {
	n := len(h.records)
	if n == 0 {
		return nil, false
	}
	r := h.records[n-1]
	h.records[n-1] = nil
	h.records = h.records[:n-1]
	return r, true
}

func (h *history) len() int {
	return len(h.records)
}
