package tabs

import "sync"

// Store owns the ordered open tabs, the closed-tab history, the selection and
// the id allocator. Every operation is total: it either applies its effect or
// silently does nothing.
//
// The store is expected to be driven from the UI event loop. The lock only
// exists so background callbacks (for example an editor finishing an async
// load) can touch it safely.
type Store struct {
	mu       sync.RWMutex
	open     []*Record
	closed   *history
	nextID   TabID
	selected TabID
	hasSel   bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{closed: newHistory(HistoryCapacity)}
}

// Add appends a new tab for content and selects it.
func (s *Store) Add(content ContentProvider, opts ...AddOption) TabID {
	if content == nil {
		content = missingContent{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &Record{ID: s.nextID, Content: content}
	s.nextID++
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	s.open = append(s.open, r)
	s.selected, s.hasSel = r.ID, true
	return r.ID
}

// Close moves an open, closable, unpinned tab into the history. It reports
// whether the tab was removed.
func (s *Store) Close(id TabID) bool {
	s.mu.Lock()
	pos := indexOf(s.open, id)
	if pos < 0 || !s.open[pos].closable() {
		s.mu.Unlock()
		return false
	}
	r := s.open[pos]
	s.open = append(s.open[:pos], s.open[pos+1:]...)
	evicted := s.closed.push(r)
	if s.hasSel && s.selected == id {
		s.selected, s.hasSel = successorAfterRemoval(s.open, pos)
	}
	s.mu.Unlock()
	dispose(evicted)
	return true
}

// CloseSelected closes the selected tab.
func (s *Store) CloseSelected() bool {
	id, ok := s.Selected()
	if !ok {
		return false
	}
	return s.Close(id)
}

// ReopenLastClosed moves the most recently closed tab back to the end of the
// open list and selects it.
func (s *Store) ReopenLastClosed() (TabID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.closed.pop()
	if !ok {
		return 0, false
	}
	s.open = append(s.open, r)
	s.selected, s.hasSel = r.ID, true
	return r.ID, true
}

// CloseOthers closes every closable, unpinned tab except keep, in list order,
// and selects keep. When keep is not open the first remaining tab is
// selected instead.
func (s *Store) CloseOthers(keep TabID) []TabID {
	s.mu.Lock()
	var (
		removed []TabID
		evicted []*Record
	)
	kept := s.open[:0]
	for _, r := range s.open {
		if r.ID != keep && r.closable() {
			removed = append(removed, r.ID)
			if e := s.closed.push(r); e != nil {
				evicted = append(evicted, e)
			}
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(s.open); i++ {
		s.open[i] = nil
	}
	s.open = kept
	s.selected, s.hasSel = keep, true
	if indexOf(s.open, keep) < 0 {
		s.selected, s.hasSel = successorAfterRemoval(s.open, 0)
	}
	s.mu.Unlock()
	for _, e := range evicted {
		dispose(e)
	}
	return removed
}

// TogglePin flips the pinned flag and reports whether the tab was found.
func (s *Store) TogglePin(id TabID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := indexOf(s.open, id)
	if pos < 0 {
		return false
	}
	s.open[pos].Pinned = !s.open[pos].Pinned
	return true
}

// Select makes id the selected tab if it is open.
func (s *Store) Select(id TabID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexOf(s.open, id) < 0 {
		return false
	}
	s.selected, s.hasSel = id, true
	return true
}

// Next selects the following tab, wrapping at the end.
func (s *Store) Next() {
	s.step(1)
}

// Prev selects the preceding tab, wrapping at the start.
func (s *Store) Prev() {
	s.step(-1)
}

func (s *Store) step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.open) == 0 {
		return
	}
	s.selected, s.hasSel = cycle(s.open, s.selected, s.hasSel, delta)
}

// MoveLeft swaps the tab with its left neighbour.
func (s *Store) MoveLeft(id TabID) bool {
	return s.move(id, -1)
}

// MoveRight swaps the tab with its right neighbour.
func (s *Store) MoveRight(id TabID) bool {
	return s.move(id, 1)
}

func (s *Store) move(id TabID, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := indexOf(s.open, id)
	if pos < 0 {
		return false
	}
	to := pos + delta
	if to < 0 || to >= len(s.open) {
		return false
	}
	s.open[pos], s.open[to] = s.open[to], s.open[pos]
	return true
}

// SetPreview updates the preview flag of an open tab.
func (s *Store) SetPreview(id TabID, preview bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := indexOf(s.open, id)
	if pos < 0 {
		return false
	}
	s.open[pos].Preview = preview
	return true
}

// SetMetadata stores a metadata entry on an open tab.
func (s *Store) SetMetadata(id TabID, key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := indexOf(s.open, id)
	if pos < 0 {
		return false
	}
	WithMetadata(key, value)(s.open[pos])
	return true
}

// Metadata returns a copy of an open tab's metadata.
func (s *Store) Metadata(id TabID) (map[string]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos := indexOf(s.open, id)
	if pos < 0 {
		return nil, false
	}
	return cloneMetadata(s.open[pos].Metadata), true
}

// Selected returns the selected tab id. ok is false when no tabs are open.
func (s *Store) Selected() (TabID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasSel || indexOf(s.open, s.selected) < 0 {
		return 0, false
	}
	return s.selected, true
}

// Len returns the number of open tabs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.open)
}

// HasClosed reports whether a tab can be reopened.
func (s *Store) HasClosed() bool {
	return s.HistoryLen() > 0
}

// HistoryLen returns the number of tabs in the closed history.
func (s *Store) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed.len()
}

// Tabs returns the open tabs in order.
func (s *Store) Tabs() []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Info, len(s.open))
	for i, r := range s.open {
		out[i] = r.info(s.hasSel && r.ID == s.selected)
	}
	return out
}

// History returns the closed tabs, oldest first.
func (s *Store) History() []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Info, len(s.closed.records))
	for i, r := range s.closed.records {
		out[i] = r.info(false)
	}
	return out
}

// Info returns the snapshot of a single open tab.
func (s *Store) Info(id TabID) (Info, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos := indexOf(s.open, id)
	if pos < 0 {
		return Info{}, false
	}
	r := s.open[pos]
	return r.info(s.hasSel && r.ID == s.selected), true
}

// Content returns the provider of an open tab.
func (s *Store) Content(id TabID) (ContentProvider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos := indexOf(s.open, id)
	if pos < 0 {
		return nil, false
	}
	return s.open[pos].Content, true
}

// Render renders the selected tab. The provider runs outside the lock.
func (s *Store) Render() (string, bool) {
	s.mu.RLock()
	var (
		content ContentProvider
		id      TabID
	)
	if s.hasSel {
		if pos := indexOf(s.open, s.selected); pos >= 0 {
			content, id = s.open[pos].Content, s.selected
		}
	}
	s.mu.RUnlock()
	if content == nil {
		return "", false
	}
	return content.Render(id), true
}

func dispose(r *Record) {
	if r == nil {
		return
	}
	if d, ok := r.Content.(Disposer); ok {
		d.Dispose()
	}
}
