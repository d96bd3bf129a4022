package tabs

// TabID identifies a tab for the lifetime of the process. IDs are allocated
// in increasing order and never reused.
type TabID uint64

// Record is the unit of tab state. A record is owned by exactly one of the
// open list or the closed history at any time.
type Record struct {
	ID       TabID
	Content  ContentProvider
	Icon     string
	Pinned   bool
	Preview  bool
	Metadata map[string]string
}

// Info is a read-only snapshot of a record for rendering.
type Info struct {
	ID       TabID
	Title    string
	Icon     string
	Pinned   bool
	Preview  bool
	Dirty    bool
	// Closable reports whether Close would remove the tab right now: the
	// content allows it and the tab is not pinned.
	Closable bool
	Selected bool
}

// AddOption customises a record created by Store.Add.
type AddOption func(*Record)

// WithIcon sets the tab icon.
func WithIcon(icon string) AddOption {
	return func(r *Record) { r.Icon = icon }
}

// WithPinned creates the tab already pinned.
func WithPinned() AddOption {
	return func(r *Record) { r.Pinned = true }
}

// WithPreview marks the tab as a transient preview tab.
func WithPreview() AddOption {
	return func(r *Record) { r.Preview = true }
}

// WithMetadata attaches a metadata entry.
func WithMetadata(key, value string) AddOption {
	return func(r *Record) {
		if r.Metadata == nil {
			r.Metadata = make(map[string]string)
		}
		r.Metadata[key] = value
	}
}

// closable reports whether user commands may remove the record.
// Pinned tabs are protected the same way as tabs whose content refuses to close.
func (r *Record) closable() bool {
	return !r.Pinned && r.Content.CanClose()
}

func (r *Record) info(selected bool) Info {
	return Info{
		ID:       r.ID,
		Title:    r.Content.Title(),
		Icon:     r.Icon,
		Pinned:   r.Pinned,
		Preview:  r.Preview,
		Dirty:    r.Content.IsDirty(),
		Closable: r.closable(),
		Selected: selected,
	}
}

func cloneMetadata(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dup := make(map[string]string, len(src))
	for k, v := range src {
		dup[k] = v
	}
	return dup
}
