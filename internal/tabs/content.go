package tabs

// ContentProvider is the capability every tab payload implements. All calls
// are synchronous and must not call back into the Store that owns the tab.
type ContentProvider interface {
	// Render returns the content for the given tab. It must not mutate the
	// store and should be idempotent for unchanged editor state.
	Render(id TabID) string
	Title() string
	IsDirty() bool
	CanClose() bool
}

// Disposer is implemented by content that holds resources which should be
// released once the tab leaves the closed-tab history for good.
type Disposer interface {
	Dispose()
}

// BaseContent supplies the default capability answers: closable and clean.
// Embed it and override what differs.
type BaseContent struct{}

func (BaseContent) IsDirty() bool  { return false }
func (BaseContent) CanClose() bool { return true }

const missingTitle = "Editor not found"

// missingContent stands in for a nil provider handed to Store.Add.
type missingContent struct {
	BaseContent
}

func (missingContent) Render(TabID) string { return missingTitle }
func (missingContent) Title() string       { return missingTitle }
