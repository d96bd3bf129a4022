package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/atomicstack/tabdeck/internal/tabs"
)

// Content is a scriptable tabs.ContentProvider for tests.
type Content struct {
	Name     string
	Dirty    bool
	Locked   bool
	disposed atomic.Int32
}

// NewContent returns closable, clean content titled name.
func NewContent(name string) *Content {
	return &Content{Name: name}
}

// NewLockedContent returns content that refuses to close.
func NewLockedContent(name string) *Content {
	return &Content{Name: name, Locked: true}
}

func (c *Content) Render(id tabs.TabID) string {
	return fmt.Sprintf("%s #%d", c.Name, id)
}

func (c *Content) Title() string  { return c.Name }
func (c *Content) IsDirty() bool  { return c.Dirty }
func (c *Content) CanClose() bool { return !c.Locked }

// Dispose records that the content was released.
func (c *Content) Dispose() { c.disposed.Add(1) }

// Disposed returns how many times Dispose ran.
func (c *Content) Disposed() int { return int(c.disposed.Load()) }
