package editors

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tabdeck/internal/tabs"
)

// TextDocument is a plain text buffer backed by a bubbles textarea. It is
// dirty whenever the buffer differs from the last checkpoint taken with
// ctrl+s.
type TextDocument struct {
	tabs.BaseContent
	area  textarea.Model
	saved string
	title string
}

// NewTextDocument returns an empty, focused document.
func NewTextDocument() *TextDocument {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.Placeholder = "Start typing…"
	ta.SetWidth(80)
	ta.SetHeight(20)
	st := textarea.DefaultDarkStyles()
	st.Cursor.Blink = false
	ta.SetStyles(st)
	ta.Focus()
	return &TextDocument{area: ta, title: "New Document"}
}

func (d *TextDocument) Render(tabs.TabID) string {
	return d.area.View()
}

func (d *TextDocument) Title() string { return d.title }

func (d *TextDocument) IsDirty() bool {
	return d.area.Value() != d.saved
}

// Value returns the buffer contents.
func (d *TextDocument) Value() string {
	return d.area.Value()
}

// SetValue replaces the buffer contents without touching the checkpoint.
func (d *TextDocument) SetValue(s string) {
	d.area.SetValue(s)
}

// Save takes a checkpoint of the current buffer.
func (d *TextDocument) Save() {
	d.saved = d.area.Value()
}

// Update forwards input to the textarea. ctrl+s checkpoints the buffer.
func (d *TextDocument) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "ctrl+s" {
		d.Save()
		return nil
	}
	var cmd tea.Cmd
	d.area, cmd = d.area.Update(msg)
	return cmd
}

// SetSize resizes the textarea to the content area.
func (d *TextDocument) SetSize(width, height int) {
	if width > 0 {
		d.area.SetWidth(width)
	}
	if height > 0 {
		d.area.SetHeight(height)
	}
}
