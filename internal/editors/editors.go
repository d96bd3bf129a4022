// Package editors provides the built-in tab content types.
package editors

import "github.com/atomicstack/tabdeck/internal/tabs"

// Built-in type names.
const (
	TextName     = "Text Document"
	LevelName    = "Level Editor"
	SettingsName = "Settings"
)

// Options feeds runtime data into the built-in editors.
type Options struct {
	// Settings returns the value rendered by the Settings tab.
	Settings func() any
}

// RegisterDefaults registers the built-in types in menu order.
func RegisterDefaults(reg *tabs.Registry, opts Options) {
	reg.Register(tabs.Descriptor{
		Name:    TextName,
		Icon:    "📝",
		Factory: func() tabs.ContentProvider { return NewTextDocument() },
	})
	reg.Register(tabs.Descriptor{
		Name:    LevelName,
		Icon:    "🎮",
		Factory: func() tabs.ContentProvider { return NewLevelEditor() },
	})
	reg.Register(tabs.Descriptor{
		Name:    SettingsName,
		Icon:    "⚙️",
		Factory: func() tabs.ContentProvider { return NewSettings(opts.Settings) },
	})
}
