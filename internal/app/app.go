package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/tabdeck/internal/editors"
	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int                 `yaml:"width"`
	Height     int                 `yaml:"height"`
	ShowFooter bool                `yaml:"footer"`
	Verbose    bool                `yaml:"verbose"`
	Mouse      bool                `yaml:"mouse"`
	Tabs       []string            `yaml:"tabs,omitempty"`
	Keys       map[string][]string `yaml:"keys,omitempty"`
}

// NewRegistry returns a registry holding the built-in tab types. The
// Settings tab renders cfg.
func NewRegistry(cfg Config) *tabs.Registry {
	reg := tabs.NewRegistry()
	editors.RegisterDefaults(reg, editors.Options{
		Settings: func() any { return cfg },
	})
	return reg
}

// NewModel builds the UI model and opens the configured seed tabs. Without
// seeds a single Text Document is opened.
func NewModel(cfg Config, clipboard func(string) error) (*ui.Model, error) {
	keys, err := ui.DefaultKeyMap().WithOverrides(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	model := ui.NewModel(tabs.NewStore(), NewRegistry(cfg), ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Keys:       keys,
		Clipboard:  clipboard,
		AltScreen:  true,
		Mouse:      cfg.Mouse,
	})
	seeds := cfg.Tabs
	if len(seeds) == 0 {
		seeds = []string{editors.TextName}
	}
	for _, name := range seeds {
		events.App.Seed(name, model.Open(name))
	}
	return model, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := NewModel(cfg, nil)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model)
	_, err = program.Run()
	store := model.Store()
	events.App.Exit(store.Len(), store.HistoryLen())
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
