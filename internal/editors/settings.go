package editors

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tabdeck/internal/tabs"
	"gopkg.in/yaml.v3"
)

// Settings shows the effective configuration. It can never be closed.
type Settings struct {
	source func() any
}

// NewSettings returns a settings tab that renders whatever source yields.
func NewSettings(source func() any) *Settings {
	return &Settings{source: source}
}

func (s *Settings) Title() string  { return "Settings" }
func (s *Settings) IsDirty() bool  { return false }
func (s *Settings) CanClose() bool { return false }

func (s *Settings) Render(tabs.TabID) string {
	if s.source == nil {
		return "No settings available"
	}
	out, err := yaml.Marshal(s.source())
	if err != nil {
		return fmt.Sprintf("unable to render settings: %v", err)
	}
	return "# effective settings\n" + strings.TrimRight(string(out), "\n")
}
