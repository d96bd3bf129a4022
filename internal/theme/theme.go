package theme

import "charm.land/lipgloss/v2"

// AMOLED palette: pure black background with a single blue accent.
var (
	Black    = lipgloss.Color("#000000")
	Surface  = lipgloss.Color("#0A0A0A")
	Raised   = lipgloss.Color("#141414")
	Border   = lipgloss.Color("#262626")
	Accent   = lipgloss.Color("#2F80ED")
	Text     = lipgloss.Color("#E0E0E0")
	Muted    = lipgloss.Color("#808080")
	Dirty    = lipgloss.Color("#FF6B6B")
	Disabled = lipgloss.Color("#666666")
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Strip         *lipgloss.Style
	Tab           *lipgloss.Style
	SelectedTab   *lipgloss.Style
	PreviewTab    *lipgloss.Style
	DirtyMarker   *lipgloss.Style
	CloseGlyph    *lipgloss.Style
	Button        *lipgloss.Style
	Separator     *lipgloss.Style
	Content       *lipgloss.Style
	EmptyTitle    *lipgloss.Style
	EmptyBody     *lipgloss.Style
	Status        *lipgloss.Style
	StatusError   *lipgloss.Style
	Footer        *lipgloss.Style
	MenuBorder    *lipgloss.Style
	MenuItem      *lipgloss.Style
	MenuSelected  *lipgloss.Style
	MenuDisabled  *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Filter        *lipgloss.Style
	FilterCursor  *lipgloss.Style
	FilterEmpty   *lipgloss.Style
}

var defaultStyles = Styles{
	Strip: ptr(
		lipgloss.NewStyle().Background(Surface).Foreground(Muted),
	),
	Tab: ptr(
		lipgloss.NewStyle().Background(Surface).Foreground(Muted),
	),
	SelectedTab: ptr(
		lipgloss.NewStyle().Background(Raised).Foreground(Text).Bold(true).Underline(true),
	),
	PreviewTab: ptr(
		lipgloss.NewStyle().Background(Surface).Foreground(Muted).Italic(true),
	),
	DirtyMarker: ptr(
		lipgloss.NewStyle().Foreground(Dirty),
	),
	CloseGlyph: ptr(
		lipgloss.NewStyle().Foreground(Muted),
	),
	Button: ptr(
		lipgloss.NewStyle().Background(Raised).Foreground(Accent).Bold(true),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(Border),
	),
	Content: ptr(
		lipgloss.NewStyle().Foreground(Text),
	),
	EmptyTitle: ptr(
		lipgloss.NewStyle().Foreground(Text).Bold(true),
	),
	EmptyBody: ptr(
		lipgloss.NewStyle().Foreground(Muted),
	),
	Status: ptr(
		lipgloss.NewStyle().Background(Surface).Foreground(Muted),
	),
	StatusError: ptr(
		lipgloss.NewStyle().Background(Surface).Foreground(Dirty).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(Disabled),
	),
	MenuBorder: ptr(
		lipgloss.NewStyle().Foreground(Border).Background(Black),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(Text).Background(Black),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(Black).Background(Accent).Bold(true),
	),
	MenuDisabled: ptr(
		lipgloss.NewStyle().Foreground(Disabled).Background(Black),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(Accent).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(Text),
	),
	FilterCursor: ptr(
		lipgloss.NewStyle().Foreground(Black).Background(Accent),
	),
	FilterEmpty: ptr(
		lipgloss.NewStyle().Foreground(Disabled).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
