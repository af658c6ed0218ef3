package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/tracker/internal/domain"
)

// Palette is the set of colors for one theme.
type Palette struct {
	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color

	// Task rows
	Item       lipgloss.Color
	DoneItem   lipgloss.Color
	DoneText   lipgloss.Color
	DoneMark   lipgloss.Color
	InputField lipgloss.Color
}

// LightColors is the light theme palette.
var LightColors = Palette{
	Background: lipgloss.Color("#f8f9fa"),
	Foreground: lipgloss.Color("#212529"),
	Primary:    lipgloss.Color("#007bff"), // Blue
	Muted:      lipgloss.Color("#6c757d"), // Gray
	Error:      lipgloss.Color("#dc3545"), // Red
	Warning:    lipgloss.Color("#b8860b"), // Dark yellow

	Item:       lipgloss.Color("#e9ecef"),
	DoneItem:   lipgloss.Color("#d4edda"),
	DoneText:   lipgloss.Color("#155724"),
	DoneMark:   lipgloss.Color("#28a745"), // Green
	InputField: lipgloss.Color("#ffffff"),
}

// DarkColors is the dark theme palette.
var DarkColors = Palette{
	Background: lipgloss.Color("#121212"),
	Foreground: lipgloss.Color("#ffffff"),
	Primary:    lipgloss.Color("#4da3ff"),
	Muted:      lipgloss.Color("#8a8a8a"),
	Error:      lipgloss.Color("#ff6b6b"),
	Warning:    lipgloss.Color("#fdcb6e"),

	Item:       lipgloss.Color("#1e1e1e"),
	DoneItem:   lipgloss.Color("#272727"),
	DoneText:   lipgloss.Color("#9e9e9e"),
	DoneMark:   lipgloss.Color("#00b894"),
	InputField: lipgloss.Color("#1e1e1e"),
}

// PaletteFor returns the palette of theme.
func PaletteFor(theme domain.Theme) Palette {
	if theme == domain.ThemeDark {
		return DarkColors
	}
	return LightColors
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	ThemeBadge lipgloss.Style

	// Task list
	SelectionIndicator lipgloss.Style
	TaskText           lipgloss.Style
	TaskTextDone       lipgloss.Style
	TaskMeta           lipgloss.Style
	MarkOpen           lipgloss.Style
	MarkDone           lipgloss.Style
	EmptyState         lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	WarningMsg lipgloss.Style
}

// DefaultStyles returns the light theme styles.
func DefaultStyles() Styles {
	return NewStyles(domain.ThemeLight)
}

// NewStyles returns the styles for theme.
func NewStyles(theme domain.Theme) Styles {
	c := PaletteFor(theme)
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2).
			Background(c.Background).
			Foreground(c.Foreground),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		ThemeBadge: lipgloss.NewStyle().
			Foreground(c.Muted),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(c.Primary),

		TaskText: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Item),

		TaskTextDone: lipgloss.NewStyle().
			Foreground(c.DoneText).
			Background(c.DoneItem).
			Strikethrough(true),

		TaskMeta: lipgloss.NewStyle().
			Foreground(c.Muted),

		MarkOpen: lipgloss.NewStyle().
			Foreground(c.Muted),

		MarkDone: lipgloss.NewStyle().
			Foreground(c.DoneMark).
			Bold(true),

		EmptyState: lipgloss.NewStyle().
			Foreground(c.Muted).
			Italic(true),

		Help: lipgloss.NewStyle().
			Foreground(c.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(c.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Error).
			Padding(0, 1),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Error),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(c.Muted),

		Input: lipgloss.NewStyle().
			Background(c.InputField),

		InputPrompt: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(c.Error),

		WarningMsg: lipgloss.NewStyle().
			Foreground(c.Warning),
	}
}

// MarkStyle returns the style for a task's completion mark.
func (s Styles) MarkStyle(done bool) lipgloss.Style {
	if done {
		return s.MarkDone
	}
	return s.MarkOpen
}

// TextStyle returns the style for a task's text.
func (s Styles) TextStyle(done bool) lipgloss.Style {
	if done {
		return s.TaskTextDone
	}
	return s.TaskText
}

// DoneMark returns the completion mark glyph.
func DoneMark(done bool) string {
	if done {
		return "[✓]"
	}
	return "[ ]"
}
