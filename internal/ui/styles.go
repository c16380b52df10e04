// Package ui provides the terminal styling and the line printer used by the
// interactive game.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	LightForeground = lipgloss.Color("#101F38") // Dark Blue
	LightPrimary    = lipgloss.Color("#101F38")
	LightMuted      = lipgloss.Color("#6a737d")

	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A") // Lime Green
	DarkMuted      = lipgloss.Color("#8a94a6")

	Success = lipgloss.Color("#8BC34A") // Lime Green
	Warning = lipgloss.Color("#FFC107") // Yellow
	Info    = lipgloss.Color("#2196F3") // Blue
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Muted:      LightMuted,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Muted:      DarkMuted,
		IsDark:     true,
	}
}

// ThemeByName maps the config value to a theme. Anything but "light" is dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the styled components of the game
type Styles struct {
	Theme Theme

	Title  lipgloss.Style
	Muted  lipgloss.Style
	Prompt lipgloss.Style
	Echo   lipgloss.Style

	// Outcomes
	Below lipgloss.Style
	Above lipgloss.Style
	Win   lipgloss.Style

	Hint lipgloss.Style
}

// NewStyles creates the styles for theme, bound to renderer r.
// A nil renderer uses lipgloss' default (stdout) renderer.
func NewStyles(theme Theme, r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Theme: theme,

		Title: r.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(theme.Muted),
		Prompt: r.NewStyle().
			Foreground(theme.Foreground),
		Echo: r.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Below: r.NewStyle().
			Foreground(Info).
			Bold(true),
		Above: r.NewStyle().
			Foreground(Warning).
			Bold(true),
		Win: r.NewStyle().
			Foreground(Success).
			Bold(true),

		Hint: r.NewStyle().
			Foreground(Warning),
	}
}
