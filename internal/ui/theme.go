// Package ui renders the generator's terminal output: the colored
// manifest report, progress while a batch runs, and the markdown
// next-steps guide. Everything degrades to plain text when no TTY is
// attached or color is disabled.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette holds the color values used across components.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Muted     string
}

// ThemeConfig configures theme construction.
type ThemeConfig struct {
	NoColor bool
}

// Theme applies the palette to output fragments.
type Theme struct {
	NoColor bool
	Colors  Palette

	title    lipgloss.Style
	success  lipgloss.Style
	errStyle lipgloss.Style
	warning  lipgloss.Style
	muted    lipgloss.Style
}

// NewTheme builds a Theme. With NoColor set all render methods pass
// text through unchanged.
func NewTheme(cfg ThemeConfig) *Theme {
	colors := Palette{
		Primary:   "#7C3AED",
		Secondary: "#06B6D4",
		Success:   "#22C55E",
		Error:     "#EF4444",
		Warning:   "#F59E0B",
		Muted:     "#6B7280",
	}

	return &Theme{
		NoColor:  cfg.NoColor,
		Colors:   colors,
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Primary)),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Success)),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Error)),
		warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Warning)),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted)),
	}
}

func (t *Theme) Title(s string) string {
	if t.NoColor {
		return s
	}
	return t.title.Render(s)
}

func (t *Theme) Success(s string) string {
	if t.NoColor {
		return s
	}
	return t.success.Render(s)
}

func (t *Theme) Error(s string) string {
	if t.NoColor {
		return s
	}
	return t.errStyle.Render(s)
}

func (t *Theme) Warning(s string) string {
	if t.NoColor {
		return s
	}
	return t.warning.Render(s)
}

func (t *Theme) Muted(s string) string {
	if t.NoColor {
		return s
	}
	return t.muted.Render(s)
}
