// Package styles holds the colour palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // Teal - focus, now playing
	Secondary lipgloss.Color // Amber - gradient end, accents

	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	BgCursor lipgloss.Color // Cursor/selection highlight

	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Dir     lipgloss.Style // Directories in the browser
	Playing lipgloss.Style // Entry currently playing
	Cursor  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	Panel      lipgloss.Style
	PanelFocus lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#2ec4b6"),
	Secondary: lipgloss.Color("#ff9f1c"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5f5f5f"),

	BgCursor: lipgloss.Color("#2b2b2b"),

	Border:      lipgloss.Color("#4e4e4e"),
	BorderFocus: lipgloss.Color("#2ec4b6"),

	Error:   lipgloss.Color("#e63946"),
	Warning: lipgloss.Color("#ff9f1c"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// PanelStyle returns the bordered panel style for the focus state.
func (t *Theme) PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return t.S().PanelFocus
	}
	return t.S().Panel
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	panel := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Dir:     lipgloss.NewStyle().Foreground(t.Secondary),
		Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),

		Panel:      panel.BorderForeground(t.Border),
		PanelFocus: panel.BorderForeground(t.BorderFocus),
	}
}
