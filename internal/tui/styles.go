package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors.
const (
	ColorPrimary = "99"  // Violet - titles, active items
	ColorAccent  = "45"  // Cyan - highlights
	ColorMuted   = "245" // Gray - body copy
	ColorText    = "252" // Light gray - normal text
	ColorHidden  = "235" // Near background - steps not yet revealed
)

// Styles contains the shared style definitions.
var Styles = struct {
	Nav         lipgloss.Style // Navigation bar before scrolling
	NavScrolled lipgloss.Style // Navigation bar once the hero is out of view
	Heading     lipgloss.Style
	Title       lipgloss.Style
	Muted       lipgloss.Style
	Normal      lipgloss.Style
	Hint        lipgloss.Style

	StepCard       lipgloss.Style
	StepCardActive lipgloss.Style
	StepCardHidden lipgloss.Style

	Logo         lipgloss.Style
	LogoCursor   lipgloss.Style
	LogoSelected lipgloss.Style
	Panel        lipgloss.Style

	PixelOn  lipgloss.Style
	PixelOff lipgloss.Style
}{
	Nav: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	NavScrolled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("236")).
		Padding(0, 1),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)).
		MarginTop(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),

	StepCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	StepCardActive: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	StepCardHidden: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHidden)).
		Foreground(lipgloss.Color(ColorHidden)).
		Padding(0, 1),

	Logo: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	LogoCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	LogoSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)).
		Bold(true),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 2),

	PixelOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimary)),
	PixelOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHidden)),
}
