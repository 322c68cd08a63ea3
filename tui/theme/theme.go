package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- Kanagawa Dragon (dark) palette ---
const (
	darkGreen     = "#98BB6C"
	darkYellow    = "#FF9E3B"
	darkRed       = "#FF5D62"
	darkOrange    = "#FFA066"
	darkBlue      = "#7FB4CA"
	darkCyan      = "#7E9CD8"
	darkLightText = "#DCD7BA"
	darkMutedText = "#727169"
	darkBorder    = "#363646"
)

// Colors holds the active color palette.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Orange    lipgloss.TerminalColor
	Blue      lipgloss.TerminalColor
	Cyan      lipgloss.TerminalColor
	LightText lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
}

// DefaultColors exposes the active color palette selected for the current terminal.
var DefaultColors = resolveColors()

// Theme holds all the pre-configured styles for patrol.
type Theme struct {
	Colors Colors

	// Headers and titles
	Title lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style

	// Container styles
	Box lipgloss.Style

	// Change category styles - shared by the dashboard and the printer
	New      lipgloss.Style
	Added    lipgloss.Style
	Modified lipgloss.Style
	Deleted  lipgloss.Style
	Branch   lipgloss.Style
	Clean    lipgloss.Style
}

// DefaultTheme is the default theme instance.
var DefaultTheme = newTheme(DefaultColors)

func newTheme(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Title: lipgloss.NewStyle().Bold(true).Foreground(colors.Orange),

		Success: lipgloss.NewStyle().Foreground(colors.Green),
		Error:   lipgloss.NewStyle().Foreground(colors.Red),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow),
		Info:    lipgloss.NewStyle().Foreground(colors.Blue),

		Bold:   lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Muted:  lipgloss.NewStyle().Foreground(colors.MutedText),
		Accent: lipgloss.NewStyle().Foreground(colors.Orange),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		New:      lipgloss.NewStyle().Foreground(colors.Blue),
		Added:    lipgloss.NewStyle().Foreground(colors.Green),
		Modified: lipgloss.NewStyle().Foreground(colors.Yellow),
		Deleted:  lipgloss.NewStyle().Foreground(colors.Red),
		Branch:   lipgloss.NewStyle().Foreground(colors.Green),
		Clean:    lipgloss.NewStyle().Foreground(colors.Cyan).Italic(true),
	}
}

// resolveColors picks the palette. PATROL_THEME=terminal falls back to the
// terminal's own ANSI colors for maximum compatibility.
func resolveColors() Colors {
	switch strings.ToLower(os.Getenv("PATROL_THEME")) {
	case "terminal":
		return terminalColors()
	default:
		return kanagawaColors()
	}
}

func kanagawaColors() Colors {
	return Colors{
		Green:     lipgloss.Color(darkGreen),
		Yellow:    lipgloss.Color(darkYellow),
		Red:       lipgloss.Color(darkRed),
		Orange:    lipgloss.Color(darkOrange),
		Blue:      lipgloss.Color(darkBlue),
		Cyan:      lipgloss.Color(darkCyan),
		LightText: lipgloss.Color(darkLightText),
		MutedText: lipgloss.Color(darkMutedText),
		Border:    lipgloss.Color(darkBorder),
	}
}

func terminalColors() Colors {
	return Colors{
		Green:     lipgloss.Color("2"),
		Yellow:    lipgloss.Color("3"),
		Red:       lipgloss.Color("1"),
		Orange:    lipgloss.Color("3"),
		Blue:      lipgloss.Color("4"),
		Cyan:      lipgloss.Color("6"),
		LightText: lipgloss.Color("7"),
		MutedText: lipgloss.Color("8"),
		Border:    lipgloss.Color("8"),
	}
}
