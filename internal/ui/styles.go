package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorDanger  = lipgloss.Color("#F56565")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorCyan    = lipgloss.Color("#00FFFF")
)

// Block palette, cycled in layout order. Pair 0 is the terminal default
// used for the root backdrop; 1..7 mirror the classic ANSI background
// pairs so nested blocks stay distinguishable on any terminal.
var pairStyles = [8]lipgloss.Style{
	lipgloss.NewStyle(),
	lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")),
	lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")),
	lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")),
	lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15")),
	lipgloss.NewStyle().Background(lipgloss.Color("5")).Foreground(lipgloss.Color("0")),
	lipgloss.NewStyle().Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0")),
	lipgloss.NewStyle().Background(lipgloss.Color("7")).Foreground(lipgloss.Color("0")),
}

func pairStyle(i int) lipgloss.Style {
	return pairStyles[i%len(pairStyles)]
}

// Chrome styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F1F23")).
			Padding(0, 1)

	AppNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C084FC")).
			Bold(true)

	HeaderPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E4E4E7"))

	HeaderHintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E4E4E7"))

	StatusDimStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusSizeStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	ScanStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)
)
