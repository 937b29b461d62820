package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorIndigo = lipgloss.Color("#6366f1")
	colorNavy   = lipgloss.Color("#312e81")
	colorText   = lipgloss.Color("#e0e7ff")
	colorDim    = lipgloss.Color("#8b949e")
	colorRed    = lipgloss.Color("#f87171")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorNavy).
			Padding(0, 2)

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorIndigo).
			Padding(1, 0, 0, 0)

	phaseStyle = lipgloss.NewStyle().
			Foreground(colorText)

	pausedStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			MarginTop(1)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorIndigo).
			Padding(1, 4).
			Align(lipgloss.Center)
)
