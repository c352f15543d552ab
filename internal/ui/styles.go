package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorMuted  = lipgloss.Color("8")
	colorBorder = lipgloss.Color("240")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(colorRed)
	statsStyle = lipgloss.NewStyle().Foreground(colorYellow)
	winStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	faceUpStyle = tileStyle.
			BorderForeground(colorYellow)

	matchedStyle = tileStyle.
			BorderForeground(colorGreen).
			Faint(true)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)
