package tui

import "github.com/charmbracelet/lipgloss"

var (
	appTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#58a6ff"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c9d1d9"))

	bylineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8b949e"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a5d6ff")).
			Underline(true)

	positionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8b949e"))

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffa657"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f85149"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7ee787"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8b949e"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d2a8ff"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Padding(1, 2)

	cursorLineStyle = lipgloss.NewStyle().
			Reverse(true)
)
