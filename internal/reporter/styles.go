package reporter

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))
)
