// Package theme holds the colours and styles shared by the console views.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#1877F2")
	gray   = lipgloss.Color("#828282")

	Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(1, 0)

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Width(14)

	Hint = lipgloss.NewStyle().
		Foreground(gray)

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5555"))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#50FA7B"))

	Message = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F1FA8C"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	Focused = lipgloss.NewStyle().
		Foreground(accent)

	LogPane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#585B70")).
		Padding(0, 1)
)
