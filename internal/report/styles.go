package report

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary  = lipgloss.Color("39")  // Blue
	colorMuted    = lipgloss.Color("240") // Dark gray
	colorNegative = lipgloss.Color("196") // Red
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	lossStyle   = numberStyle.Foreground(colorNegative)

	borderStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
