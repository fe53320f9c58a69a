package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorBlue     lipgloss.Color = "#007bff"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	aliveStyle  = lipgloss.NewStyle().Foreground(colorBlue)
	deadStyle   = lipgloss.NewStyle().Foreground(colorSurface1)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	labelStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
	valueStyle  = lipgloss.NewStyle().Foreground(colorText)
	runStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	stopStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	gridBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBlue)

	slotStyle         = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(colorOverlay0)
	slotSelectedStyle = slotStyle.BorderForeground(colorBlue).Foreground(colorBlue).Bold(true)
)
