package hub

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorWarning lipgloss.Color = "#f9e2af"
	colorError   lipgloss.Color = "#f38ba8"
	colorMantle  lipgloss.Color = "#181825"
	colorSurface lipgloss.Color = "#313244"
)
