package hub

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarning)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)
