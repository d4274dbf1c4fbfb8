package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// ScreenReadyMsg announces that a screen waiting on an external probe can now
// be displayed.
type ScreenReadyMsg struct {
	Title string
}

// CheckStartedMsg announces a fresh validation worker for a screen.
type CheckStartedMsg struct {
	Title  string
	Worker string
}

// EnterScreenMsg asks the hub to display the screen at the given selector
// position.
type EnterScreenMsg struct {
	Position int
}

// LeaveScreenMsg asks the hub to return to its selector grid.
type LeaveScreenMsg struct{}

// InstallProgressMsg carries payload installation progress for the hub's
// overlay, in the range [0, 1].
type InstallProgressMsg struct {
	Fraction float64
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
