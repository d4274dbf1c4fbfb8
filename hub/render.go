package hub

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/slateos/slate/widgets"
)

func tileFor(s NormalScreen, selected bool) widgets.Tile {
	t := widgets.Tile{
		Title:    s.Title(),
		Icon:     s.Icon(),
		Selected: selected,
		Height:   5,
	}
	if !s.Ready() {
		t.Disabled = true
		return t
	}
	t.Status = s.Status()
	t.Warning = !s.Completed()
	return t
}

func joinHorizontal(tiles []string) string {
	if len(tiles) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
