package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tile renders one screen entry on a hub's selector grid: the screen title in
// the border, an icon and status summary inside, and a warning marker when
// the screen has not been completed yet.
type Tile struct {
	Title    string
	Icon     string
	Status   string
	Warning  bool
	Selected bool
	Disabled bool
	Height   int
}

func (t Tile) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	h := t.Height
	if h < 3 {
		h = 3
	}
	if height > 0 && h > height {
		h = height
	}
	if width < 4 {
		width = 4
	}

	border := lipgloss.Color("#6c7086")
	if t.Selected {
		border = lipgloss.Color("#89b4fa")
	}
	if t.Warning {
		border = lipgloss.Color("#f9e2af")
	}
	if t.Disabled {
		border = lipgloss.Color("#45475a")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	if t.Disabled {
		titleStyle = titleStyle.Foreground(lipgloss.Color("#7f849c")).Bold(false)
		contentStyle = contentStyle.Foreground(lipgloss.Color("#7f849c"))
	}

	titlePrefix := "  "
	if t.Selected {
		titlePrefix = "▶ "
	}
	if t.Warning {
		titlePrefix = "! "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
		width = innerWidth + 2
	}

	title := strings.TrimSpace(titlePrefix + t.Title)
	titleText := " " + title + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
	}
	titleW := ansi.StringWidth(titleText)
	dashes := innerWidth - titleW
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if dashes == 0 {
		leftDash = 0
	} else if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	content := t.Status
	if t.Icon != "" {
		content = t.Icon + " " + content
	}
	if t.Disabled {
		content = "probing..."
	}

	innerHeight := h - 2
	contentLines := splitLines(content)
	if len(contentLines) == 0 {
		contentLines = []string{""}
	}
	rows := make([]string, 0, innerHeight+2)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = ansi.Truncate(line, contentWidth, "")
		line = contentStyle.Render(line)
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	bottom := borderStyle.Render("╰") + borderStyle.Render(strings.Repeat("─", innerWidth)) + borderStyle.Render("╯")
	rows = append(rows, bottom)

	return strings.Join(rows, "\n")
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
