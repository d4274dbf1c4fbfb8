package hub

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slateos/slate/core"
)

// StandaloneModel hosts one standalone screen as its own bubbletea program
// step. It raises the continue and quit events toward the screen base, which
// owns the apply-before-advance ordering.
type StandaloneModel struct {
	screen   core.StandaloneScreen
	keys     *core.KeyRegistry
	width    int
	height   int
	status   string
	advanced bool
	aborted  bool
}

func NewStandaloneModel(screen core.StandaloneScreen, keys *core.KeyRegistry) *StandaloneModel {
	return &StandaloneModel{screen: screen, keys: keys, width: 100, height: 32}
}

// Advanced reports whether the user confirmed the screen.
func (m *StandaloneModel) Advanced() bool { return m.advanced }

// Aborted reports whether the user quit out of the flow.
func (m *StandaloneModel) Aborted() bool { return m.aborted }

func (m *StandaloneModel) Init() tea.Cmd { return nil }

func (m *StandaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case m.keys.IsAction(msg, "continue", "standalone"):
			if err := m.screen.OnContinue(func() { m.advanced = true }); err != nil {
				m.status = err.Error()
				return m, nil
			}
			return m, tea.Quit
		case m.keys.IsAction(msg, "quit", "standalone") || msg.Type == tea.KeyCtrlC:
			m.screen.OnQuit(func() { m.aborted = true })
			return m, tea.Quit
		}
	}
	if v, ok := m.screen.(View); ok {
		return m, v.UpdateView(msg)
	}
	return m, nil
}

func (m *StandaloneModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.screen.Title()))
	b.WriteString("\n\n")
	if v, ok := m.screen.(View); ok {
		b.WriteString(v.ViewContent(m.width, m.height-6))
	} else {
		b.WriteString(mutedStyle.Render(m.screen.Status()))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusErrBarStyle.Width(m.width).Render(" " + m.status))
		b.WriteString("\n")
	}
	var parts []string
	for _, kb := range m.keys.BindingsForScope("standalone") {
		if len(kb.Keys) == 0 {
			continue
		}
		parts = append(parts, keyStyle.Render(kb.Keys[0])+" "+helpDescStyle.Render(kb.Description))
	}
	b.WriteString(footerStyle.Width(m.width).Render(" " + strings.Join(parts, "  ")))
	return b.String()
}
