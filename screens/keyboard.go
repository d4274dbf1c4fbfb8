package screens

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slateos/slate/core"
	"github.com/slateos/slate/hub"
)

var keyboardLayouts = []string{"us", "uk", "de", "fr", "es", "jp"}

// Keyboard configures the console keyboard layout.
type Keyboard struct {
	core.Normal

	mu      sync.Mutex
	cursor  int
	applied string
	valid   bool
	problem string
}

func NewKeyboard(deps core.Deps) (*Keyboard, error) {
	s := &Keyboard{}
	base, err := core.NewNormal(s, deps,
		core.Meta{Category: hub.Summary, Title: "Keyboard", Icon: "⌨"})
	if err != nil {
		return nil, err
	}
	s.Normal = base
	if cur := deps.Profile.Keyboard.Layout; cur != "" {
		s.applied = cur
		s.valid = true
		for i, l := range keyboardLayouts {
			if l == cur {
				s.cursor = i
			}
		}
	}
	return s, nil
}

func (s *Keyboard) Apply() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = keyboardLayouts[s.cursor]
	s.Profile().Keyboard.Layout = s.applied
	return nil
}

func (s *Keyboard) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied != "" && s.valid
}

func (s *Keyboard) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applied == "" {
		return "Layout not selected"
	}
	if s.problem != "" {
		return s.problem
	}
	return "Layout: " + s.applied
}

// Check verifies the applied layout is one the console can load. Any verdict
// from an interrupted previous run is discarded first.
func (s *Keyboard) Check(tok *core.Token) {
	s.mu.Lock()
	s.valid = false
	s.problem = ""
	layout := s.applied
	s.mu.Unlock()

	if layout == "" {
		return
	}
	for _, known := range keyboardLayouts {
		if tok.Killed() {
			return
		}
		if known == layout {
			s.mu.Lock()
			s.valid = true
			s.mu.Unlock()
			return
		}
	}
	s.mu.Lock()
	s.problem = "Unknown layout " + layout
	s.mu.Unlock()
}

func (s *Keyboard) UpdateView(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.Type {
	case tea.KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case tea.KeyDown:
		if s.cursor < len(keyboardLayouts)-1 {
			s.cursor++
		}
	case tea.KeySpace:
		if err := s.Apply(); err != nil {
			return core.ErrorCmd(err)
		}
		return core.StatusCmd("Keyboard layout applied")
	case tea.KeyEnter:
		// apply and hand navigation back to the hub
		if err := s.Apply(); err != nil {
			return core.ErrorCmd(err)
		}
		return func() tea.Msg { return core.LeaveScreenMsg{} }
	}
	return nil
}

func (s *Keyboard) ViewContent(width, height int) string {
	var b strings.Builder
	b.WriteString("Select the keyboard layout for the installed system.\n\n")
	for i, l := range keyboardLayouts {
		marker := "  "
		if i == s.cursor {
			marker = "▶ "
		}
		chosen := " "
		if l == s.applied {
			chosen = "*"
		}
		b.WriteString(marker + chosen + " " + l + "\n")
	}
	return b.String()
}
