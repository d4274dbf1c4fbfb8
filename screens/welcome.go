package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slateos/slate/core"
	"github.com/slateos/slate/hub"
)

var welcomeLocales = []struct {
	code string
	name string
}{
	{"en_US.UTF-8", "English (United States)"},
	{"en_GB.UTF-8", "English (United Kingdom)"},
	{"de_DE.UTF-8", "Deutsch (Deutschland)"},
	{"fr_FR.UTF-8", "Français (France)"},
	{"es_ES.UTF-8", "Español (España)"},
	{"ja_JP.UTF-8", "日本語 (日本)"},
}

// Welcome is the language pick shown before the summary hub.
type Welcome struct {
	core.Standalone
	cursor int
	chosen string
}

func NewWelcome(deps core.Deps) (*Welcome, error) {
	s := &Welcome{}
	base, err := core.NewStandalone(s, deps,
		core.Meta{Title: "Welcome", Icon: "🌐"},
		core.PreHub(hub.Summary).At(0))
	if err != nil {
		return nil, err
	}
	s.Standalone = base
	if cur := deps.Profile.Language.Locale; cur != "" {
		s.chosen = cur
		for i, l := range welcomeLocales {
			if l.code == cur {
				s.cursor = i
			}
		}
	}
	return s, nil
}

func (s *Welcome) Apply() error {
	s.chosen = welcomeLocales[s.cursor].code
	s.Profile().Language.Locale = s.chosen
	return nil
}

func (s *Welcome) Completed() bool { return s.chosen != "" }

func (s *Welcome) Status() string {
	if s.chosen == "" {
		return "Language not selected"
	}
	return welcomeLocales[s.cursor].name
}

func (s *Welcome) UpdateView(msg tea.Msg) tea.Cmd {
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
		if s.cursor < len(welcomeLocales)-1 {
			s.cursor++
		}
	}
	return nil
}

func (s *Welcome) ViewContent(width, height int) string {
	var b strings.Builder
	b.WriteString("Which language would you like to use during installation?\n\n")
	for i, l := range welcomeLocales {
		marker := "  "
		if i == s.cursor {
			marker = "▶ "
		}
		b.WriteString(marker + l.name + "\n")
	}
	return b.String()
}
