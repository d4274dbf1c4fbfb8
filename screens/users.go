package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slateos/slate/core"
	"github.com/slateos/slate/hub"
)

// UserAccount collects the initial user while the payload installs. It is a
// personalization screen: the progress hub overlays it on the running
// install.
type UserAccount struct {
	core.Personalization

	nameIn  textinput.Model
	fullIn  textinput.Model
	focus   int
	admin   bool
	applied bool
}

func NewUserAccount(deps core.Deps) (*UserAccount, error) {
	name := textinput.New()
	name.Placeholder = "login name"
	name.Prompt = "user> "
	name.Focus()
	full := textinput.New()
	full.Placeholder = "full name"
	full.Prompt = "name> "

	s := &UserAccount{nameIn: name, fullIn: full, admin: true}
	base, err := core.NewPersonalization(s, deps,
		core.Meta{Category: hub.Progress, Title: "User Creation", Icon: "👤"})
	if err != nil {
		return nil, err
	}
	s.Personalization = base
	if cur := deps.Profile.User.Name; cur != "" {
		s.nameIn.SetValue(cur)
		s.fullIn.SetValue(deps.Profile.User.FullName)
		s.admin = deps.Profile.User.Admin
		s.applied = true
	}
	return s, nil
}

func (s *UserAccount) Apply() error {
	s.Profile().User.Name = strings.TrimSpace(s.nameIn.Value())
	s.Profile().User.FullName = strings.TrimSpace(s.fullIn.Value())
	s.Profile().User.Admin = s.admin
	s.applied = s.Profile().User.Name != ""
	return nil
}

func (s *UserAccount) Completed() bool { return s.applied }

func (s *UserAccount) Status() string {
	if !s.applied {
		return "No user will be created"
	}
	name := strings.TrimSpace(s.nameIn.Value())
	if s.admin {
		return "Administrator " + name
	}
	return "User " + name
}

func (s *UserAccount) UpdateView(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab:
			s.focus = (s.focus + 1) % 2
			if s.focus == 0 {
				s.nameIn.Focus()
				s.fullIn.Blur()
			} else {
				s.nameIn.Blur()
				s.fullIn.Focus()
			}
			return nil
		case tea.KeyCtrlA:
			s.admin = !s.admin
			return nil
		case tea.KeyEnter:
			return core.ErrorCmd(s.Apply())
		}
	}
	var cmd tea.Cmd
	if s.focus == 0 {
		s.nameIn, cmd = s.nameIn.Update(msg)
	} else {
		s.fullIn, cmd = s.fullIn.Update(msg)
	}
	return cmd
}

func (s *UserAccount) ViewContent(width, height int) string {
	var b strings.Builder
	b.WriteString("Create a user for the installed system.\n\n")
	b.WriteString(s.nameIn.View() + "\n")
	b.WriteString(s.fullIn.View() + "\n\n")
	box := "[ ]"
	if s.admin {
		box = "[x]"
	}
	b.WriteString(box + " make this user administrator (ctrl+a)\n")
	return b.String()
}
