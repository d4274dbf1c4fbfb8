package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slateos/slate/core"
	"github.com/slateos/slate/hub"
	"github.com/slateos/slate/internal/catalog"
)

// Software selects the environment and add-on groups from the package
// catalog.
type Software struct {
	core.Normal

	mu       sync.Mutex
	envs     []catalog.Environment
	groups   []catalog.Group
	cursor   int
	picking  bool // true while choosing groups instead of environments
	env      string
	selected map[string]bool
	applied  bool
	valid    bool
	problem  string
	size     int64
}

func NewSoftware(deps core.Deps) (*Software, error) {
	s := &Software{selected: map[string]bool{}}
	base, err := core.NewNormal(s, deps,
		core.Meta{Category: hub.Summary, Title: "Software Selection", Icon: "📦"})
	if err != nil {
		return nil, err
	}
	s.Normal = base

	envs, err := deps.Payload.Environments(context.Background())
	if err != nil {
		return nil, fmt.Errorf("software screen: %w", err)
	}
	s.envs = envs

	s.env = deps.Profile.Software.Environment
	if s.env == "" {
		s.env = deps.Class.DefaultEnvironment()
	}
	for _, g := range deps.Profile.Software.Groups {
		s.selected[g] = true
	}
	s.applied = deps.Profile.Software.Environment != ""
	s.valid = s.applied
	return s, nil
}

func (s *Software) Apply() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Profile().Software.Environment = s.env
	groups := make([]string, 0, len(s.selected))
	for g, on := range s.selected {
		if on {
			groups = append(groups, g)
		}
	}
	s.Profile().Software.Groups = groups
	s.applied = true
	return nil
}

func (s *Software) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied && s.valid
}

func (s *Software) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.applied {
		return "Nothing selected"
	}
	if s.problem != "" {
		return s.problem
	}
	if s.size > 0 {
		return fmt.Sprintf("%s (%.1f GiB)", s.envName(s.env), float64(s.size)/(1<<30))
	}
	return s.envName(s.env)
}

func (s *Software) envName(id string) string {
	for _, e := range s.envs {
		if e.ID == id {
			return e.Name
		}
	}
	return id
}

// Check sizes the current selection against the catalog. Stale results from
// a previous, possibly killed, run are cleared before anything else.
func (s *Software) Check(tok *core.Token) {
	s.mu.Lock()
	s.valid = false
	s.problem = ""
	s.size = 0
	env := s.env
	applied := s.applied
	groups := make([]string, 0, len(s.selected))
	for g, on := range s.selected {
		if on {
			groups = append(groups, g)
		}
	}
	s.mu.Unlock()

	if !applied {
		return
	}
	if tok.Killed() {
		return
	}
	size, err := s.Payload().SelectionSize(context.Background(), env, groups)
	if err != nil {
		s.mu.Lock()
		s.problem = "Cannot size selection: " + err.Error()
		s.mu.Unlock()
		return
	}
	if tok.Killed() {
		return
	}
	s.mu.Lock()
	s.size = size
	s.valid = true
	s.mu.Unlock()
}

func (s *Software) UpdateView(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	limit := len(s.envs)
	if s.picking {
		limit = len(s.groups)
	}
	switch key.Type {
	case tea.KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case tea.KeyDown:
		if s.cursor < limit-1 {
			s.cursor++
		}
	case tea.KeyTab:
		s.picking = !s.picking
		s.cursor = 0
		if s.picking {
			s.loadGroupsLocked()
		}
	case tea.KeySpace, tea.KeyEnter:
		if s.picking {
			if s.cursor < len(s.groups) {
				id := s.groups[s.cursor].ID
				s.selected[id] = !s.selected[id]
			}
			return nil
		}
		if s.cursor < len(s.envs) {
			s.env = s.envs[s.cursor].ID
			// a new environment invalidates the old group picks
			s.selected = map[string]bool{}
			s.groups = nil
		}
		s.mu.Unlock()
		err := s.Apply()
		s.mu.Lock()
		return core.ErrorCmd(err)
	}
	return nil
}

func (s *Software) loadGroupsLocked() {
	groups, err := s.Payload().Groups(context.Background(), s.env)
	if err != nil {
		s.problem = "Cannot list groups: " + err.Error()
		return
	}
	s.groups = groups
}

func (s *Software) ViewContent(width, height int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	if s.picking {
		b.WriteString("Add-ons for " + s.envName(s.env) + " (tab for environments)\n\n")
		for i, g := range s.groups {
			marker := "  "
			if i == s.cursor {
				marker = "▶ "
			}
			box := "[ ]"
			if s.selected[g.ID] {
				box = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s%s %s  %.1f GiB\n", marker, box, g.Name, float64(g.SizeBytes)/(1<<30)))
		}
		return b.String()
	}
	b.WriteString("Base environment (tab for add-ons)\n\n")
	for i, e := range s.envs {
		marker := "  "
		if i == s.cursor {
			marker = "▶ "
		}
		chosen := " "
		if e.ID == s.env {
			chosen = "*"
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %.1f GiB\n", marker, chosen, e.Name, float64(e.SizeBytes)/(1<<30)))
	}
	return b.String()
}
