package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slateos/slate/core"
	"github.com/slateos/slate/hub"
	"github.com/slateos/slate/internal/inventory"
)

// Storage picks the install target device. It is the one screen that waits on
// a long-lived probe: it reports not ready until device discovery completes.
type Storage struct {
	core.Normal

	mu      sync.Mutex
	cursor  int
	applied string
	valid   bool
	problem string
}

func NewStorage(deps core.Deps) (*Storage, error) {
	s := &Storage{}
	base, err := core.NewNormal(s, deps,
		core.Meta{Category: hub.Summary, Title: "Installation Destination", Icon: "💾"})
	if err != nil {
		return nil, err
	}
	s.Normal = base
	if cur := deps.Profile.Storage.Device; cur != "" {
		s.applied = cur
	}
	return s, nil
}

// Ready gates display on the background device probe.
func (s *Storage) Ready() bool { return s.Inventory().Probed() }

func (s *Storage) Apply() error {
	devices := s.Inventory().Devices()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(devices) {
		return fmt.Errorf("storage: no device selected")
	}
	s.applied = devices[s.cursor].Name
	s.Profile().Storage.Device = s.applied
	if s.Profile().Storage.Scheme == "" {
		s.Profile().Storage.Scheme = s.Class().DefaultScheme()
	}
	return nil
}

func (s *Storage) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied != "" && s.valid
}

func (s *Storage) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applied == "" {
		return "No disk selected"
	}
	if s.problem != "" {
		return s.problem
	}
	return "Install target: " + s.applied
}

// Check verifies the chosen device still exists and is large enough for the
// selected software. It first resets the verdict of any previous run,
// including one killed mid-flight.
func (s *Storage) Check(tok *core.Token) {
	s.mu.Lock()
	s.valid = false
	s.problem = ""
	device := s.applied
	s.mu.Unlock()

	if device == "" {
		return
	}

	var target *inventory.Device
	for _, d := range s.Inventory().Devices() {
		if tok.Killed() {
			return
		}
		if d.Name == device {
			target = &d
			break
		}
	}
	if target == nil {
		s.fail("Disk " + device + " disappeared")
		return
	}

	if tok.Killed() {
		return
	}
	need, err := s.Payload().SelectionSize(context.Background(),
		s.Profile().Software.Environment, s.Profile().Software.Groups)
	if err != nil {
		s.fail("Cannot size selection: " + err.Error())
		return
	}
	if tok.Killed() {
		return
	}
	if need > 0 && target.SizeBytes < need {
		s.fail(fmt.Sprintf("Disk %s too small: need %d bytes", device, need))
		return
	}

	s.mu.Lock()
	s.valid = true
	s.mu.Unlock()
}

func (s *Storage) fail(problem string) {
	s.mu.Lock()
	s.problem = problem
	s.mu.Unlock()
}

func (s *Storage) UpdateView(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := len(s.Inventory().Devices())
	switch key.Type {
	case tea.KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case tea.KeyDown:
		if s.cursor < n-1 {
			s.cursor++
		}
	case tea.KeySpace, tea.KeyEnter:
		return core.ErrorCmd(s.Apply())
	}
	return nil
}

func (s *Storage) ViewContent(width, height int) string {
	var b strings.Builder
	b.WriteString("Select the disk to install to.\n\n")
	for i, d := range s.Inventory().Devices() {
		marker := "  "
		if i == s.cursor {
			marker = "▶ "
		}
		chosen := " "
		if d.Name == s.applied {
			chosen = "*"
		}
		extra := ""
		if d.Removable {
			extra = " (removable)"
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %.1f GiB%s\n", marker, chosen, d.Name,
			float64(d.SizeBytes)/(1<<30), extra))
	}
	return b.String()
}
