package hub

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/slateos/slate/core"
)

// NormalScreen is the surface a hub needs from screens on its selector grid.
// Concrete normal screens satisfy it through their embedded core.Normal.
type NormalScreen interface {
	core.Screen
	Ready() bool
	Selector() *core.Selector
	SetSelector(sel *core.Selector)
	OnBackClicked() *core.Worker
}

// View is implemented by screens that render themselves inside the hub
// chrome.
type View interface {
	UpdateView(msg tea.Msg) tea.Cmd
	ViewContent(width, height int) string
}

const gridColumns = 3

type readyTickMsg struct{}

// Model is the bubbletea model for one hub.
type Model struct {
	id    core.HubID
	title string
	deps  core.Deps
	keys  *core.KeyRegistry

	screens   []NormalScreen
	personal  []core.Screen
	announced map[string]bool // screens whose readiness was already reported

	selected       int
	active         int // -1 while the selector grid is shown
	activePersonal int // -1 unless a personalization screen overlays the install

	searching bool
	searchIn  textinput.Model
	results   []searchResult
	resultSel int

	installing bool
	prog       progress.Model
	fraction   float64

	// BeginInstall is invoked when the user starts the install with every
	// screen completed. Wired by the caller; nil leaves the key inert.
	BeginInstall func() tea.Cmd

	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

// New assembles a hub from the screens registered under its category.
// Normal screens land on the selector grid; personalization screens are held
// back for the install overlay. Duplicate titles are rejected because the
// validation worker name is derived from the title.
func New(id core.HubID, title string, reg *core.Registry, deps core.Deps, keys *core.KeyRegistry) (*Model, error) {
	in := textinput.New()
	in.Placeholder = "Find a screen"
	in.Prompt = "/ "

	m := &Model{
		id:             id,
		title:          title,
		deps:           deps,
		keys:           keys,
		active:         -1,
		activePersonal: -1,
		announced:      map[string]bool{},
		searchIn:       in,
		prog:           progress.New(progress.WithDefaultGradient()),
		status:         "Ready",
		width:          100,
		height:         32,
	}

	seen := map[string]bool{}
	for _, s := range reg.Collect(deps, id) {
		if seen[s.Title()] {
			return nil, fmt.Errorf("hub %s: duplicate screen title %q", id, s.Title())
		}
		seen[s.Title()] = true
		switch core.KindOf(s) {
		case core.KindPersonalization:
			m.personal = append(m.personal, s)
		case core.KindNormal:
			ns, ok := s.(NormalScreen)
			if !ok {
				return nil, fmt.Errorf("hub %s: screen %q does not satisfy the hub surface", id, s.Title())
			}
			m.screens = append(m.screens, ns)
		default:
			return nil, fmt.Errorf("hub %s: standalone screen %q cannot appear on a hub", id, s.Title())
		}
	}
	sort.Slice(m.screens, func(i, j int) bool { return m.screens[i].Title() < m.screens[j].Title() })
	for i, s := range m.screens {
		s.SetSelector(&core.Selector{Hub: id, Position: i})
	}
	return m, nil
}

// ID returns the hub's category identifier.
func (m *Model) ID() core.HubID { return m.id }

// StartInstalling switches the hub straight into its install overlay. Used
// by the progress hub, which exists only while the payload installs.
func (m *Model) StartInstalling() {
	m.installing = true
	m.status = "Installing"
}

// Screens returns the selector grid contents in display order.
func (m *Model) Screens() []NormalScreen { return m.screens }

// AllCompleted reports whether every grid screen holds a valid configuration.
// Installation may not begin until this is true.
func (m *Model) AllCompleted() bool {
	for _, s := range m.screens {
		if !s.Completed() {
			return false
		}
	}
	return true
}

func (m *Model) allReady() bool {
	for _, s := range m.screens {
		if !s.Ready() {
			return false
		}
	}
	return true
}

func (m *Model) Init() tea.Cmd {
	// screens that are ready from the start need no announcement
	for _, s := range m.screens {
		if s.Ready() {
			m.announced[s.Title()] = true
		}
	}
	if m.allReady() {
		return nil
	}
	return readyTick()
}

func readyTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return readyTickMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case readyTickMsg:
		var cmds []tea.Cmd
		for _, s := range m.screens {
			if s.Ready() && !m.announced[s.Title()] {
				m.announced[s.Title()] = true
				title := s.Title()
				cmds = append(cmds, func() tea.Msg { return core.ScreenReadyMsg{Title: title} })
			}
		}
		if !m.allReady() {
			cmds = append(cmds, readyTick())
		}
		return m, tea.Batch(cmds...)
	case core.StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case core.ScreenReadyMsg:
		m.status = msg.Title + " is ready"
		return m, nil
	case core.CheckStartedMsg:
		m.status = "Checking " + msg.Title
		return m, nil
	case core.EnterScreenMsg:
		return m, m.enterScreen(msg.Position)
	case core.LeaveScreenMsg:
		return m, m.leaveScreen()
	case core.InstallProgressMsg:
		m.fraction = msg.Fraction
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.active >= 0 {
		if v, ok := m.screens[m.active].(View); ok {
			return m, v.UpdateView(msg)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsAction(msg, "quit", "*") && !m.searching && m.active < 0 {
		m.quitting = true
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.installing {
		return m.handleInstallKey(msg)
	}

	if m.active >= 0 {
		if m.keys.IsAction(msg, "back", "screen") {
			return m, m.leaveScreen()
		}
		if v, ok := m.screens[m.active].(View); ok {
			return m, v.UpdateView(msg)
		}
		return m, nil
	}

	switch {
	case m.keys.IsAction(msg, "selector-prev", "hub"):
		m.moveSelection(-1)
	case m.keys.IsAction(msg, "selector-next", "hub"):
		m.moveSelection(1)
	case m.keys.IsAction(msg, "selector-up", "hub"):
		m.moveSelection(-gridColumns)
	case m.keys.IsAction(msg, "selector-down", "hub"):
		m.moveSelection(gridColumns)
	case m.keys.IsAction(msg, "enter-screen", "hub"):
		return m, m.enterScreen(m.selected)
	case m.keys.IsAction(msg, "search", "hub"):
		m.searching = true
		m.searchIn.SetValue("")
		m.searchIn.Focus()
		m.results = rankScreens(m.screenTitles(), "")
		m.resultSel = 0
	case m.keys.IsAction(msg, "begin-install", "hub"):
		if !m.AllCompleted() {
			m.status = "Complete all screens before beginning installation"
			m.statusErr = true
			return m, nil
		}
		m.installing = true
		m.status = "Installing"
		if m.BeginInstall != nil {
			return m, m.BeginInstall()
		}
	}
	return m, nil
}

// handleInstallKey drives the personalization overlay: screens of the
// progress hub can be visited while the payload installs underneath.
func (m *Model) handleInstallKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activePersonal >= 0 {
		s := m.personal[m.activePersonal]
		if m.keys.IsAction(msg, "back", "screen") {
			m.activePersonal = -1
			return m, core.ErrorCmd(s.Apply())
		}
		if v, ok := s.(View); ok {
			return m, v.UpdateView(msg)
		}
		return m, nil
	}
	switch {
	case m.keys.IsAction(msg, "selector-up", "hub"):
		if m.selected > 0 {
			m.selected--
		}
	case m.keys.IsAction(msg, "selector-down", "hub"):
		if m.selected < len(m.personal)-1 {
			m.selected++
		}
	case m.keys.IsAction(msg, "enter-screen", "hub"):
		if m.selected < len(m.personal) {
			m.activePersonal = m.selected
		}
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsAction(msg, "close", "hub:search"):
		m.searching = false
		return m, nil
	case m.keys.IsAction(msg, "select", "hub:search"):
		m.searching = false
		if m.resultSel < len(m.results) {
			position := m.results[m.resultSel].position
			return m, func() tea.Msg { return core.EnterScreenMsg{Position: position} }
		}
		return m, nil
	case msg.Type == tea.KeyUp:
		if m.resultSel > 0 {
			m.resultSel--
		}
		return m, nil
	case msg.Type == tea.KeyDown:
		if m.resultSel < len(m.results)-1 {
			m.resultSel++
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.searchIn, cmd = m.searchIn.Update(msg)
	m.results = rankScreens(m.screenTitles(), m.searchIn.Value())
	m.resultSel = 0
	return m, cmd
}

func (m *Model) screenTitles() []string {
	titles := make([]string, len(m.screens))
	for i, s := range m.screens {
		titles[i] = s.Title()
	}
	return titles
}

func (m *Model) moveSelection(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.screens) {
		return
	}
	m.selected = next
}

func (m *Model) enterScreen(position int) tea.Cmd {
	if position < 0 || position >= len(m.screens) {
		return nil
	}
	s := m.screens[position]
	if !s.Ready() {
		m.status = s.Title() + " is not ready yet"
		m.statusErr = true
		return nil
	}
	m.active = position
	m.selected = position
	m.status = s.Title()
	m.statusErr = false
	return nil
}

// leaveScreen returns to the selector grid and hands back-navigation to the
// screen base, which kills any stale validation worker and starts a fresh
// check. The join inside OnBackClicked is the one sanctioned blocking wait on
// the display loop.
func (m *Model) leaveScreen() tea.Cmd {
	if m.active < 0 {
		return nil
	}
	s := m.screens[m.active]
	m.active = -1
	w := s.OnBackClicked()
	return func() tea.Msg {
		return core.CheckStartedMsg{Title: s.Title(), Worker: w.Name()}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch {
	case m.installing:
		b.WriteString(m.viewInstall())
	case m.active >= 0:
		b.WriteString(m.viewScreen())
	case m.searching:
		b.WriteString(m.viewSearch())
	default:
		b.WriteString(m.viewGrid())
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewHeader() string {
	left := headerStyle.Render(m.title)
	right := mutedStyle.Render(string(m.id))
	gap := m.width - ansi.StringWidth(m.title) - ansi.StringWidth(string(m.id)) - 2
	if gap < 1 {
		gap = 1
	}
	return headerBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) viewGrid() string {
	if len(m.screens) == 0 {
		return mutedStyle.Render("No screens registered for this hub")
	}
	tileWidth := m.width/gridColumns - 1
	var rows []string
	for start := 0; start < len(m.screens); start += gridColumns {
		var tiles []string
		for i := start; i < start+gridColumns && i < len(m.screens); i++ {
			s := m.screens[i]
			t := tileFor(s, i == m.selected)
			tiles = append(tiles, t.Render(tileWidth, 5))
		}
		rows = append(rows, joinHorizontal(tiles))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewScreen() string {
	s := m.screens[m.active]
	if v, ok := s.(View); ok {
		return v.ViewContent(m.width, m.height-6)
	}
	return mutedStyle.Render(s.Title() + ": " + s.Status())
}

func (m *Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(m.searchIn.View())
	b.WriteString("\n\n")
	for i, r := range m.results {
		marker := "  "
		if i == m.resultSel {
			marker = "▶ "
		}
		b.WriteString(marker + r.title + "\n")
	}
	if len(m.results) == 0 {
		b.WriteString(mutedStyle.Render("No matching screens"))
	}
	return b.String()
}

func (m *Model) viewInstall() string {
	var b strings.Builder
	b.WriteString(m.prog.ViewAs(m.fraction))
	b.WriteString("\n\n")
	if m.activePersonal >= 0 {
		s := m.personal[m.activePersonal]
		if v, ok := s.(View); ok {
			b.WriteString(v.ViewContent(m.width, m.height-8))
		} else {
			b.WriteString(mutedStyle.Render(s.Title() + ": " + s.Status()))
		}
		return b.String()
	}
	if len(m.personal) == 0 {
		b.WriteString(mutedStyle.Render("Installing..."))
		return b.String()
	}
	for i, s := range m.personal {
		marker := "  "
		if i == m.selected {
			marker = "▶ "
		}
		line := marker + s.Title() + "  " + s.Status()
		if !s.Completed() {
			line += "  " + warnStyle.Render("!")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *Model) viewStatus() string {
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return style.Width(m.width).Render(" " + m.status)
}

func (m *Model) viewFooter() string {
	scope := "hub"
	if m.active >= 0 || m.activePersonal >= 0 {
		scope = "screen"
	}
	if m.searching {
		scope = "hub:search"
	}
	var parts []string
	for _, b := range m.keys.BindingsForScope(scope) {
		if len(b.Keys) == 0 {
			continue
		}
		parts = append(parts, keyStyle.Render(b.Keys[0])+" "+helpDescStyle.Render(b.Description))
	}
	return footerStyle.Width(m.width).Render(" " + strings.Join(parts, "  "))
}
