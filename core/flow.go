package core

import "sort"

// StandaloneScreen is the surface Flow needs from a standalone screen.
type StandaloneScreen interface {
	Screen
	Placement() Placement
	Priority() int
	OnContinue(cb func()) error
	OnQuit(cb func())
}

// Step is one position in the assembled installer flow: either a hub or a
// standalone screen.
type Step struct {
	Hub    HubID
	Screen StandaloneScreen
}

// IsHub reports whether the step displays a hub rather than a standalone
// screen.
func (s Step) IsHub() bool { return s.Screen == nil }

// Flow sequences hubs and the standalone screens declared around them.
type Flow struct {
	hubs        []HubID
	standalones []StandaloneScreen
}

// NewFlow creates a flow over hubs in their display order.
func NewFlow(hubs ...HubID) *Flow {
	return &Flow{hubs: hubs}
}

// Add registers a standalone screen for sequencing. Screens with neither a
// pre nor a post hub are not auto-sequenced; the caller displays those
// explicitly.
func (f *Flow) Add(s StandaloneScreen) {
	if s == nil {
		return
	}
	f.standalones = append(f.standalones, s)
}

// Sequence returns the full ordered flow. All post actions for one hub run
// to completion before any pre action for the next hub; within each group,
// lower priority runs first, ties broken by title for determinism.
// Registration order never matters.
func (f *Flow) Sequence() []Step {
	var steps []Step
	for _, hub := range f.hubs {
		for _, s := range f.group(hub, true) {
			steps = append(steps, Step{Screen: s})
		}
		steps = append(steps, Step{Hub: hub})
		for _, s := range f.group(hub, false) {
			steps = append(steps, Step{Screen: s})
		}
	}
	return steps
}

func (f *Flow) group(hub HubID, pre bool) []StandaloneScreen {
	var out []StandaloneScreen
	for _, s := range f.standalones {
		p := s.Placement()
		if pre && p.Pre() == hub && p.Pre() != HubNone {
			out = append(out, s)
		}
		if !pre && p.Post() == hub && p.Post() != HubNone {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority() != out[j].Priority() {
			return out[i].Priority() < out[j].Priority()
		}
		return out[i].Title() < out[j].Title()
	})
	return out
}
