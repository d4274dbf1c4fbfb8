package core

// DefaultPriority is the ordering weight of standalone screens that declare
// no preference. Lower values run earlier within a pre or post group; a
// screen that must run first declares something below this through At.
const DefaultPriority = 100

// Placement declares where a standalone screen runs relative to a hub. It is
// built through PreHub or PostHub so a screen that never calls At still
// sorts at DefaultPriority, while an explicit At(0) stays distinguishable
// from "unspecified".
type Placement struct {
	pre      HubID
	post     HubID
	priority int
	explicit bool
}

// PreHub places a screen before the hub, at DefaultPriority.
func PreHub(h HubID) Placement { return Placement{pre: h} }

// PostHub places a screen after the hub, at DefaultPriority.
func PostHub(h HubID) Placement { return Placement{post: h} }

// At overrides the ordering weight within the screen's pre or post group.
func (p Placement) At(priority int) Placement {
	p.priority = priority
	p.explicit = true
	return p
}

// Pre returns the hub the screen runs before, or HubNone.
func (p Placement) Pre() HubID { return p.pre }

// Post returns the hub the screen runs after, or HubNone.
func (p Placement) Post() HubID { return p.post }

// Priority returns the screen's ordering weight, DefaultPriority unless At
// was called.
func (p Placement) Priority() int {
	if !p.explicit {
		return DefaultPriority
	}
	return p.priority
}

// Standalone is the base for screens displayed apart from any hub, such as a
// welcome screen. It provides the continue/quit event hooks and the pre/post
// hub sequencing metadata consumed by Flow.
type Standalone struct {
	Base
	placement Placement
}

// NewStandalone builds the standalone base for a concrete screen. Declaring
// both a pre and a post hub is a construction-time error.
func NewStandalone(self Screen, deps Deps, meta Meta, placement Placement) (Standalone, error) {
	if placement.pre != HubNone && placement.post != HubNone {
		return Standalone{}, ErrHubPlacement
	}
	b, err := newBase(self, deps, meta)
	if err != nil {
		return Standalone{}, err
	}
	return Standalone{Base: b, placement: placement}, nil
}

func (s *Standalone) kind() Kind { return KindStandalone }

// Placement returns the screen's hub sequencing metadata.
func (s *Standalone) Placement() Placement { return s.placement }

// Priority returns the ordering weight within the screen's pre or post group.
func (s *Standalone) Priority() int { return s.placement.Priority() }

// OnContinue handles the user confirming the screen. The screen's selections
// are applied before the flow advances, never the other way around.
func (s *Standalone) OnContinue(cb func()) error {
	if err := s.self.Apply(); err != nil {
		return err
	}
	cb()
	return nil
}

// OnQuit handles the user aborting. No selections are applied.
func (s *Standalone) OnQuit(cb func()) {
	cb()
}
