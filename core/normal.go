package core

import "strings"

// Checker is the validation hook a normal screen may shadow. The body runs on
// a background worker and must poll the token at safe points, cleaning up any
// partial state left by a previous run before doing new work.
type Checker interface {
	Check(tok *Token)
}

// Selector is the hub-side handle representing a normal screen on the hub's
// selector grid. It is unset until the hub assembles its layout.
type Selector struct {
	Hub      HubID
	Position int
}

// Normal is the base for screens entered from a hub. It owns the screen's
// validation worker lifecycle and the back-navigation handling.
type Normal struct {
	Base
	selector *Selector
	checker  Checker
}

// NewNormal builds the normal base for a concrete screen.
func NewNormal(self Screen, deps Deps, meta Meta) (Normal, error) {
	b, err := newBase(self, deps, meta)
	if err != nil {
		return Normal{}, err
	}
	n := Normal{Base: b}
	// Dispatch Check through the outer screen so a shadowed implementation
	// wins over the base no-op.
	if c, ok := self.(Checker); ok {
		n.checker = c
	}
	return n, nil
}

func (n *Normal) kind() Kind { return KindNormal }

// Check is the default validation body: nothing to verify.
func (n *Normal) Check(tok *Token) {}

// Ready reports whether the screen has all the information required to be
// displayed. Nearly every screen keeps this default; only screens waiting on
// a long-lived probe (such as device discovery) shadow it.
func (n *Normal) Ready() bool { return true }

// Selector returns the hub selector assigned to this screen, or nil before
// the hub has assembled its layout.
func (n *Normal) Selector() *Selector { return n.selector }

// SetSelector is called by the hub when it places the screen on its grid.
func (n *Normal) SetSelector(sel *Selector) { n.selector = sel }

// checkWorkerPrefix and suffix derive a validation worker name from the
// screen title. Two screens sharing a title would collide here; the hub
// assembly rejects duplicate titles for that reason.
const (
	checkWorkerPrefix = "Slate"
	checkWorkerSuffix = "Check"
)

// CheckWorkerName returns the registry name of the validation worker for a
// screen title: the title stripped of whitespace, wrapped in a fixed prefix
// and suffix.
func CheckWorkerName(title string) string {
	return checkWorkerPrefix + strings.Join(strings.Fields(title), "") + checkWorkerSuffix
}

// OnBackClicked handles the user navigating back from the screen to its hub.
//
// A screen may only have one validation worker running at a time. Any
// in-flight worker is asked to stop and joined before a fresh one starts, so
// a stale check can never race the new one. The join is a deliberate bounded
// wait: Check bodies honor the token promptly.
func (n *Normal) OnBackClicked() *Worker {
	name := CheckWorkerName(n.meta.Title)
	if old, ok := n.workers().Get(name); ok {
		old.Kill()
		old.Join()
	}
	body := n.Check
	if n.checker != nil {
		body = n.checker.Check
	}
	return n.workers().Start(name, body)
}
