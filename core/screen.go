package core

import (
	"github.com/slateos/slate/internal/catalog"
	"github.com/slateos/slate/internal/instclass"
	"github.com/slateos/slate/internal/inventory"
	"github.com/slateos/slate/internal/profile"
)

// HubID names a hub variant. Screens are grouped under hubs by this
// identifier, and standalone screens sequence themselves around hubs with it.
type HubID string

// HubNone marks a screen that appears on no hub. Standalone screens shown
// before or after a hub do not need a category.
const HubNone HubID = ""

// Kind is the closed set of screen variants.
type Kind int

const (
	KindStandalone Kind = iota
	KindNormal
	KindPersonalization
)

func (k Kind) String() string {
	switch k {
	case KindStandalone:
		return "standalone"
	case KindNormal:
		return "normal"
	case KindPersonalization:
		return "personalization"
	}
	return "unknown"
}

// Screen is the capability contract every installer screen implements.
//
// The unexported kind method closes the set: a type can only satisfy Screen
// by embedding one of the variant bases in this package, so there is no way
// to construct a screen outside the standalone/normal/personalization split.
type Screen interface {
	// Apply writes the screen's current user selections into the shared
	// install profile. Every concrete screen must shadow the base method.
	Apply() error

	// Completed reports whether the screen has been visited and holds a
	// valid configuration. Hubs show a warning marker and refuse to start
	// the install while any screen reports false.
	Completed() bool

	// Status returns a one-line summary of the screen's configuration for
	// display under its title. Every concrete screen must shadow the base
	// method.
	Status() string

	Title() string
	Icon() string
	Category() HubID

	kind() Kind
	base() *Base
}

// KindOf reports which variant base a screen embeds.
func KindOf(s Screen) Kind { return s.kind() }

// Deps carries the collaborators handed to every screen at construction.
// Screens keep these by reference and never copy them; the profile is the
// only one they write to, and only from Apply.
type Deps struct {
	Profile   *profile.Profile
	Inventory inventory.Inventory
	Payload   catalog.Payload
	Class     instclass.Class
	Workers   *Workers
}

// Meta is the static identity a screen declares at construction.
type Meta struct {
	Category HubID
	Title    string
	Icon     string
}

// Base carries the state shared by every screen variant. It is only usable
// when embedded in a concrete screen and initialized through one of the
// variant constructors.
type Base struct {
	deps Deps
	meta Meta
	self Screen
}

func newBase(self Screen, deps Deps, meta Meta) (Base, error) {
	if self == nil {
		return Base{}, ErrAbstractScreen
	}
	return Base{deps: deps, meta: meta, self: self}, nil
}

// concrete reports whether the base was built through a variant constructor
// with a live outer screen.
func (b *Base) concrete() bool { return b.self != nil }

func (b *Base) base() *Base { return b }

// Apply is the base contract stub. Concrete screens must shadow it; reaching
// this implementation is a programming defect, not a runtime condition.
func (b *Base) Apply() error {
	panic("core: Apply not implemented for screen " + b.meta.Title)
}

// Completed defaults to false until a concrete screen reports otherwise.
func (b *Base) Completed() bool { return false }

// Status is the base contract stub. Concrete screens must shadow it.
func (b *Base) Status() string {
	panic("core: Status not implemented for screen " + b.meta.Title)
}

func (b *Base) Title() string   { return b.meta.Title }
func (b *Base) Icon() string    { return b.meta.Icon }
func (b *Base) Category() HubID { return b.meta.Category }

// Profile returns the shared install profile.
func (b *Base) Profile() *profile.Profile { return b.deps.Profile }

// Inventory returns the device inventory handle.
func (b *Base) Inventory() inventory.Inventory { return b.deps.Inventory }

// Payload returns the package catalog handle.
func (b *Base) Payload() catalog.Payload { return b.deps.Payload }

// Class returns the install class handle.
func (b *Base) Class() instclass.Class { return b.deps.Class }

func (b *Base) workers() *Workers { return b.deps.Workers }
