// Package instclass describes distribution-specific install defaults.
package instclass

// Class answers distribution policy questions: which software environment and
// partition scheme to preselect when the user has not chosen yet.
type Class interface {
	Name() string
	DefaultEnvironment() string
	DefaultScheme() string
}

// Base is the stock install class used when no distribution override is
// registered.
type Base struct {
	ClassName   string
	Environment string
	Scheme      string
}

func Default() Base {
	return Base{
		ClassName:   "slate",
		Environment: "minimal",
		Scheme:      "lvm",
	}
}

func (b Base) Name() string               { return b.ClassName }
func (b Base) DefaultEnvironment() string { return b.Environment }
func (b Base) DefaultScheme() string      { return b.Scheme }
