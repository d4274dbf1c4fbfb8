package core

// Personalization is the base for screens shown while the install is already
// running, layered over the progress display. It carries no state beyond the
// shared base; the overlay placement is the hub's concern, not the screen's.
type Personalization struct {
	Base
}

// NewPersonalization builds the personalization base for a concrete screen.
func NewPersonalization(self Screen, deps Deps, meta Meta) (Personalization, error) {
	b, err := newBase(self, deps, meta)
	if err != nil {
		return Personalization{}, err
	}
	return Personalization{Base: b}, nil
}

func (p *Personalization) kind() Kind { return KindPersonalization }
