package core

import (
	"fmt"
	"sort"
	"sync"
)

// Provider builds one screen for an installer session. Providers register by
// name at startup; nothing scans modules at runtime.
type Provider func(deps Deps) (Screen, error)

// Registry maps provider names to screen constructors and collects the
// screens belonging to a hub. A provider that fails to build is skipped and
// recorded, never fatal to the rest of the scan.
type Registry struct {
	mu        sync.Mutex
	providers map[string]Provider
	failures  map[string]error
}

func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		failures:  make(map[string]error),
	}
}

// Register adds a named provider. A duplicate name replaces the previous
// provider.
func (r *Registry) Register(name string, p Provider) {
	if name == "" || p == nil {
		return
	}
	r.mu.Lock()
	r.providers[name] = p
	r.mu.Unlock()
}

// Collect builds every registered screen and returns those declaring the
// requested hub as their category. Screens without a category and screens of
// other hubs are excluded. Build failures are recorded under the provider
// name and the scan continues.
func (r *Registry) Collect(deps Deps, hub HubID) []Screen {
	r.mu.Lock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	r.mu.Unlock()

	var out []Screen
	for _, name := range names {
		r.mu.Lock()
		p := r.providers[name]
		r.mu.Unlock()

		s, err := p(deps)
		if err != nil {
			r.recordFailure(name, err)
			continue
		}
		if s == nil || !s.base().concrete() {
			r.recordFailure(name, fmt.Errorf("provider %q: %w", name, ErrAbstractScreen))
			continue
		}
		if s.Category() == HubNone || s.Category() != hub {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Failures returns the provider errors recorded by previous Collect calls.
func (r *Registry) Failures() map[string]error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]error, len(r.failures))
	for k, v := range r.failures {
		out[k] = v
	}
	return out
}

func (r *Registry) recordFailure(name string, err error) {
	r.mu.Lock()
	r.failures[name] = err
	r.mu.Unlock()
}
