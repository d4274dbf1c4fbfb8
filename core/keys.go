package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// DefaultKeyBindings covers hub navigation and the screen-level events the
// presentation layer raises toward the screen bases.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: "quit", Description: "quit installer", Scopes: []string{"*"}},
		{Keys: []string{"left", "h"}, Action: "selector-prev", Description: "previous screen", Scopes: []string{"hub"}},
		{Keys: []string{"right", "l"}, Action: "selector-next", Description: "next screen", Scopes: []string{"hub"}},
		{Keys: []string{"up", "k"}, Action: "selector-up", Description: "screen above", Scopes: []string{"hub"}},
		{Keys: []string{"down", "j"}, Action: "selector-down", Description: "screen below", Scopes: []string{"hub"}},
		{Keys: []string{"enter"}, Action: "enter-screen", Description: "open screen", Scopes: []string{"hub"}},
		{Keys: []string{"/"}, Action: "search", Description: "find screen", Scopes: []string{"hub"}},
		{Keys: []string{"b"}, Action: "begin-install", Description: "begin installation", Scopes: []string{"hub"}},
		{Keys: []string{"esc"}, Action: "back", Description: "back to hub", Scopes: []string{"screen"}},
		{Keys: []string{"enter"}, Action: "continue", Description: "continue", Scopes: []string{"standalone"}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"standalone"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close search", Scopes: []string{"hub:search"}},
		{Keys: []string{"enter"}, Action: "select", Description: "jump to screen", Scopes: []string{"hub:search"}},
	}
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
