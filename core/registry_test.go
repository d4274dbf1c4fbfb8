package core

import (
	"errors"
	"testing"
)

func categoryProvider(title string, category HubID) Provider {
	return func(deps Deps) (Screen, error) {
		s := &plainNormal{}
		n, err := NewNormal(s, deps, Meta{Category: category, Title: title})
		if err != nil {
			return nil, err
		}
		s.Normal = n
		return s, nil
	}
}

func TestCollectByCategory(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", categoryProvider("Alpha", "hub-a"))
	reg.Register("b", categoryProvider("Beta", "hub-b"))
	reg.Register("c", categoryProvider("Gamma", HubNone))
	deps := testDeps()

	got := reg.Collect(deps, "hub-a")
	if len(got) != 1 || got[0].Title() != "Alpha" {
		t.Fatalf("hub-a: got %d screens", len(got))
	}
	got = reg.Collect(deps, "hub-b")
	if len(got) != 1 || got[0].Title() != "Beta" {
		t.Fatalf("hub-b: got %d screens", len(got))
	}
	if got := reg.Collect(deps, "hub-z"); len(got) != 0 {
		t.Fatalf("unrelated category must return nothing, got %d", len(got))
	}
	if len(reg.Failures()) != 0 {
		t.Fatalf("no failures expected: %v", reg.Failures())
	}
}

func TestCollectSkipsFailingProviders(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry()
	reg.Register("good", categoryProvider("Good", "hub-a"))
	reg.Register("bad", func(deps Deps) (Screen, error) { return nil, boom })

	got := reg.Collect(testDeps(), "hub-a")
	if len(got) != 1 || got[0].Title() != "Good" {
		t.Fatalf("a broken provider must not hide the others, got %d", len(got))
	}
	if err := reg.Failures()["bad"]; !errors.Is(err, boom) {
		t.Fatalf("failure should be recorded: %v", err)
	}
}

func TestCollectRejectsBareBase(t *testing.T) {
	reg := NewRegistry()
	reg.Register("bare", func(deps Deps) (Screen, error) {
		return &plainNormal{}, nil // never went through NewNormal
	})
	if got := reg.Collect(testDeps(), "summary"); len(got) != 0 {
		t.Fatalf("a bare base must not be collected")
	}
	if err := reg.Failures()["bare"]; !errors.Is(err, ErrAbstractScreen) {
		t.Fatalf("abstract use should be recorded: %v", err)
	}
}
