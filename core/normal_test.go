package core

import (
	"sync"
	"testing"
	"time"
)

type checkedNormal struct {
	Normal

	mu           sync.Mutex
	runs         int
	killObserved []bool
	block        chan struct{} // closed to let a run finish without a kill
}

func (s *checkedNormal) Apply() error   { return nil }
func (s *checkedNormal) Status() string { return "checked" }

// Check blocks until killed or released, recording whether it saw the kill
// flag. Each run resets nothing shared; the run log keeps history.
func (s *checkedNormal) Check(tok *Token) {
	s.mu.Lock()
	s.runs++
	block := s.block
	s.mu.Unlock()
	for {
		if tok.Killed() {
			s.mu.Lock()
			s.killObserved = append(s.killObserved, true)
			s.mu.Unlock()
			return
		}
		select {
		case <-block:
			s.mu.Lock()
			s.killObserved = append(s.killObserved, false)
			s.mu.Unlock()
			return
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func newCheckedNormal(t *testing.T, deps Deps, title string) *checkedNormal {
	t.Helper()
	s := &checkedNormal{block: make(chan struct{})}
	n, err := NewNormal(s, deps, Meta{Category: "summary", Title: title})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	s.Normal = n
	return s
}

func TestCheckWorkerName(t *testing.T) {
	if got := CheckWorkerName("Foo"); got != "SlateFooCheck" {
		t.Fatalf("worker name: %s", got)
	}
	if got := CheckWorkerName("Installation Destination"); got != "SlateInstallationDestinationCheck" {
		t.Fatalf("worker name: %s", got)
	}
	// the naming rule collides for identical titles; hub assembly guards that
	if CheckWorkerName("A B") != CheckWorkerName("A  B") {
		t.Fatalf("whitespace must not distinguish worker names")
	}
}

func TestBackClickedStartsCheckWorker(t *testing.T) {
	deps := testDeps()
	s := newCheckedNormal(t, deps, "Foo")

	w := s.OnBackClicked()
	if w.Name() != "SlateFooCheck" {
		t.Fatalf("worker name: %s", w.Name())
	}
	reg, ok := deps.Workers.Get("SlateFooCheck")
	if !ok || reg != w {
		t.Fatalf("worker must be registered under the derived name")
	}
	if !w.Running() {
		t.Fatalf("check worker should be running")
	}
	w.Kill()
	w.Join()
}

func TestBackClickedKillsAndReplacesInFlightWorker(t *testing.T) {
	deps := testDeps()
	s := newCheckedNormal(t, deps, "Foo")

	old := s.OnBackClicked()
	waitFor(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.runs == 1
	})

	fresh := s.OnBackClicked()

	// the old worker observed its kill flag before the join returned
	if !old.KillRequested() {
		t.Fatalf("old worker kill flag must be set")
	}
	if old.Running() {
		t.Fatalf("old worker must be joined before the new one starts")
	}
	s.mu.Lock()
	if len(s.killObserved) != 1 || !s.killObserved[0] {
		t.Fatalf("old check body must observe the kill flag, log %v", s.killObserved)
	}
	s.mu.Unlock()

	// exactly one live worker remains, registered under the same name
	if fresh == old {
		t.Fatalf("a fresh worker must replace the old one")
	}
	reg, ok := deps.Workers.Get("SlateFooCheck")
	if !ok || reg != fresh {
		t.Fatalf("registry must hold the fresh worker")
	}
	if !fresh.Running() {
		t.Fatalf("fresh worker should be running")
	}
	waitFor(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.runs == 2
	})

	fresh.Kill()
	fresh.Join()
}

func TestBaseCheckIsNoOp(t *testing.T) {
	deps := testDeps()
	s := newPlainNormal(t, deps, "Quiet")
	w := s.OnBackClicked()
	w.Join() // default check returns immediately
	if w.KillRequested() {
		t.Fatalf("no kill should have been requested")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not reached in time")
}

func TestTokenReflectsWorkerKill(t *testing.T) {
	ws := NewWorkers()
	saw := make(chan bool, 1)
	w := ws.Start("tok", func(tok *Token) {
		for !tok.Killed() {
			time.Sleep(time.Millisecond)
		}
		saw <- tok.Killed()
	})
	w.Kill()
	w.Join()
	if !<-saw {
		t.Fatalf("token must report the kill")
	}
}
