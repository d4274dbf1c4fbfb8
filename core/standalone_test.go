package core

import "testing"

type recordingStandalone struct {
	Standalone
	calls *[]string
}

func (s *recordingStandalone) Apply() error {
	*s.calls = append(*s.calls, "apply")
	return nil
}

func (s *recordingStandalone) Status() string { return "recording" }

func newRecordingStandalone(t *testing.T, placement Placement) (*recordingStandalone, *[]string) {
	t.Helper()
	calls := &[]string{}
	s := &recordingStandalone{calls: calls}
	base, err := NewStandalone(s, testDeps(), Meta{Title: "Recording"}, placement)
	if err != nil {
		t.Fatalf("construct standalone: %v", err)
	}
	s.Standalone = base
	return s, calls
}

func TestStandalonePlacementMutuallyExclusive(t *testing.T) {
	s := &recordingStandalone{calls: &[]string{}}
	_, err := NewStandalone(s, testDeps(), Meta{Title: "Bad"},
		Placement{pre: "hub1", post: "hub2"})
	if err != ErrHubPlacement {
		t.Fatalf("both pre and post set: got %v, want ErrHubPlacement", err)
	}

	for _, placement := range []Placement{
		{},
		PreHub("hub1"),
		PostHub("hub1"),
	} {
		if _, err := NewStandalone(s, testDeps(), Meta{Title: "OK"}, placement); err != nil {
			t.Fatalf("placement %+v should construct: %v", placement, err)
		}
	}
}

func TestOnContinueAppliesBeforeCallback(t *testing.T) {
	s, calls := newRecordingStandalone(t, PreHub("hub1"))
	err := s.OnContinue(func() { *calls = append(*calls, "cb") })
	if err != nil {
		t.Fatalf("continue: %v", err)
	}
	if len(*calls) != 2 || (*calls)[0] != "apply" || (*calls)[1] != "cb" {
		t.Fatalf("apply must run strictly before the callback, got %v", *calls)
	}
}

func TestOnQuitSkipsApply(t *testing.T) {
	s, calls := newRecordingStandalone(t, Placement{})
	s.OnQuit(func() { *calls = append(*calls, "cb") })
	if len(*calls) != 1 || (*calls)[0] != "cb" {
		t.Fatalf("quit must not apply, got %v", *calls)
	}
}
