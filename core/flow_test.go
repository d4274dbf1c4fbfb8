package core

import "testing"

func newPlacedStandalone(t *testing.T, title string, placement Placement) *recordingStandalone {
	t.Helper()
	s := &recordingStandalone{calls: &[]string{}}
	base, err := NewStandalone(s, testDeps(), Meta{Title: title}, placement)
	if err != nil {
		t.Fatalf("construct %s: %v", title, err)
	}
	s.Standalone = base
	return s
}

func sequenceTitles(steps []Step) []string {
	out := make([]string, 0, len(steps))
	for _, st := range steps {
		if st.IsHub() {
			out = append(out, "hub:"+string(st.Hub))
			continue
		}
		out = append(out, st.Screen.Title())
	}
	return out
}

func TestSequencePostBeforeNextPre(t *testing.T) {
	post1 := newPlacedStandalone(t, "PostOne", PostHub("hub1").At(0))
	pre2 := newPlacedStandalone(t, "PreTwo", PreHub("hub2").At(0))

	// registration order reversed on purpose
	flow := NewFlow("hub1", "hub2")
	flow.Add(pre2)
	flow.Add(post1)

	got := sequenceTitles(flow.Sequence())
	want := []string{"hub:hub1", "PostOne", "PreTwo", "hub:hub2"}
	if len(got) != len(want) {
		t.Fatalf("sequence: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSequenceOrdersGroupByPriority(t *testing.T) {
	late := newPlacedStandalone(t, "Late", PreHub("hub1").At(DefaultPriority))
	early := newPlacedStandalone(t, "Early", PreHub("hub1").At(0))
	mid := newPlacedStandalone(t, "Mid", PreHub("hub1").At(50))

	flow := NewFlow("hub1")
	flow.Add(late)
	flow.Add(mid)
	flow.Add(early)

	got := sequenceTitles(flow.Sequence())
	want := []string{"Early", "Mid", "Late", "hub:hub1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("priority order: got %v, want %v", got, want)
		}
	}
}

func TestSequenceUnspecifiedPriorityRunsLate(t *testing.T) {
	quiet := newPlacedStandalone(t, "Quiet", PreHub("hub1"))
	first := newPlacedStandalone(t, "Welcome", PreHub("hub1").At(0))

	if got := quiet.Priority(); got != DefaultPriority {
		t.Fatalf("unspecified priority: got %d, want %d", got, DefaultPriority)
	}
	if got := first.Priority(); got != 0 {
		t.Fatalf("explicit zero priority: got %d", got)
	}

	flow := NewFlow("hub1")
	flow.Add(quiet)
	flow.Add(first)

	got := sequenceTitles(flow.Sequence())
	want := []string{"Welcome", "Quiet", "hub:hub1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("default must sort after explicit zero: got %v, want %v", got, want)
		}
	}
}

func TestSequenceBreaksPriorityTiesByTitle(t *testing.T) {
	b := newPlacedStandalone(t, "Bravo", PostHub("hub1").At(10))
	a := newPlacedStandalone(t, "Alpha", PostHub("hub1").At(10))

	flow := NewFlow("hub1")
	flow.Add(b)
	flow.Add(a)

	got := sequenceTitles(flow.Sequence())
	want := []string{"hub:hub1", "Alpha", "Bravo"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tie break: got %v, want %v", got, want)
		}
	}
}

func TestSequenceIgnoresUnplacedStandalones(t *testing.T) {
	free := newPlacedStandalone(t, "Free", Placement{})
	flow := NewFlow("hub1")
	flow.Add(free)

	got := sequenceTitles(flow.Sequence())
	if len(got) != 1 || got[0] != "hub:hub1" {
		t.Fatalf("unplaced screens are not auto-sequenced: %v", got)
	}
}
