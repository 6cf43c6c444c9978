package pointer

import "testing"

func TestTrackerKeepsLatestSample(t *testing.T) {
	var tr Tracker
	if tr.Seen() {
		t.Fatalf("fresh tracker must not report a sample")
	}
	tr.Update(10, 20, false)
	tr.Update(30, 40, false)
	if got := tr.Latest(); got != (Sample{X: 30, Y: 40}) {
		t.Fatalf("expected latest sample (30,40), got %+v", got)
	}
	if !tr.Moved() {
		t.Fatalf("expected move to be reported")
	}
	tr.Update(30, 40, false)
	if tr.Moved() {
		t.Fatalf("unchanged position reported as a move")
	}
}

func TestTrackerButtonEdges(t *testing.T) {
	var tr Tracker
	tr.Update(0, 0, true)
	if !tr.JustPressed() || !tr.Down() {
		t.Fatalf("expected press edge")
	}
	tr.Update(0, 0, true)
	if tr.JustPressed() {
		t.Fatalf("held button reported as a new press")
	}
	tr.Update(0, 0, false)
	if !tr.JustReleased() || tr.Down() {
		t.Fatalf("expected release edge")
	}
}

func TestTrackerClickCompletesOnRelease(t *testing.T) {
	var tr Tracker
	releases := 0
	for _, down := range []bool{false, true, true, true, false, false} {
		tr.Update(5, 5, down)
		if tr.JustReleased() {
			releases++
			if tr.JustPressed() {
				t.Fatalf("a release frame must not also be a press")
			}
		}
	}
	if releases != 1 {
		t.Fatalf("expected one completed click, got %d", releases)
	}
}
