package frame

import "testing"

func TestAdvanceRunsRequestsInOrder(t *testing.T) {
	c := NewClock()
	var got []int
	c.RequestFrame(func(Info) { got = append(got, 1) })
	c.RequestFrame(func(Info) { got = append(got, 2) })

	if ran := c.Advance(1.0 / 60); ran != 2 {
		t.Fatalf("expected 2 callbacks, got %d", ran)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}
	if c.Advance(1.0/60) != 0 {
		t.Fatalf("callbacks must run only once")
	}
}

func TestRequestDuringFrameRunsNextFrame(t *testing.T) {
	c := NewClock()
	var frames []int64
	c.RequestFrame(func(info Info) {
		frames = append(frames, info.Index)
		c.RequestFrame(func(info Info) {
			frames = append(frames, info.Index)
		})
	})

	c.Advance(0.016)
	if len(frames) != 1 {
		t.Fatalf("nested request ran in the same frame: %v", frames)
	}
	c.Advance(0.016)
	if len(frames) != 2 || frames[1] != 2 {
		t.Fatalf("expected nested request in frame 2, got %v", frames)
	}
}

func TestCancel(t *testing.T) {
	c := NewClock()
	ran := false
	h := c.RequestFrame(func(Info) { ran = true })
	if !h.Pending() {
		t.Fatalf("expected handle to be pending")
	}
	h.Cancel()
	if c.Pending() != 0 {
		t.Fatalf("expected no pending requests, got %d", c.Pending())
	}
	c.Advance(0.016)
	if ran {
		t.Fatalf("cancelled callback ran")
	}

	var zero Handle
	zero.Cancel()
	if zero.Pending() {
		t.Fatalf("zero handle must not be pending")
	}
}

func TestCancelLaterRequestFromEarlierCallback(t *testing.T) {
	c := NewClock()
	ran := false
	var later Handle
	c.RequestFrame(func(Info) { later.Cancel() })
	later = c.RequestFrame(func(Info) { ran = true })

	c.Advance(0.016)
	if ran {
		t.Fatalf("callback cancelled mid-frame still ran")
	}
}

func TestLoopStartStop(t *testing.T) {
	c := NewClock()
	ticks := 0
	l := NewLoop(c, func(Info) { ticks++ })
	l.Start()
	l.Start()

	for i := 0; i < 5; i++ {
		c.Advance(0.016)
	}
	if ticks != 5 {
		t.Fatalf("expected 5 ticks, got %d", ticks)
	}

	l.Stop()
	if l.Running() {
		t.Fatalf("loop still running after Stop")
	}
	c.Advance(0.016)
	if ticks != 5 {
		t.Fatalf("loop ticked after Stop")
	}
	if c.Pending() != 0 {
		t.Fatalf("stopped loop left %d pending requests", c.Pending())
	}
}

func TestLoopStopFromStep(t *testing.T) {
	c := NewClock()
	ticks := 0
	var l *Loop
	l = NewLoop(c, func(Info) {
		ticks++
		if ticks == 3 {
			l.Stop()
		}
	})
	l.Start()
	for i := 0; i < 10; i++ {
		c.Advance(0.016)
	}
	if ticks != 3 {
		t.Fatalf("expected loop to stop after 3 ticks, got %d", ticks)
	}
}

func TestLoopRestartFromStepSchedulesOnce(t *testing.T) {
	c := NewClock()
	var l *Loop
	l = NewLoop(c, func(Info) {
		l.Stop()
		l.Start()
	})
	l.Start()
	c.Advance(0.016)
	if c.Pending() != 1 {
		t.Fatalf("expected exactly one pending frame, got %d", c.Pending())
	}
}
