// Package frame provides the render clock that drives the page's animation
// loops. Each loop requests the next frame after it updates, and keeps the
// returned Handle so teardown can cancel the pending request.
//
// A Clock is not safe for concurrent use. It is advanced from the Ebiten
// update goroutine, which also runs every input handler.
package frame

// Info describes the frame a callback runs in.
type Info struct {
	Index int64   // frame counter, starting at 1
	Delta float64 // seconds since the previous frame
}

// Callback runs once, in the frame following its request.
type Callback func(Info)

type request struct {
	fn        Callback
	cancelled bool
	done      bool
}

// Handle is the cancellation token returned by RequestFrame.
// The zero Handle is valid and cancelling it is a no-op.
type Handle struct {
	req *request
}

// Cancel drops the request if it has not run yet.
func (h Handle) Cancel() {
	if h.req != nil {
		h.req.cancelled = true
	}
}

// Pending reports whether the request is still waiting for its frame.
func (h Handle) Pending() bool {
	return h.req != nil && !h.req.cancelled && !h.req.done
}

// Clock schedules per-frame callbacks.
type Clock struct {
	index   int64
	pending []*request
}

func NewClock() *Clock {
	return &Clock{}
}

// RequestFrame schedules fn for the next call to Advance. Requests made while
// a frame is running are deferred to the frame after it.
func (c *Clock) RequestFrame(fn Callback) Handle {
	if fn == nil {
		return Handle{}
	}
	r := &request{fn: fn}
	c.pending = append(c.pending, r)
	return Handle{req: r}
}

// Advance runs one frame: every callback requested before this call that was
// not cancelled, in request order. It returns how many callbacks ran.
func (c *Clock) Advance(dt float64) int {
	c.index++
	batch := c.pending
	c.pending = nil

	info := Info{Index: c.index, Delta: dt}
	ran := 0
	for _, r := range batch {
		// A callback earlier in the batch may cancel a later one.
		if r.cancelled {
			continue
		}
		r.done = true
		r.fn(info)
		ran++
	}
	return ran
}

// Pending returns the number of live requests waiting for the next frame.
func (c *Clock) Pending() int {
	n := 0
	for _, r := range c.pending {
		if !r.cancelled {
			n++
		}
	}
	return n
}

// Frame returns the index of the last frame that ran.
func (c *Clock) Frame() int64 {
	return c.index
}

// Loop is a self-rescheduling frame callback: it runs its step every frame
// from Start until Stop.
type Loop struct {
	clock  *Clock
	step   Callback
	handle Handle
}

func NewLoop(clock *Clock, step Callback) *Loop {
	return &Loop{clock: clock, step: step}
}

// Start schedules the first frame. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.handle.Pending() {
		return
	}
	l.handle = l.clock.RequestFrame(l.tick)
}

func (l *Loop) tick(info Info) {
	cur := l.handle.req
	l.step(info)
	// step may have stopped or restarted the loop
	if l.handle.req == cur && !cur.cancelled {
		l.handle = l.clock.RequestFrame(l.tick)
	}
}

// Stop cancels the pending frame. The loop can be started again.
func (l *Loop) Stop() {
	l.handle.Cancel()
}

// Running reports whether a frame is scheduled.
func (l *Loop) Running() bool {
	return l.handle.Pending()
}
