// Package pointer keeps the latest pointer sample for the page.
package pointer

// Sample is a pointer position in window coordinates.
type Sample struct {
	X, Y float64
}

// Tracker holds the most recent sample and primary button state. Older
// samples are discarded; consumers cache what they need.
type Tracker struct {
	latest Sample
	seen   bool
	moved  bool

	down     bool
	pressed  bool
	released bool
}

// Update records this tick's raw input.
func (t *Tracker) Update(x, y float64, down bool) {
	s := Sample{X: x, Y: y}
	t.moved = !t.seen || s != t.latest
	t.latest = s
	t.seen = true

	t.pressed = down && !t.down
	t.released = !down && t.down
	t.down = down
}

// Latest returns the last sample, the zero Sample before any input.
func (t *Tracker) Latest() Sample {
	return t.latest
}

// Seen reports whether any sample has been recorded.
func (t *Tracker) Seen() bool {
	return t.seen
}

// Moved reports whether the position changed in the last Update.
func (t *Tracker) Moved() bool {
	return t.moved
}

func (t *Tracker) Down() bool {
	return t.down
}

// JustPressed reports a button press in the last Update.
func (t *Tracker) JustPressed() bool {
	return t.pressed
}

// JustReleased reports a button release in the last Update.
func (t *Tracker) JustReleased() bool {
	return t.released
}
