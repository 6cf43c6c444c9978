// Package animations holds tick driven frame counters.
package animations

// Animation cycles through frame indices, advancing every SpeedInTps ticks.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per advance
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	Looped       bool
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter <= 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart shows the first frame for a full period again.
func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// NewBlink returns a two frame animation that is on for frame 0 and off
// for frame 1, each lasting period ticks.
func NewBlink(period int) *Animation {
	if period < 1 {
		period = 1
	}
	return NewAnimation(0, 1, 1, float32(period))
}

// On reports whether a blink animation is in its visible half.
func (a *Animation) On() bool {
	return a.frame == a.First
}
