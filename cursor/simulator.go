package cursor

import "github.com/automoto/startpage/frame"

// Target receives the transform each frame. A nil target skips the frame.
type Target interface {
	SetTransform(Transform)
}

// Simulator runs Step once per frame on a frame.Clock.
type Simulator struct {
	state  State
	live   *Config
	input  func() Input
	target Target
	loop   *frame.Loop
}

// NewSimulator reads its parameters from live and its input from input at
// the top of every tick.
func NewSimulator(live *Config, input func() Input) *Simulator {
	return &Simulator{state: NewState(), live: live, input: input}
}

// SetTarget attaches or detaches (nil) the visual.
func (s *Simulator) SetTarget(t Target) {
	s.target = t
}

func (s *Simulator) Start(clock *frame.Clock) {
	if s.loop == nil {
		s.loop = frame.NewLoop(clock, s.tick)
	}
	s.loop.Start()
}

func (s *Simulator) Stop() {
	if s.loop != nil {
		s.loop.Stop()
	}
}

func (s *Simulator) Running() bool {
	return s.loop != nil && s.loop.Running()
}

func (s *Simulator) tick(frame.Info) {
	if s.target == nil || s.input == nil || s.live == nil {
		return
	}
	s.state = Step(s.state, s.input(), *s.live)
	s.target.SetTransform(s.state.Transform())
}

func (s *Simulator) State() State {
	return s.state
}
