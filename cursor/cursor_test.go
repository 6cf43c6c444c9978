package cursor

import (
	"math"
	"testing"

	"github.com/automoto/startpage/frame"
)

func started(x, y float64) State {
	s := NewState()
	s.Started = true
	s.X, s.Y = x, y
	s.LastX, s.LastY = x, y
	return s
}

func TestFirstStepSnapsToPointer(t *testing.T) {
	s := Step(NewState(), Input{X: 320, Y: 240}, DefaultConfig())
	if s.X != 320 || s.Y != 240 {
		t.Fatalf("expected snap to (320,240), got (%v,%v)", s.X, s.Y)
	}
	if s.FrameVX != 0 || s.FrameVY != 0 {
		t.Fatalf("snap must not register as motion")
	}
}

func TestSpringConverges(t *testing.T) {
	cfg := DefaultConfig()
	s := started(0, 0)
	in := Input{X: 500, Y: -300}

	// the spring is underdamped, so it may cross the band before settling
	lastOutside := 0
	for i := 1; i <= 240; i++ {
		s = Step(s, in, cfg)
		if math.Hypot(s.X-in.X, s.Y-in.Y) >= 1 {
			lastOutside = i
		}
	}
	if lastOutside >= 60 {
		t.Fatalf("cursor still outside the 1px band at frame %d", lastOutside)
	}
}

func TestSpringDoesNotDivergeAcrossIntensities(t *testing.T) {
	for _, intensity := range []float64{0, 0.25, 0.56, 1} {
		cfg := DefaultConfig()
		cfg.Intensity = intensity
		s := started(0, 0)
		for i := 0; i < 400; i++ {
			s = Step(s, Input{X: 100, Y: 100}, cfg)
		}
		if d := math.Hypot(s.X-100, s.Y-100); d > 1 {
			t.Errorf("intensity %v: still %vpx away after 400 frames", intensity, d)
		}
	}
}

func TestMagneticRegimeLerpsAndZeroesVelocity(t *testing.T) {
	s := started(0, 0)
	s.VX, s.VY = 5, 5
	s.Rotation = 10
	s.RotationVel = 3

	s = Step(s, Input{X: 100, Magnetic: true}, DefaultConfig())
	if math.Abs(s.X-20) > 1e-9 {
		t.Fatalf("expected x to move 20%% of the way, got %v", s.X)
	}
	if s.VX != 0 || s.VY != 0 || s.RotationVel != 0 {
		t.Fatalf("magnetic regime must zero velocities")
	}
	if math.Abs(s.Rotation-8) > 1e-9 {
		t.Fatalf("expected rotation to relax to 8, got %v", s.Rotation)
	}
}

func TestWobbleOnSuddenStop(t *testing.T) {
	cfg := DefaultConfig()
	s := started(100, 0)
	s.LastSpeed = 20

	free := Step(s, Input{X: 101}, cfg)
	want := -free.FrameVX * RotationIntensity(cfg.Intensity)
	if free.FrameVX <= 0 || math.Abs(free.RotationVel-want) > 1e-9 {
		t.Fatalf("expected rotation velocity %v, got %v", want, free.RotationVel)
	}

	magnetic := Step(s, Input{X: 101, Magnetic: true}, cfg)
	if magnetic.RotationVel != 0 {
		t.Fatalf("magnetic regime must not wobble, got %v", magnetic.RotationVel)
	}
}

func TestStretchAlongMotion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StretchIntensity = 1
	s := started(0, 0)
	for i := 0; i < 3; i++ {
		s = Step(s, Input{X: 1000}, cfg)
	}
	if s.ScaleY <= s.ScaleX {
		t.Fatalf("expected stretch along y, got sx=%v sy=%v", s.ScaleX, s.ScaleY)
	}
	// moving right: atan2(0, +) = 0, plus 90
	if math.Abs(s.StretchRotation-90) > 1e-6 {
		t.Fatalf("expected stretch axis at 90 degrees, got %v", s.StretchRotation)
	}
}

func TestScaleTargets(t *testing.T) {
	cfg := DefaultConfig()
	settle := func(in Input) State {
		s := started(0, 0)
		for i := 0; i < 200; i++ {
			s = Step(s, in, cfg)
		}
		return s
	}

	if s := settle(Input{}); math.Abs(s.ScaleX-0.8) > 1e-6 || math.Abs(s.ScaleY-0.8) > 1e-6 {
		t.Fatalf("free cursor must rest at 0.8, got %v x %v", s.ScaleX, s.ScaleY)
	}
	if s := settle(Input{Magnetic: true}); math.Abs(s.ScaleX-1) > 1e-6 {
		t.Fatalf("magnetic cursor must rest at 1.0, got %v", s.ScaleX)
	}
	if s := settle(Input{MouseDown: true}); math.Abs(s.ScaleX-0.4) > 1e-6 {
		t.Fatalf("pressed cursor must rest at half scale, got %v", s.ScaleX)
	}
	s := settle(Input{})
	if math.Abs(s.BorderWidth-BaseBorderWidth/0.8) > 1e-6 {
		t.Fatalf("expected border %v, got %v", BaseBorderWidth/0.8, s.BorderWidth)
	}
}

func TestBorderCompensationGuard(t *testing.T) {
	if got := compensateBorder(5, 0.5, 2); got != 8 {
		t.Fatalf("expected 8, got %v", got)
	}
	if got := compensateBorder(5, 0.1, 1); got != 5 {
		t.Fatalf("expected previous width at scale 0.1, got %v", got)
	}
	if got := compensateBorder(5, 0, 0); got != 5 || math.IsInf(got, 0) {
		t.Fatalf("expected previous width at zero scale, got %v", got)
	}
}

func TestAffineCentersVisual(t *testing.T) {
	tr := Transform{X: 200, Y: 100, ScaleX: 1, ScaleY: 1}
	x, y := tr.Affine(40, 40).Apply(20, 20)
	if math.Abs(x-200) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Fatalf("visual center must land on the cursor, got (%v,%v)", x, y)
	}

	tr.ScaleX, tr.ScaleY = 2, 0.5
	x, y = tr.Affine(40, 40).Apply(40, 20)
	if math.Abs(x-240) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Fatalf("expected scaled edge at (240,100), got (%v,%v)", x, y)
	}
}

type recordingTarget struct {
	frames []Transform
}

func (r *recordingTarget) SetTransform(t Transform) {
	r.frames = append(r.frames, t)
}

func TestSimulatorLoop(t *testing.T) {
	cfg := DefaultConfig()
	clock := frame.NewClock()
	sim := NewSimulator(&cfg, func() Input { return Input{X: 50, Y: 50} })

	sim.Start(clock)
	clock.Advance(0.016)
	if sim.State().Started {
		t.Fatalf("simulator stepped without a target")
	}

	target := &recordingTarget{}
	sim.SetTarget(target)
	for i := 0; i < 3; i++ {
		clock.Advance(0.016)
	}
	if len(target.frames) != 3 {
		t.Fatalf("expected 3 transforms, got %d", len(target.frames))
	}

	sim.Stop()
	clock.Advance(0.016)
	if len(target.frames) != 3 || sim.Running() {
		t.Fatalf("simulator kept running after Stop")
	}
}
