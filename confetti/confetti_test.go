package confetti

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/startpage/frame"
)

type recordingSurface struct {
	t      *testing.T
	clears int
	fills  int
}

func (r *recordingSurface) Clear() { r.clears++ }

func (r *recordingSurface) FillSquare(x, y, size, rotation float64, c color.RGBA, alpha float64) {
	if alpha <= 0 {
		r.t.Fatalf("particle drawn with alpha %v", alpha)
	}
	r.fills++
}

func newSystem(cfg *Config) *System {
	return NewSystem(cfg, rand.New(rand.NewPCG(1, 2)))
}

func TestCreateAddsCountImmediately(t *testing.T) {
	cfg := DefaultConfig()
	s := newSystem(&cfg)
	s.Create(100, 100, cfg)
	if s.Len() != 20 {
		t.Fatalf("expected 20 particles, got %d", s.Len())
	}
	s.Create(50, 50, cfg)
	if s.Len() != 40 {
		t.Fatalf("expected 40 particles, got %d", s.Len())
	}
}

func TestSpawnRanges(t *testing.T) {
	cfg := Config{Count: 200, Size: 4, Velocity: 6, Gravity: 0.3, FadeOut: 0.01}
	s := newSystem(&cfg)
	s.Create(10, 20, cfg)

	for i, p := range s.Particles() {
		speed := math.Hypot(p.VX, p.VY)
		if speed < minSpeed-1e-9 || speed >= minSpeed+cfg.Velocity {
			t.Fatalf("particle %d: speed %v out of range", i, speed)
		}
		if p.Size < minSize || p.Size >= minSize+cfg.Size {
			t.Fatalf("particle %d: size %v out of range", i, p.Size)
		}
		if p.Spin < -maxSpin || p.Spin > maxSpin {
			t.Fatalf("particle %d: spin %v out of range", i, p.Spin)
		}
		if p.Rotation < 0 || p.Rotation >= 360 {
			t.Fatalf("particle %d: rotation %v out of range", i, p.Rotation)
		}
		if p.X != 10 || p.Y != 20 || p.Opacity != 1 || p.Gravity != cfg.Gravity {
			t.Fatalf("particle %d: unexpected initial state %+v", i, p)
		}
	}
}

func TestParticleLifetime(t *testing.T) {
	for _, f := range []float64{0.005, 0.01, 0.028, 0.03, 0.05} {
		cfg := DefaultConfig()
		cfg.FadeOut = f
		s := newSystem(&cfg)
		surf := &recordingSurface{t: t}
		s.Create(0, 0, cfg)

		want := int(math.Ceil(1 / f))
		frames := 0
		for s.Len() > 0 && frames < want+10 {
			s.Update()
			s.Draw(surf)
			frames++
		}
		if frames < want-1 || frames > want+1 {
			t.Errorf("fadeOut %v: expected lifetime %d frames, got %d", f, want, frames)
		}
	}
}

func TestFadeOutIsReadLive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeOut = 0.01
	s := newSystem(&cfg)
	s.Create(0, 0, cfg)

	s.Update()
	cfg.FadeOut = 0.5
	s.Update()
	s.Update()
	if s.Len() != 0 {
		t.Fatalf("expected particles to pick up the new fade rate, %d left", s.Len())
	}
}

func TestSpawnFieldsAreFrozen(t *testing.T) {
	cfg := DefaultConfig()
	s := newSystem(&cfg)
	s.Create(0, 0, cfg)
	cfg.Gravity = 5
	s.Update()
	for _, p := range s.Particles() {
		if p.Gravity != 0.27 {
			t.Fatalf("gravity must be captured at spawn, got %v", p.Gravity)
		}
	}
}

func TestGravityIntegration(t *testing.T) {
	cfg := Config{Count: 1, Size: 1, Velocity: 1, Gravity: 0.5, FadeOut: 0.01}
	s := newSystem(&cfg)
	s.Create(0, 0, cfg)
	p0 := s.Particles()[0]
	s.Update()
	p1 := s.Particles()[0]

	if math.Abs(p1.VY-(p0.VY+0.5)) > 1e-9 {
		t.Fatalf("expected vy to gain gravity, got %v -> %v", p0.VY, p1.VY)
	}
	if math.Abs(p1.Y-p1.VY) > 1e-9 || math.Abs(p1.X-p0.VX) > 1e-9 {
		t.Fatalf("position must advance by the updated velocity, got (%v,%v)", p1.X, p1.Y)
	}
	if math.Abs(p1.Rotation-(p0.Rotation+p0.Spin)) > 1e-9 {
		t.Fatalf("rotation must advance by spin")
	}
	if math.Abs(p1.Opacity-0.99) > 1e-9 {
		t.Fatalf("expected opacity 0.99, got %v", p1.Opacity)
	}
}

func TestResizeKeepsParticles(t *testing.T) {
	cfg := DefaultConfig()
	s := newSystem(&cfg)
	s.Create(300, 200, cfg)
	s.Resize(1920, 1080)
	if w, h := s.Size(); w != 1920 || h != 1080 {
		t.Fatalf("expected 1920x1080, got %vx%v", w, h)
	}
	for _, p := range s.Particles() {
		if p.X != 300 || p.Y != 200 {
			t.Fatalf("resize moved a particle to (%v,%v)", p.X, p.Y)
		}
	}
}

func TestLoopRunsUntilStopped(t *testing.T) {
	cfg := DefaultConfig()
	s := newSystem(&cfg)
	clock := frame.NewClock()
	surf := &recordingSurface{t: t}
	s.Start(clock, surf)

	// the loop keeps running with no particles
	clock.Advance(0.016)
	clock.Advance(0.016)
	if surf.clears != 2 {
		t.Fatalf("expected 2 redraws, got %d", surf.clears)
	}

	s.Create(0, 0, cfg)
	clock.Advance(0.016)
	if surf.fills != 20 {
		t.Fatalf("expected 20 squares drawn, got %d", surf.fills)
	}

	s.Stop()
	clock.Advance(0.016)
	if surf.clears != 3 {
		t.Fatalf("stopped system kept drawing")
	}
	if clock.Pending() != 0 {
		t.Fatalf("stop left %d pending frames", clock.Pending())
	}
}
