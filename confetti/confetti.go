// Package confetti runs the click-burst particle system drawn over the page.
package confetti

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/startpage/frame"
	"github.com/automoto/startpage/gamemath"
)

// Config tunes a burst.
//
// Count, Size, Velocity and Gravity are read once per burst and frozen into
// each particle. FadeOut is read from the live config on every tick, so
// changing it affects particles already in flight.
type Config struct {
	Count    int     `toml:"count" json:"count"`
	Size     float64 `toml:"size" json:"size"`
	Velocity float64 `toml:"velocity" json:"velocity"`
	Gravity  float64 `toml:"gravity" json:"gravity"`
	FadeOut  float64 `toml:"fade_out" json:"fadeOut"`
}

func DefaultConfig() Config {
	return Config{
		Count:    20,
		Size:     2,
		Velocity: 3.5,
		Gravity:  0.27,
		FadeOut:  0.028,
	}
}

const (
	minSpeed   = 3.0
	minSize    = 2.0
	maxSpin    = 10.0 // deg per frame
	saturation = 0.9
	lightness  = 0.65
)

// Particle is one confetti square. Rotation and Spin are in degrees.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Color    color.RGBA
	Rotation float64
	Spin     float64
	Opacity  float64
	Gravity  float64
}

// Surface is the full-viewport canvas particles are drawn on.
type Surface interface {
	Clear()
	// FillSquare draws a square of side size centered at (x, y), rotated by
	// rotation degrees, with the given alpha in (0, 1].
	FillSquare(x, y, size, rotation float64, c color.RGBA, alpha float64)
}

// System owns the particle list.
type System struct {
	particles []Particle
	live      *Config
	rng       *rand.Rand

	width, height float64

	loop    *frame.Loop
	surface Surface
}

// NewSystem creates a system reading its live fade rate from live. A nil rng
// uses the global source.
func NewSystem(live *Config, rng *rand.Rand) *System {
	return &System{live: live, rng: rng}
}

func (s *System) float() float64 {
	if s.rng == nil {
		return rand.Float64()
	}
	return s.rng.Float64()
}

// Create spawns cfg.Count particles at (x, y). It only appends, so it may be
// called while a frame is running.
func (s *System) Create(x, y float64, cfg Config) {
	for i := 0; i < cfg.Count; i++ {
		angle := s.float() * 2 * math.Pi
		speed := s.float()*cfg.Velocity + minSpeed
		sin, cos := math.Sincos(angle)
		s.particles = append(s.particles, Particle{
			X:        x,
			Y:        y,
			VX:       cos * speed,
			VY:       sin * speed,
			Size:     s.float()*cfg.Size + minSize,
			Color:    gamemath.HSLToRGB(s.float()*360, saturation, lightness),
			Rotation: s.float() * 360,
			Spin:     (s.float() - 0.5) * 2 * maxSpin,
			Opacity:  1,
			Gravity:  cfg.Gravity,
		})
	}
}

// Update advances every particle one frame and drops those whose opacity
// reached zero.
func (s *System) Update() {
	fade := 0.0
	if s.live != nil {
		fade = s.live.FadeOut
	}

	// Compact in place over the length seen at the start of the pass, then
	// keep anything appended behind it.
	n := len(s.particles)
	kept := s.particles[:0]
	for i := 0; i < n; i++ {
		p := s.particles[i]
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Rotation += p.Spin
		p.Opacity -= fade
		if p.Opacity > 0 {
			kept = append(kept, p)
		}
	}
	kept = append(kept, s.particles[n:]...)
	s.particles = kept
}

// Draw clears surf and redraws every live particle.
func (s *System) Draw(surf Surface) {
	if surf == nil {
		return
	}
	surf.Clear()
	for _, p := range s.particles {
		if p.Opacity <= 0 {
			continue
		}
		surf.FillSquare(p.X, p.Y, p.Size, p.Rotation, p.Color, math.Min(p.Opacity, 1))
	}
}

// Resize records the viewport size. Particle coordinates are not touched.
func (s *System) Resize(w, h float64) {
	s.width, s.height = w, h
}

func (s *System) Size() (float64, float64) {
	return s.width, s.height
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The slice is only valid until the
// next Create or Update.
func (s *System) Particles() []Particle {
	return s.particles
}

// Start runs Update and Draw every frame on clock until Stop, whether or not
// any particles exist.
func (s *System) Start(clock *frame.Clock, surf Surface) {
	s.surface = surf
	if s.loop == nil {
		s.loop = frame.NewLoop(clock, s.tick)
	}
	s.loop.Start()
}

func (s *System) tick(frame.Info) {
	s.Update()
	s.Draw(s.surface)
}

// Stop cancels the pending frame.
func (s *System) Stop() {
	if s.loop != nil {
		s.loop.Stop()
	}
}
