// Package glow describes the soft halo around the search bar and eases it
// between its resting and focused looks.
package glow

import (
	"image/color"
	"math"

	"github.com/automoto/startpage/gamemath"
	"github.com/charmbracelet/harmonica"
)

// Color is an rgba color with 0-255 channels and alpha in [0, 1].
type Color struct {
	R float64 `toml:"r" json:"r"`
	G float64 `toml:"g" json:"g"`
	B float64 `toml:"b" json:"b"`
	A float64 `toml:"a" json:"a"`
}

// RGBA returns the non-premultiplied color.
func (c Color) RGBA() color.NRGBA {
	ch := func(v float64) uint8 { return uint8(math.Round(gamemath.Clamp(v, 0, 255))) }
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(c.A * 255)}
}

// Config is one glow look: blur is the soft falloff width in pixels and
// spread grows the solid part beyond the bar's edge.
type Config struct {
	Blur   float64 `toml:"blur" json:"blur"`
	Spread float64 `toml:"spread" json:"spread"`
	Color  Color   `toml:"color" json:"color"`
}

func DefaultBase() Config {
	return Config{Blur: 40, Spread: 15, Color: Color{R: 72, G: 135, B: 202, A: 0.3}}
}

func DefaultIntense() Config {
	return Config{Blur: 120, Spread: 60, Color: Color{R: 72, G: 135, B: 202, A: 0.8}}
}

// Mix returns a blended with b by t in [0, 1].
func Mix(a, b Config, t float64) Config {
	t = gamemath.Clamp(t, 0, 1)
	l := func(x, y float64) float64 { return gamemath.Lerp(x, y, t) }
	return Config{
		Blur:   l(a.Blur, b.Blur),
		Spread: l(a.Spread, b.Spread),
		Color: Color{
			R: l(a.Color.R, b.Color.R),
			G: l(a.Color.G, b.Color.G),
			B: l(a.Color.B, b.Color.B),
			A: l(a.Color.A, b.Color.A),
		},
	}
}

// Layer is one ring of the rendered glow.
type Layer struct {
	Grow  float64 // pixels beyond the bar's edge
	Alpha float64
}

// Layers approximates a gaussian box-shadow with n stacked rings: a solid
// core out to spread, then alpha falling off over blur.
func Layers(c Config, n int) []Layer {
	if n <= 0 || c.Color.A <= 0 {
		return nil
	}
	out := make([]Layer, 0, n+1)
	out = append(out, Layer{Grow: c.Spread, Alpha: c.Color.A})
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n)
		out = append(out, Layer{
			Grow:  c.Spread + f*c.Blur,
			Alpha: c.Color.A * (1 - f) * (1 - f) / float64(n) * 2,
		})
	}
	return out
}

const (
	transitionFrequency = 6.0
	transitionDamping   = 1.0
)

// Transition springs between the base and intense looks as focus changes.
type Transition struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewTransition creates a transition stepped at fps frames per second.
func NewTransition(fps int) *Transition {
	return &Transition{
		spring: harmonica.NewSpring(harmonica.FPS(fps), transitionFrequency, transitionDamping),
	}
}

// Update advances one frame toward the focused (1) or resting (0) look and
// returns the blended config.
func (t *Transition) Update(focused bool, base, intense Config) Config {
	target := 0.0
	if focused {
		target = 1
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, target)
	return Mix(base, intense, t.pos)
}

// Progress is 0 at rest and 1 when fully focused.
func (t *Transition) Progress() float64 {
	return t.pos
}

// Snap jumps straight to the focused or resting look.
func (t *Transition) Snap(focused bool) {
	t.vel = 0
	t.pos = 0
	if focused {
		t.pos = 1
	}
}
