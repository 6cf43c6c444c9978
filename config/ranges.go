package config

import (
	"math"

	"github.com/automoto/startpage/confetti"
	"github.com/automoto/startpage/glow"
)

// Range bounds a tunable setting and gives its slider step.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Nudge moves v by n steps, snapped to the step grid and clamped.
func (r Range) Nudge(v float64, n int) float64 {
	v += float64(n) * r.Step
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
		// trim float noise so 0.27+0.01 reads back as 0.28
		v = math.Round(v*1e6) / 1e6
	}
	return r.Clamp(v)
}

// ConfettiRanges bounds each confetti panel control
type ConfettiRanges struct {
	Count    Range
	Size     Range
	Velocity Range
	Gravity  Range
	FadeOut  Range
}

// GlowRanges bounds each glow panel control
type GlowRanges struct {
	Blur    Range
	Spread  Range
	Channel Range
	Alpha   Range
}

var ConfettiLimits = ConfettiRanges{
	Count:    Range{Min: 10, Max: 200, Step: 5},
	Size:     Range{Min: 1, Max: 10, Step: 0.5},
	Velocity: Range{Min: 1, Max: 15, Step: 0.5},
	Gravity:  Range{Min: 0.05, Max: 0.5, Step: 0.01},
	FadeOut:  Range{Min: 0.005, Max: 0.05, Step: 0.001},
}

var GlowLimits = GlowRanges{
	Blur:    Range{Min: 0, Max: 200, Step: 1},
	Spread:  Range{Min: 0, Max: 100, Step: 1},
	Channel: Range{Min: 0, Max: 255, Step: 1},
	Alpha:   Range{Min: 0, Max: 1, Step: 0.01},
}

// CursorRanges bounds the cursor look controls
type CursorRanges struct {
	Size      Range
	Intensity Range
	Opacity   Range
	Blur      Range
	Edge      Range
}

var CursorLimits = CursorRanges{
	Size:      Range{Min: 8, Max: 200, Step: 2},
	Intensity: Range{Min: 0, Max: 1, Step: 0.01},
	Opacity:   Range{Min: 0, Max: 1, Step: 0.01},
	Blur:      Range{Min: 0, Max: 40, Step: 0.25},
	Edge:      Range{Min: 0, Max: 20, Step: 0.1},
}

// ClampConfetti pulls a loaded confetti config back inside the panel ranges.
func ClampConfetti(c confetti.Config) confetti.Config {
	l := ConfettiLimits
	c.Count = int(l.Count.Clamp(float64(c.Count)))
	c.Size = l.Size.Clamp(c.Size)
	c.Velocity = l.Velocity.Clamp(c.Velocity)
	c.Gravity = l.Gravity.Clamp(c.Gravity)
	c.FadeOut = l.FadeOut.Clamp(c.FadeOut)
	return c
}

// ClampGlow pulls a loaded glow look back inside the panel ranges.
func ClampGlow(g glow.Config) glow.Config {
	l := GlowLimits
	g.Blur = l.Blur.Clamp(g.Blur)
	g.Spread = l.Spread.Clamp(g.Spread)
	g.Color.R = l.Channel.Clamp(g.Color.R)
	g.Color.G = l.Channel.Clamp(g.Color.G)
	g.Color.B = l.Channel.Clamp(g.Color.B)
	g.Color.A = l.Alpha.Clamp(g.Color.A)
	return g
}

// Normalize clamps every tunable global into range.
func Normalize() {
	Confetti = ClampConfetti(Confetti)
	Glow.Base = ClampGlow(Glow.Base)
	Glow.Intense = ClampGlow(Glow.Intense)

	c := CursorLimits
	Cursor.Size = c.Size.Clamp(Cursor.Size)
	Cursor.Intensity = c.Intensity.Clamp(Cursor.Intensity)
	Cursor.StretchIntensity = c.Intensity.Clamp(Cursor.StretchIntensity)
	Cursor.FillOpacity = c.Opacity.Clamp(Cursor.FillOpacity)
	Cursor.EdgeOpacity = c.Opacity.Clamp(Cursor.EdgeOpacity)
	Cursor.BorderOpacity = c.Opacity.Clamp(Cursor.BorderOpacity)
	Cursor.BlurRadius = c.Blur.Clamp(Cursor.BlurRadius)
	Cursor.EdgeThickness = c.Edge.Clamp(Cursor.EdgeThickness)
}
