// Package cursor simulates the custom cursor ring: a damped spring chasing
// the pointer, with a wobble on sudden stops and a squash/stretch along the
// direction of travel.
package cursor

import (
	"math"

	"github.com/automoto/startpage/gamemath"
)

// Config is the cursor's tunable set. Every field is read live on each tick
// or draw.
type Config struct {
	Visible          bool    `toml:"visible" json:"visible"`
	Size             float64 `toml:"size" json:"size"`
	Intensity        float64 `toml:"intensity" json:"intensity"`
	StretchIntensity float64 `toml:"stretch_intensity" json:"stretchIntensity"`
	FillOpacity      float64 `toml:"fill_opacity" json:"fillOpacity"`
	BlurRadius       float64 `toml:"blur_radius" json:"blurRadius"`
	EdgeThickness    float64 `toml:"edge_thickness" json:"edgeThickness"`
	EdgeOpacity      float64 `toml:"edge_opacity" json:"edgeOpacity"`
	BorderOpacity    float64 `toml:"border_opacity" json:"borderOpacity"`
}

func DefaultConfig() Config {
	return Config{
		Visible:          true,
		Size:             40,
		Intensity:        0.56,
		StretchIntensity: 0.19,
		FillOpacity:      0,
		BlurRadius:       0.75,
		EdgeThickness:    2.6,
		EdgeOpacity:      0.66,
		BorderOpacity:    0.48,
	}
}

const (
	posStiffness = 0.2
	rotStiffness = 0.1
	rotDamping   = 0.6
	magneticLerp = 0.2
	scaleLerp    = 0.2

	wobbleSensitivity = -0.5
	stretchMultiplier = 0.03
	stretchMax        = 2.0
	squashMax         = 0.5
	minStretchSpeed   = 0.1

	freeScale     = 0.8
	magneticScale = 1.0
	pressedScale  = 0.5

	// BaseBorderWidth is the ring border in screen pixels.
	BaseBorderWidth = 4.0
	minBorderScale  = 0.1
)

// Input is what one tick reads from the rest of the page.
type Input struct {
	X, Y      float64 // pointer sample
	Magnetic  bool
	MouseDown bool
}

// State is everything the cursor carries between frames.
type State struct {
	Started bool

	X, Y   float64 // smoothed position
	VX, VY float64 // spring velocity

	LastX, LastY float64
	// FrameVX and FrameVY are the on-screen displacement of the last tick,
	// which drives stretch and wobble.
	FrameVX, FrameVY float64
	LastSpeed        float64

	Rotation    float64 // degrees
	RotationVel float64

	ScaleX, ScaleY  float64
	StretchRotation float64 // degrees
	BorderWidth     float64
}

func NewState() State {
	return State{ScaleX: 1, ScaleY: 1, BorderWidth: BaseBorderWidth}
}

// PositionDamping returns the spring damping for an intensity.
func PositionDamping(intensity float64) float64 {
	return 0.8 - intensity*0.5
}

// RotationIntensity returns how strongly a sudden stop kicks the wobble.
func RotationIntensity(intensity float64) float64 {
	return 0.01 + intensity*0.09
}

// Step advances s by one frame.
func Step(s State, in Input, cfg Config) State {
	if !s.Started {
		s.X, s.Y = in.X, in.Y
		s.LastX, s.LastY = in.X, in.Y
		s.Started = true
	}

	if in.Magnetic {
		s.X = gamemath.Lerp(s.X, in.X, magneticLerp)
		s.Y = gamemath.Lerp(s.Y, in.Y, magneticLerp)
		s.Rotation = gamemath.Lerp(s.Rotation, 0, magneticLerp)
		s.VX, s.VY = 0, 0
		s.RotationVel = 0
	} else {
		damping := PositionDamping(cfg.Intensity)
		s.VX += (in.X-s.X)*posStiffness - s.VX*damping
		s.VY += (in.Y-s.Y)*posStiffness - s.VY*damping
		s.X += s.VX
		s.Y += s.VY

		s.RotationVel += (0-s.Rotation)*rotStiffness - s.RotationVel*rotDamping
		s.Rotation += s.RotationVel
	}

	s.FrameVX = s.X - s.LastX
	s.FrameVY = s.Y - s.LastY
	s.LastX, s.LastY = s.X, s.Y
	speed := math.Hypot(s.FrameVX, s.FrameVY)

	speedDelta := speed - s.LastSpeed
	s.LastSpeed = speed
	if speedDelta < wobbleSensitivity && !in.Magnetic {
		s.RotationVel -= s.FrameVX * RotationIntensity(cfg.Intensity)
	}

	base := freeScale
	if in.Magnetic {
		base = magneticScale
	}
	targetX, targetY := base, base

	if !in.Magnetic {
		stretch := 1 + math.Min(speed*cfg.StretchIntensity*stretchMultiplier, stretchMax-1)
		squash := math.Max(2-stretch, squashMax)
		targetY *= stretch
		targetX *= squash
		if speed > minStretchSpeed {
			// +90 so the y axis, which carries the stretch, follows the motion
			s.StretchRotation = math.Atan2(s.FrameVY, s.FrameVX)*180/math.Pi + 90
		}
	} else {
		s.StretchRotation = gamemath.Lerp(s.StretchRotation, 0, magneticLerp)
	}

	if in.MouseDown {
		targetX *= pressedScale
		targetY *= pressedScale
	}

	s.ScaleX = gamemath.Lerp(s.ScaleX, targetX, scaleLerp)
	s.ScaleY = gamemath.Lerp(s.ScaleY, targetY, scaleLerp)
	s.BorderWidth = compensateBorder(s.BorderWidth, s.ScaleX, s.ScaleY)

	return s
}

// compensateBorder keeps the ring edge at BaseBorderWidth on screen. Below
// minBorderScale the previous width is kept.
func compensateBorder(prev, sx, sy float64) float64 {
	minScale := math.Min(sx, sy)
	if minScale <= minBorderScale {
		return prev
	}
	return BaseBorderWidth / minScale
}

// Transform is the cursor's placement for one frame.
type Transform struct {
	X, Y            float64
	Rotation        float64
	StretchRotation float64
	ScaleX, ScaleY  float64
	BorderWidth     float64
}

func (s State) Transform() Transform {
	return Transform{
		X:               s.X,
		Y:               s.Y,
		Rotation:        s.Rotation,
		StretchRotation: s.StretchRotation,
		ScaleX:          s.ScaleX,
		ScaleY:          s.ScaleY,
		BorderWidth:     s.BorderWidth,
	}
}

// Affine composes the transform for a visual of size w x h drawn from its
// top-left corner: recenter, scale, rotate the stretch axis, rotate the
// wobble, then move to the smoothed position.
func (t Transform) Affine(w, h float64) gamemath.Affine {
	return gamemath.Identity().
		Translate(-w/2, -h/2).
		Scale(t.ScaleX, t.ScaleY).
		Rotate(t.StretchRotation).
		Rotate(t.Rotation).
		Translate(t.X, t.Y)
}
