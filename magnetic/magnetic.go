// Package magnetic pulls page elements toward the pointer while it hovers
// them and tracks which elements are active, which switches the cursor into
// its magnetic regime.
package magnetic

import (
	"math"

	"github.com/automoto/startpage/gamemath"
)

// Options tune one element.
type Options struct {
	Strength float64 `toml:"strength" json:"strength"`
	Scale    float64 `toml:"scale" json:"scale"`
}

func DefaultOptions() Options {
	return Options{Strength: 0.15, Scale: 1.03}
}

const (
	// BaseArea is the element area, in square pixels, that feels the full
	// strength. Roughly a 60x60 button.
	BaseArea     = 4000.0
	AreaExponent = 0.75

	// MoveDuration and LeaveDuration are in seconds.
	MoveDuration  = 0.1
	LeaveDuration = 0.3
)

// EffectiveStrength scales strength down for elements larger than BaseArea,
// so big controls move less. Elements with no area keep the raw strength.
func EffectiveStrength(strength, w, h float64) float64 {
	if w <= 0 || h <= 0 {
		return strength
	}
	ratio := math.Max(1, w*h/BaseArea)
	return strength / math.Pow(ratio, AreaExponent)
}

// Offset is the displacement applied to an element on top of its layout
// bounds.
type Offset struct {
	X, Y  float64
	Scale float64
}

// Rest is the identity offset.
var Rest = Offset{Scale: 1}

// Apply returns r scaled about its center and moved by the offset.
func (o Offset) Apply(r gamemath.Rect) gamemath.Rect {
	cx, cy := r.Center()
	w, h := r.W*o.Scale, r.H*o.Scale
	return gamemath.Rect{X: cx - w/2 + o.X, Y: cy - h/2 + o.Y, W: w, H: h}
}
