package gamemath

import "math"

// Affine is a 2D affine transform laid out like a CSS matrix(a, b, c, d, tx, ty):
//
//	x' = A*x + C*y + TX
//	y' = B*x + D*y + TY
//
// The builder methods append an operation, so it is applied after the
// transform built so far.
type Affine struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Then returns m followed by n.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		A:  n.A*m.A + n.C*m.B,
		B:  n.B*m.A + n.D*m.B,
		C:  n.A*m.C + n.C*m.D,
		D:  n.B*m.C + n.D*m.D,
		TX: n.A*m.TX + n.C*m.TY + n.TX,
		TY: n.B*m.TX + n.D*m.TY + n.TY,
	}
}

func (m Affine) Translate(tx, ty float64) Affine {
	return m.Then(Affine{A: 1, D: 1, TX: tx, TY: ty})
}

func (m Affine) Scale(sx, sy float64) Affine {
	return m.Then(Affine{A: sx, D: sy})
}

// Rotate appends a rotation by deg degrees, clockwise in screen space.
func (m Affine) Rotate(deg float64) Affine {
	s, c := math.Sincos(deg * math.Pi / 180)
	return m.Then(Affine{A: c, B: s, C: -s, D: c})
}

// Apply maps the point (x, y).
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}
