package systems

import (
	"image/color"

	"github.com/automoto/startpage/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// fillRoundRect fills r with corners of radius rad. Pieces overlap at the
// corners, so c should be opaque.
func fillRoundRect(dst *ebiten.Image, r gamemath.Rect, rad float64, c color.Color) {
	if rad*2 > r.H {
		rad = r.H / 2
	}
	if rad*2 > r.W {
		rad = r.W / 2
	}
	x, y, w, h, rr := float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(rad)
	vector.FillRect(dst, x+rr, y, w-2*rr, h, c, true)
	vector.FillRect(dst, x, y+rr, rr, h-2*rr, c, true)
	vector.FillRect(dst, x+w-rr, y+rr, rr, h-2*rr, c, true)
	vector.FillCircle(dst, x+rr, y+rr, rr, c, true)
	vector.FillCircle(dst, x+w-rr, y+rr, rr, c, true)
	vector.FillCircle(dst, x+rr, y+h-rr, rr, c, true)
	vector.FillCircle(dst, x+w-rr, y+h-rr, rr, c, true)
}

// strokeRoundRect outlines r by filling it with edge and then the inset
// rectangle with fill.
func strokeRoundRect(dst *ebiten.Image, r gamemath.Rect, rad, width float64, edge, fill color.Color) {
	fillRoundRect(dst, r, rad, edge)
	fillRoundRect(dst, r.Inset(width), rad-width, fill)
}

func fillRect(dst *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// textWidth returns the advance width of s in pixels.
func textWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}

// baseline returns the y of a baseline that centers a line of face in r.
func baseline(face font.Face, r gamemath.Rect) int {
	m := face.Metrics()
	return int(r.Y + (r.H+float64(m.Ascent.Ceil()-m.Descent.Ceil()))/2)
}

// drawTextLeft draws s left-aligned at x, vertically centered in r.
func drawTextLeft(dst *ebiten.Image, s string, face font.Face, x float64, r gamemath.Rect, c color.Color) {
	text.Draw(dst, s, face, int(x), baseline(face, r), c)
}

// drawTextCentered draws s centered in r.
func drawTextCentered(dst *ebiten.Image, s string, face font.Face, r gamemath.Rect, c color.Color) {
	x := r.X + (r.W-textWidth(face, s))/2
	text.Draw(dst, s, face, int(x), baseline(face, r), c)
}

// withAlpha scales c's alpha by a in [0, 1].
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = gamemath.Clamp(a, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
