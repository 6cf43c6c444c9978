// Package layout reads the start page's layout from a Tiled map. It has no
// dependencies on ebitengine or donburi.
package layout

import "github.com/automoto/startpage/gamemath"

// Layout holds element rectangles in map coordinates.
type Layout struct {
	Width, Height float64

	DateTime gamemath.Rect
	Search   gamemath.Rect
	Trigger  gamemath.Rect
	// Suggestions is the first autocomplete row.
	Suggestions gamemath.Rect
	Modal       gamemath.Rect

	GlassToggle gamemath.Rect
	GlowToggle  gamemath.Rect

	TriggerShift  float64 // how far the input shrinks when triggered
	MaxWidthRatio float64 // search width cap as a fraction of the window
	MaxRows       int
	ModalColumns  int
	ModalPadding  float64
	ModalRowH     float64
}

// Row returns the bounds of autocomplete row i.
func (l *Layout) Row(i int) gamemath.Rect {
	r := l.Suggestions
	r.Y += float64(i) * r.H
	return r
}

// Tile returns the bounds of modal tile i.
func (l *Layout) Tile(i int) gamemath.Rect {
	cols := l.ModalColumns
	if cols <= 0 {
		cols = 1
	}
	inner := l.Modal.Inset(l.ModalPadding)
	w := inner.W / float64(cols)
	return gamemath.Rect{
		X: inner.X + float64(i%cols)*w,
		Y: inner.Y + float64(i/cols)*l.ModalRowH,
		W: w,
		H: l.ModalRowH,
	}
}

// ModalHeight returns the modal height needed for n tiles.
func (l *Layout) ModalHeight(n int) float64 {
	cols := l.ModalColumns
	if cols <= 0 {
		cols = 1
	}
	rows := (n + cols - 1) / cols
	return float64(rows)*l.ModalRowH + 2*l.ModalPadding
}

// FitModal returns a copy whose modal is resized to hold n tiles, keeping
// its center.
func (l *Layout) FitModal(n int) *Layout {
	out := *l
	cx, cy := l.Modal.Center()
	out.Modal.H = l.ModalHeight(n)
	out.Modal.Y = cy - out.Modal.H/2
	out.Modal.X = cx - out.Modal.W/2
	return &out
}
