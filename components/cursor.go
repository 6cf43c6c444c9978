package components

import (
	"github.com/automoto/startpage/cursor"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CursorData owns the spring simulator and the last transform it produced
type CursorData struct {
	Sim       *cursor.Simulator
	Transform cursor.Transform
	HasFrame  bool

	// Visual is repainted every frame and reallocated when the size changes
	Visual     *ebiten.Image
	VisualSize int
}

// SetTransform receives the simulator output once per frame
func (c *CursorData) SetTransform(t cursor.Transform) {
	c.Transform = t
	c.HasFrame = true
}

var Cursor = donburi.NewComponentType[CursorData]()
