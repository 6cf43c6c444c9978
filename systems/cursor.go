package systems

import (
	"math"

	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const haloRings = 4

var cursorDrawOp = &ebiten.DrawImageOptions{}

// UpdateCursor toggles the custom cursor and keeps the system pointer hidden
// while it is shown. A hidden cursor detaches its visual, so the simulator
// skips its frames.
func UpdateCursor(e *ecs.ECS) {
	if JustTriggered(ActionToggleCursor) {
		cfg.Cursor.Visible = !cfg.Cursor.Visible
		SaveCurrentSettings()
	}
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)

	if cfg.Cursor.Visible {
		c.Sim.SetTarget(c)
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		c.Sim.SetTarget(nil)
		c.HasFrame = false
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// DrawCursor paints the glass ring and places it with the simulator's
// transform.
func DrawCursor(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	if !cfg.Cursor.Visible || !c.HasFrame {
		return
	}

	look := cfg.Cursor
	pad := look.BlurRadius*haloRings + 2
	size := int(math.Ceil(look.Size + 2*pad))
	if c.Visual == nil || c.VisualSize != size {
		if c.Visual != nil {
			c.Visual.Deallocate()
		}
		c.Visual = ebiten.NewImage(size, size)
		c.VisualSize = size
	}
	paintCursor(c.Visual, c.Transform.BorderWidth)

	a := c.Transform.Affine(float64(size), float64(size))
	op := cursorDrawOp
	op.GeoM.Reset()
	setGeoM(&op.GeoM, a)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(c.Visual, op)
}

func setGeoM(g *ebiten.GeoM, a gamemath.Affine) {
	g.SetElement(0, 0, a.A)
	g.SetElement(0, 1, a.C)
	g.SetElement(0, 2, a.TX)
	g.SetElement(1, 0, a.B)
	g.SetElement(1, 1, a.D)
	g.SetElement(1, 2, a.TY)
}

// paintCursor draws the ring centered in img. The border width is already
// compensated for the current scale.
func paintCursor(img *ebiten.Image, border float64) {
	img.Clear()
	look := cfg.Cursor
	n := float32(img.Bounds().Dx())
	cx, cy := n/2, n/2
	r := float32(look.Size / 2)

	// soft halo standing in for the backdrop blur
	for i := 1; i <= haloRings && look.BlurRadius > 0; i++ {
		grow := float32(look.BlurRadius) * float32(i)
		alpha := look.EdgeOpacity * 0.15 / float64(i)
		vector.StrokeCircle(img, cx, cy, r+grow, float32(look.BlurRadius), withAlpha(cfg.Page.CursorEdge, alpha), true)
	}

	if look.FillOpacity > 0 {
		vector.FillCircle(img, cx, cy, r, withAlpha(cfg.Page.CursorFill, look.FillOpacity), true)
	}

	bw := float32(border)
	if bw > 0 && look.BorderOpacity > 0 {
		vector.StrokeCircle(img, cx, cy, r-bw/2, bw, withAlpha(cfg.Page.CursorBorder, look.BorderOpacity), true)
	}

	edge := float32(look.EdgeThickness)
	if edge > 0 && look.EdgeOpacity > 0 && r-bw-edge/2 > 0 {
		vector.StrokeCircle(img, cx, cy, r-bw-edge/2, edge, withAlpha(cfg.Page.CursorEdge, look.EdgeOpacity*0.5), true)
	}
}
