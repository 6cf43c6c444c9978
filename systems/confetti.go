package systems

import (
	"image/color"
	"math"

	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/confetti"
	"github.com/automoto/startpage/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	confettiPixel  *ebiten.Image
	confettiDrawOp = &ebiten.DrawImageOptions{}
)

// Canvas paints particles onto the confetti layer. It looks the layer up on
// every call, so it survives the layer being reallocated on resize.
type Canvas struct {
	data *components.ConfettiData
}

// NewCanvas returns the confetti surface for data.
func NewCanvas(data *components.ConfettiData) confetti.Surface {
	return &Canvas{data: data}
}

func (c *Canvas) Clear() {
	if c.data.Layer != nil {
		c.data.Layer.Clear()
	}
}

func (c *Canvas) FillSquare(x, y, size, rotation float64, clr color.RGBA, alpha float64) {
	if c.data.Layer == nil {
		return
	}
	if confettiPixel == nil {
		confettiPixel = ebiten.NewImage(1, 1)
		confettiPixel.Fill(color.White)
	}

	op := confettiDrawOp
	op.GeoM.Reset()
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(size, size)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	c.data.Layer.DrawImage(confettiPixel, op)
}

// UpdateConfetti bursts confetti at every click on the page, using the
// settings in effect at the moment of the click. A click completes when the
// button is released.
func UpdateConfetti(e *ecs.ECS) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	p := components.Pointer.Get(page)
	if !p.JustReleased() || !p.Inside || p.OverPanel {
		return
	}
	entry, ok := components.Confetti.First(e.World)
	if !ok {
		return
	}

	pt := p.Latest()
	components.Confetti.Get(entry).System.Create(pt.X, pt.Y, cfg.Confetti)

	stats := components.Stats.Get(page)
	stats.Clicks++
	stats.Spawned += cfg.Confetti.Count
}

// DrawConfetti composites the confetti layer over the page.
func DrawConfetti(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Confetti.First(e.World)
	if !ok {
		return
	}
	layer := components.Confetti.Get(entry).Layer
	if layer == nil {
		return
	}
	screen.DrawImage(layer, nil)
}
