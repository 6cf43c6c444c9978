package systems

import (
	"image/color"

	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/glow"
	"github.com/automoto/startpage/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGlow springs the halo toward the intense look while the input has
// focus. Both looks are read live, so panel edits show up at once.
func UpdateGlow(e *ecs.ECS) {
	entry, ok := components.Search.First(e.World)
	if !ok {
		return
	}
	s := components.Search.Get(entry)
	g := components.Glow.Get(entry)
	g.Current = g.Transition.Update(s.Machine.IsFocused(), cfg.Glow.Base, cfg.Glow.Intense)
}

// DrawGlow renders the halo as stacked translucent rings behind the bar.
func DrawGlow(e *ecs.ECS, screen *ebiten.Image) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	entry, ok := components.Search.First(e.World)
	if !ok {
		return
	}
	s := components.Search.Get(entry)
	g := components.Glow.Get(entry)
	l := components.Page.Get(page).Placed

	bar := inputBounds(s, l)
	base := g.Current.Color.RGBA()
	for _, layer := range glow.Layers(g.Current, cfg.Glow.Layers) {
		r := bar.Inset(-layer.Grow)
		c := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(layer.Alpha * 255)}
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}
}
