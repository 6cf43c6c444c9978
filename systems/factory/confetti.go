package factory

import (
	"github.com/automoto/startpage/archetypes"
	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/confetti"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateConfetti spawns the particle system with a window-sized layer and
// starts it on the page clock. Drawing goes through surface, which paints
// the layer.
func CreateConfetti(ecs *ecs.ECS, page *donburi.Entry, surface func(*components.ConfettiData) confetti.Surface) *donburi.Entry {
	e := archetypes.Confetti.Spawn(ecs)
	p := components.Page.Get(page)

	data := components.Confetti.Get(e)
	data.System = confetti.NewSystem(&cfg.Confetti, nil)
	data.System.Resize(float64(p.Width), float64(p.Height))
	data.Layer = ebiten.NewImage(p.Width, p.Height)
	data.System.Start(components.Clock.Get(page).Clock, surface(data))
	return e
}
