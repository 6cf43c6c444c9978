package systems

import (
	"image/color"
	"log"

	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles debug mode and logs frame stats once per period.
func UpdateDebug(e *ecs.ECS) {
	if JustTriggered(ActionToggleDebug) {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}

	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	stats := components.Stats.Get(page)
	stats.Frames++
	if !cfg.Debug.Enabled || stats.Frames < cfg.Debug.StatsPeriod {
		return
	}

	clock := components.Clock.Get(page)
	field := components.Field.Get(page)
	particles := 0
	if c, ok := components.Confetti.First(e.World); ok {
		particles = components.Confetti.Get(c).System.Len()
	}
	state := "none"
	if s, ok := components.Search.First(e.World); ok {
		state = components.Search.Get(s).Machine.State().String()
	}

	log.Printf("debug: tps=%.1f fps=%.1f frame=%d pending=%d particles=%d spawned=%d clicks=%d magnetic=%d search=%s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), clock.Frame(), clock.Pending(),
		particles, stats.Spawned, stats.Clicks, field.Registry().Depth(), state)
	*stats = components.StatsData{}
}

// DrawDebug outlines every magnetic element at its displaced bounds.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	field := factory.Field(e)
	if field == nil {
		return
	}

	for _, b := range field.Behaviors() {
		r := b.DisplacedBounds()
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if b.Hovered() {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)

		// Draw outline
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
