package systems

import (
	"log"

	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateViewport re-places the layout when the window size changes: the
// magnetic field and the confetti layer are resized, and every element
// gets its new bounds. Particles keep their positions.
func UpdateViewport(e *ecs.ECS) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	pd := components.Page.Get(page)
	w, h := cfg.C.Width, cfg.C.Height
	if w == pd.Width && h == pd.Height {
		return
	}
	if w <= 0 || h <= 0 {
		return
	}

	pd.Width, pd.Height = w, h
	pd.Placed = factory.Place(pd.Template, w, h)
	l := pd.Placed

	field := components.Field.Get(page).Field
	field.Resize(w, h)

	if entry, ok := components.Search.First(e.World); ok {
		s := components.Search.Get(entry)
		field.SetBounds(s.Bar, l.Search)
		field.SetBounds(s.Trigger, l.Trigger)
		for i, row := range s.Suggestions {
			field.SetBounds(row, l.Row(i))
		}
	}
	if entry, ok := components.Modal.First(e.World); ok {
		for i, tile := range components.Modal.Get(entry).Tiles {
			field.SetBounds(tile, l.Tile(i))
		}
	}
	if entry, ok := components.Confetti.First(e.World); ok {
		c := components.Confetti.Get(entry)
		c.System.Resize(float64(w), float64(h))
		c.Layer.Deallocate()
		c.Layer = ebiten.NewImage(w, h)
	}

	if cfg.Debug.Enabled {
		log.Printf("debug: viewport resized to %dx%d", w, h)
	}
}
