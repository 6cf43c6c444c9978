package factory

import (
	"github.com/automoto/startpage/assets/animations"
	"github.com/automoto/startpage/archetypes"
	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/glow"
	"github.com/automoto/startpage/search"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSearch spawns the search bar, its trigger button and one magnetic
// element per autocomplete row. Rows and the trigger start disabled.
func CreateSearch(ecs *ecs.ECS, page *donburi.Entry) *donburi.Entry {
	e := archetypes.Search.Spawn(ecs)
	l := components.Page.Get(page).Placed
	field := components.Field.Get(page).Field

	data := components.Search.Get(e)
	data.Machine = search.NewMachine(cfg.Sites, cfg.Search.Engine)
	data.Caret = animations.NewBlink(cfg.Search.CaretBlinkFrames)
	data.Bar = field.Add(l.Search, cfg.Magnetic.Search)
	data.Trigger = field.Add(l.Trigger, cfg.Magnetic.Trigger)
	field.SetEnabled(data.Trigger, false)

	rows := l.MaxRows
	if rows > search.MaxSuggestions {
		rows = search.MaxSuggestions
	}
	for i := 0; i < rows; i++ {
		b := field.Add(l.Row(i), cfg.Magnetic.Suggestion)
		field.SetEnabled(b, false)
		data.Suggestions = append(data.Suggestions, b)
	}

	// the input is focused as soon as the page opens
	data.Machine.Focus()

	components.Glow.SetValue(e, components.GlowData{
		Transition: glow.NewTransition(cfg.C.TPS),
		Current:    cfg.Glow.Base,
	})
	return e
}

// CreateModal spawns the quick-links grid with one disabled magnetic tile per
// catalog entry.
func CreateModal(ecs *ecs.ECS, page *donburi.Entry) *donburi.Entry {
	e := archetypes.Modal.Spawn(ecs)
	l := components.Page.Get(page).Placed
	field := components.Field.Get(page).Field

	data := components.Modal.Get(e)
	for i := range cfg.Sites {
		b := field.Add(l.Tile(i), cfg.Magnetic.Tile)
		field.SetEnabled(b, false)
		data.Tiles = append(data.Tiles, b)
	}
	return e
}
