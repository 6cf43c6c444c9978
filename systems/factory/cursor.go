package factory

import (
	"github.com/automoto/startpage/archetypes"
	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/cursor"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCursor spawns the spring cursor and starts its frame loop. The
// simulator samples the page pointer and the magnetic registry each tick.
func CreateCursor(ecs *ecs.ECS, page *donburi.Entry) *donburi.Entry {
	c := archetypes.Cursor.Spawn(ecs)
	registry := components.Field.Get(page).Registry()

	input := func() cursor.Input {
		p := components.Pointer.Get(page)
		if !p.Seen() {
			return cursor.Input{}
		}
		s := p.Latest()
		return cursor.Input{
			X:         s.X,
			Y:         s.Y,
			Magnetic:  registry.Magnetic(),
			MouseDown: p.Down(),
		}
	}

	data := components.Cursor.Get(c)
	data.Sim = cursor.NewSimulator(&cfg.Cursor, input)
	data.Sim.SetTarget(data)
	data.Sim.Start(components.Clock.Get(page).Clock)
	return c
}
