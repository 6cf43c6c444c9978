package archetypes

import (
	"github.com/automoto/startpage/components"
	"github.com/automoto/startpage/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in registration order.
const Default ecs.LayerID = 0

var (
	Page = newArchetype(
		tags.Page,
		components.Page,
		components.Clock,
		components.Pointer,
		components.Field,
		components.Panels,
		components.Stats,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
	)
	Confetti = newArchetype(
		tags.Confetti,
		components.Confetti,
	)
	Search = newArchetype(
		tags.Search,
		components.Search,
		components.Glow,
	)
	Modal = newArchetype(
		tags.Modal,
		components.Modal,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
