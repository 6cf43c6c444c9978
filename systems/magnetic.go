package systems

import (
	"github.com/automoto/startpage/components"
	"github.com/automoto/startpage/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMagnetic enables the elements that are on screen and feeds the
// pointer to the field. Runs after UpdateSearch so the enabled set matches
// what will be drawn this frame.
func UpdateMagnetic(e *ecs.ECS) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	field := components.Field.Get(page).Field
	p := components.Pointer.Get(page)

	modalOpen := false
	if entry, ok := components.Search.First(e.World); ok {
		s := components.Search.Get(entry)
		m := s.Machine
		modalOpen = m.IsModalOpen()

		field.SetEnabled(s.Bar, !modalOpen)
		field.SetEnabled(s.Trigger, m.Triggered() && !modalOpen)
		shown := 0
		if m.SuggestionsVisible() && !modalOpen {
			shown = len(m.Suggestions())
		}
		for i, row := range s.Suggestions {
			field.SetEnabled(row, i < shown)
		}
	}
	if entry, ok := components.Modal.First(e.World); ok {
		for _, tile := range components.Modal.Get(entry).Tiles {
			field.SetEnabled(tile, modalOpen)
		}
	}

	switch {
	case p.Inside && !p.OverPanel:
		pt := p.Latest()
		field.Pointer(pt.X, pt.Y)
	case p.WasInside || p.OverPanel:
		field.PointerLeft()
	}
}
