package factory

import (
	"fmt"

	"github.com/automoto/startpage/archetypes"
	"github.com/automoto/startpage/assets"
	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/frame"
	"github.com/automoto/startpage/layout"
	"github.com/automoto/startpage/magnetic"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePage loads the layout and creates the page entity holding the frame
// clock, pointer state and the magnetic field.
func CreatePage(ecs *ecs.ECS, width, height int) (*donburi.Entry, error) {
	tmpl, err := layout.Load(assets.FS, assets.LayoutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load page layout: %w", err)
	}

	page := archetypes.Page.Spawn(ecs)
	components.Page.SetValue(page, components.PageData{
		Template: tmpl,
		Placed:   Place(tmpl, width, height),
		Width:    width,
		Height:   height,
	})

	clock := frame.NewClock()
	components.Clock.SetValue(page, components.ClockData{Clock: clock})
	components.Field.SetValue(page, components.FieldData{
		Field: magnetic.NewField(width, height, clock, magnetic.NewRegistry()),
	})
	components.Panels.SetValue(page, components.PanelsData{Open: components.PanelNone})

	return page, nil
}

// PageEntry returns the page singleton.
func PageEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return components.Page.First(ecs.World)
}

// Clock returns the page's frame clock.
func Clock(ecs *ecs.ECS) *frame.Clock {
	page, ok := PageEntry(ecs)
	if !ok {
		return nil
	}
	return components.Clock.Get(page).Clock
}

// Field returns the page's magnetic field.
func Field(ecs *ecs.ECS) *magnetic.Field {
	page, ok := PageEntry(ecs)
	if !ok {
		return nil
	}
	return components.Field.Get(page).Field
}

// Place fits the layout template to a window and sizes the modal for the
// current catalog.
func Place(tmpl *layout.Layout, width, height int) *layout.Layout {
	return tmpl.Place(float64(width), float64(height)).FitModal(len(cfg.Sites))
}
