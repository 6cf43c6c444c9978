package systems

import (
	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/fonts"
	"github.com/automoto/startpage/gamemath"
	"github.com/automoto/startpage/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePanels opens and closes the settings panels from their shortcut keys
// and the corner toggle buttons.
func UpdatePanels(e *ecs.ECS) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	panels := components.Panels.Get(page)
	p := components.Pointer.Get(page)
	l := components.Page.Get(page).Placed

	if JustTriggered(ActionToggleGlass) {
		TogglePanel(panels, components.PanelGlass)
	}
	if JustTriggered(ActionToggleGlow) {
		TogglePanel(panels, components.PanelGlow)
	}
	if JustTriggered(ActionToggleFullscreen) {
		cfg.C.Fullscreen = !cfg.C.Fullscreen
		ebiten.SetFullscreen(cfg.C.Fullscreen)
		SaveCurrentSettings()
	}

	if !p.JustPressed() || p.OverPanel {
		return
	}
	pt := p.Latest()
	switch {
	case l.GlassToggle.Contains(pt.X, pt.Y):
		p.ClickTaken = true
		TogglePanel(panels, components.PanelGlass)
	case l.GlowToggle.Contains(pt.X, pt.Y):
		p.ClickTaken = true
		TogglePanel(panels, components.PanelGlow)
	}
}

// TogglePanel shows id, or hides it if it is already showing. Closing a
// panel with edits saves the settings.
func TogglePanel(panels *components.PanelsData, id components.PanelID) {
	open := panels.Open
	ClosePanel(panels)
	if open != id {
		panels.Open = id
	}
}

// ClosePanel hides the open panel.
func ClosePanel(panels *components.PanelsData) {
	if panels.Open != components.PanelNone && panels.Changed {
		SaveCurrentSettings()
	}
	panels.Open = components.PanelNone
	panels.Changed = false
}

// GetPanels returns the panel state singleton.
func GetPanels(e *ecs.ECS) *components.PanelsData {
	page, ok := factory.PageEntry(e)
	if !ok {
		return nil
	}
	return components.Panels.Get(page)
}

// DrawPanelToggles draws the two corner buttons.
func DrawPanelToggles(e *ecs.ECS, screen *ebiten.Image) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	panels := components.Panels.Get(page)
	l := components.Page.Get(page).Placed

	drawToggle(screen, l.GlassToggle, "G", panels.Open == components.PanelGlass)
	drawToggle(screen, l.GlowToggle, "L", panels.Open == components.PanelGlow)
}

func drawToggle(screen *ebiten.Image, r gamemath.Rect, label string, active bool) {
	fill := cfg.Page.TileFill
	if active {
		fill = cfg.Page.BarFocusedBorder
	}
	fillRoundRect(screen, r, r.H/2, fill)
	drawTextCentered(screen, label, fonts.Small.Get(), r, cfg.Page.TextColor)
}
