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

const (
	modalRadius = 18
	tileRadius  = 12
	tileGap     = 6
	iconSize    = 36
)

// UpdateModal records whether the quick-links grid is showing.
func UpdateModal(e *ecs.ECS) {
	modal, ok := components.Modal.First(e.World)
	if !ok {
		return
	}
	entry, ok := components.Search.First(e.World)
	if !ok {
		return
	}
	components.Modal.Get(modal).Open = components.Search.Get(entry).Machine.IsModalOpen()
}

// DrawModal draws the backdrop and the grid of quick links.
func DrawModal(e *ecs.ECS, screen *ebiten.Image) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	modal, ok := components.Modal.First(e.World)
	if !ok || !components.Modal.Get(modal).Open {
		return
	}
	pd := components.Page.Get(page)
	l := pd.Placed

	fillRect(screen, gamemath.Rect{W: float64(pd.Width), H: float64(pd.Height)}, cfg.Page.Backdrop)
	fillRoundRect(screen, l.Modal, modalRadius, cfg.Page.ModalFill)

	body := fonts.Small.Get()
	bold := fonts.Bold.Get()
	for i, tile := range components.Modal.Get(modal).Tiles {
		if i >= len(cfg.Sites) {
			break
		}
		site := cfg.Sites[i]
		r := tile.DisplacedBounds().Inset(tileGap)
		fill := cfg.Page.TileFill
		if tile.Hovered() {
			fill = cfg.Page.TileHover
		}
		fillRoundRect(screen, r, tileRadius, fill)

		icon := gamemath.Rect{X: r.X + (r.W-iconSize)/2, Y: r.Y + 8, W: iconSize, H: iconSize}
		fillRoundRect(screen, icon, iconSize/2, cfg.Page.BarFocusedBorder)
		drawTextCentered(screen, site.Initial(), bold, icon, cfg.Page.TextColor)

		label := gamemath.Rect{X: r.X, Y: icon.Y + icon.H, W: r.W, H: r.Y + r.H - icon.Y - icon.H}
		drawTextCentered(screen, fitText(site.Name, body, label.W-8), body, label, cfg.Page.MutedText)
	}
}
