package systems

import (
	"github.com/automoto/startpage/components"
	"github.com/automoto/startpage/search"
	"github.com/automoto/startpage/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// ActionID represents a page-level keyboard shortcut
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleGlass
	ActionToggleGlow
	ActionToggleCursor
	ActionToggleFullscreen
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// Bindings maps page shortcuts to keys
var Bindings = map[ActionID][]ebiten.Key{
	ActionToggleGlass:      {ebiten.KeyF1},
	ActionToggleGlow:       {ebiten.KeyF2},
	ActionToggleCursor:     {ebiten.KeyF3},
	ActionToggleFullscreen: {ebiten.KeyF11},
	ActionToggleDebug:      {ebiten.KeyF12},
}

// searchKeys maps keys to the search state machine's key events
var searchKeys = []struct {
	key ebiten.Key
	ev  search.Key
}{
	{ebiten.KeyArrowDown, search.KeyArrowDown},
	{ebiten.KeyArrowUp, search.KeyArrowUp},
	{ebiten.KeyEnter, search.KeyEnter},
	{ebiten.KeyNumpadEnter, search.KeyEnter},
	{ebiten.KeyEscape, search.KeyEscape},
}

const (
	repeatDelay    = 30 // frames before a held key starts repeating
	repeatInterval = 3
)

// JustTriggered reports whether any key bound to the action was pressed this frame
func JustTriggered(action ActionID) bool {
	for _, key := range Bindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// repeating reports a press on the first frame of a hold and then at the
// key repeat rate.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// UpdatePointer samples the mouse into the page's pointer tracker.
// Must run BEFORE the systems that hit-test the pointer.
func UpdatePointer(ecs *ecs.ECS) {
	page, ok := factory.PageEntry(ecs)
	if !ok {
		return
	}
	p := components.Pointer.Get(page)
	size := components.Page.Get(page)

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	p.Update(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	p.WasInside = p.Inside
	p.Inside = ebiten.IsFocused() &&
		x >= 0 && y >= 0 && x < float64(size.Width) && y < float64(size.Height)
	p.ClickTaken = false
}
