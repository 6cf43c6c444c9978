package components

import (
	"github.com/automoto/startpage/frame"
	"github.com/automoto/startpage/layout"
	"github.com/automoto/startpage/pointer"
	"github.com/yohamta/donburi"
)

// PageData holds the layout template and its placement in the current window
type PageData struct {
	Template *layout.Layout
	Placed   *layout.Layout
	Width    int
	Height   int
}

var Page = donburi.NewComponentType[PageData]()

// ClockData is the frame scheduler every animation on the page subscribes to
type ClockData struct {
	*frame.Clock
}

var Clock = donburi.NewComponentType[ClockData]()

// PointerData tracks the mouse for the current frame
type PointerData struct {
	pointer.Tracker
	Inside     bool // pointer is within the window
	WasInside  bool
	OverPanel  bool // pointer is over a settings panel
	ClickTaken bool // the press this frame was consumed by a page element
}

var Pointer = donburi.NewComponentType[PointerData]()
