package components

import (
	"github.com/automoto/startpage/assets/animations"
	"github.com/automoto/startpage/glow"
	"github.com/automoto/startpage/magnetic"
	"github.com/automoto/startpage/search"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SearchData ties the search state machine to its on-screen elements
type SearchData struct {
	Machine *search.Machine

	Bar         *magnetic.Behavior
	Trigger     *magnetic.Behavior
	Suggestions []*magnetic.Behavior

	// Trigger reveal: the bar slides left and the button fades in
	Shift        float64
	ButtonAlpha  float64
	ShiftTween   *gween.Tween
	FadeTween    *gween.Tween
	WasTriggered bool

	PointerOverBar bool
	Caret          *animations.Animation
	Backspace      int // frames the backspace key has been held
}

var Search = donburi.NewComponentType[SearchData]()

// GlowData eases the search bar halo between its looks
type GlowData struct {
	Transition *glow.Transition
	Current    glow.Config
}

var Glow = donburi.NewComponentType[GlowData]()

// ModalData holds the quick-links grid
type ModalData struct {
	Tiles []*magnetic.Behavior
	Open  bool // modal was open last frame
}

var Modal = donburi.NewComponentType[ModalData]()

// FieldData is the hit-testing space for magnetic elements
type FieldData struct {
	*magnetic.Field
}

var Field = donburi.NewComponentType[FieldData]()
