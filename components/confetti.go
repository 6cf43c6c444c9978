package components

import (
	"github.com/automoto/startpage/confetti"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ConfettiData holds the particle system and the full-window layer it paints
type ConfettiData struct {
	System *confetti.System
	Layer  *ebiten.Image
}

var Confetti = donburi.NewComponentType[ConfettiData]()
