package systems

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/fonts"
	"github.com/automoto/startpage/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawBackground clears the page.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Page.Background)
}

// DrawDateTime shows the current date and time above the search bar.
func DrawDateTime(e *ecs.ECS, screen *ebiten.Image) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	l := components.Page.Get(page).Placed
	label := time.Now().Format(cfg.Page.DateFormat)
	drawTextCentered(screen, label, fonts.Title.Get(), l.DateTime, cfg.Page.MutedText)
}

// fitText shortens s with an ellipsis until it fits width.
func fitText(s string, face font.Face, width float64) string {
	if textWidth(face, s) <= width {
		return s
	}
	const ellipsis = "…"
	for s != "" {
		_, size := utf8.DecodeLastRuneInString(s)
		s = strings.TrimRight(s[:len(s)-size], " ")
		if textWidth(face, s+ellipsis) <= width {
			return s + ellipsis
		}
	}
	return ellipsis
}
