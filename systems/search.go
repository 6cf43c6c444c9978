package systems

import (
	"unicode/utf8"

	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/fonts"
	"github.com/automoto/startpage/gamemath"
	"github.com/automoto/startpage/layout"
	"github.com/automoto/startpage/search"
	"github.com/automoto/startpage/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	barRadius   = 29
	rowRadius   = 10
	textPadding = 24
	caretWidth  = 2
)

// buttonVisible is the fade level above which the trigger button takes clicks
const buttonVisible = 0.5

var inputChars []rune

// UpdateSearch feeds pointer and keyboard input to the search state machine
// and runs the trigger reveal transition.
func UpdateSearch(e *ecs.ECS) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	entry, ok := components.Search.First(e.World)
	if !ok {
		return
	}
	s := components.Search.Get(entry)
	p := components.Pointer.Get(page)
	l := components.Page.Get(page).Placed

	updateHover(s, p)
	// a press already taken by a corner toggle is not an outside click
	if p.JustPressed() && p.Inside && !p.OverPanel && !p.ClickTaken {
		handleClick(e, s, p, l)
	}
	handleKeys(s)
	updateReveal(s)
	s.Caret.Update()
}

func updateHover(s *components.SearchData, p *components.PointerData) {
	m := s.Machine
	pt := p.Latest()
	// the zone is measured on the resting bar, not the magnetic one
	bar := s.Bar.Bounds()
	over := p.Inside && !p.OverPanel && bar.Contains(pt.X, pt.Y)

	switch {
	case over && p.Moved():
		m.PointerMove(pt.X-bar.X, bar.W)
	case !over && s.PointerOverBar:
		m.PointerLeave()
	}
	s.PointerOverBar = over
}

func handleClick(e *ecs.ECS, s *components.SearchData, p *components.PointerData, l *layout.Layout) {
	m := s.Machine
	pt := p.Latest()

	if m.IsModalOpen() {
		p.ClickTaken = true
		if modal, ok := components.Modal.First(e.World); ok {
			for i, tile := range components.Modal.Get(modal).Tiles {
				if i < len(m.Catalog()) && tile.DisplacedBounds().Contains(pt.X, pt.Y) {
					m.CloseModal()
					perform(search.Navigate(m.Catalog()[i].URL))
					return
				}
			}
		}
		if !l.Modal.Contains(pt.X, pt.Y) {
			m.CloseModal()
		}
		return
	}

	if m.Triggered() && s.ButtonAlpha > buttonVisible && s.Trigger.DisplacedBounds().Contains(pt.X, pt.Y) {
		p.ClickTaken = true
		m.OpenModal()
		return
	}

	if m.SuggestionsVisible() {
		for i := range m.Suggestions() {
			if i < len(s.Suggestions) && s.Suggestions[i].DisplacedBounds().Contains(pt.X, pt.Y) {
				p.ClickTaken = true
				perform(m.Choose(i))
				return
			}
		}
	}

	if s.Bar.DisplacedBounds().Contains(pt.X, pt.Y) {
		p.ClickTaken = true
		m.Focus()
		return
	}

	m.MouseDownOutside()
	m.Blur()
}

func handleKeys(s *components.SearchData) {
	m := s.Machine

	// escape closes the modal whether or not the input has focus
	if m.IsModalOpen() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			m.KeyDown(search.KeyEscape)
		}
		return
	}
	if !m.IsFocused() {
		return
	}

	value := m.Value()
	changed := false

	inputChars = ebiten.AppendInputChars(inputChars[:0])
	for _, r := range inputChars {
		if utf8.RuneCountInString(value) >= cfg.Search.MaxInputRunes {
			break
		}
		value += string(r)
		changed = true
	}
	if repeating(ebiten.KeyBackspace) && value != "" {
		_, size := utf8.DecodeLastRuneInString(value)
		value = value[:len(value)-size]
		changed = true
	}
	if changed {
		m.Change(value)
		s.Caret.Restart()
	}

	for _, k := range searchKeys {
		pressed := inpututil.IsKeyJustPressed(k.key)
		if k.ev == search.KeyArrowDown || k.ev == search.KeyArrowUp {
			pressed = repeating(k.key)
		}
		if !pressed {
			continue
		}
		a := m.KeyDown(k.ev)
		if a.Kind != search.ActionNone {
			perform(a)
		}
	}
}

// updateReveal slides the bar and fades the trigger button whenever the
// trigger state flips.
func updateReveal(s *components.SearchData) {
	m := s.Machine
	dt := float32(1 / float64(cfg.C.TPS))

	if m.Triggered() != s.WasTriggered {
		s.WasTriggered = m.Triggered()
		shift, alpha := 0.0, 0.0
		if s.WasTriggered {
			shift, alpha = 1, 1
		}
		s.ShiftTween = gween.New(float32(s.Shift), float32(shift), float32(cfg.Search.ShiftDuration), ease.InOutQuad)
		s.FadeTween = gween.New(float32(s.ButtonAlpha), float32(alpha), float32(cfg.Search.FadeDuration), ease.InOutQuad)
	}

	if s.ShiftTween != nil {
		v, done := s.ShiftTween.Update(dt)
		s.Shift = float64(v)
		if done {
			s.ShiftTween = nil
		}
	}
	if s.FadeTween != nil {
		v, done := s.FadeTween.Update(dt)
		s.ButtonAlpha = float64(v)
		if done {
			s.FadeTween = nil
		}
	}
}

// DrawSearch renders the bar, the trigger button and the autocomplete list.
func DrawSearch(e *ecs.ECS, screen *ebiten.Image) {
	page, ok := factory.PageEntry(e)
	if !ok {
		return
	}
	entry, ok := components.Search.First(e.World)
	if !ok {
		return
	}
	s := components.Search.Get(entry)
	l := components.Page.Get(page).Placed
	m := s.Machine

	drawTrigger(screen, s)
	drawBar(screen, s, l)
	if m.SuggestionsVisible() {
		drawSuggestions(screen, s)
	}
}

// inputBounds is the text box: the displaced bar minus the revealed shift.
func inputBounds(s *components.SearchData, l *layout.Layout) gamemath.Rect {
	r := s.Bar.DisplacedBounds()
	r.W -= s.Shift * l.TriggerShift
	return r
}

func drawBar(screen *ebiten.Image, s *components.SearchData, l *layout.Layout) {
	m := s.Machine
	r := inputBounds(s, l)

	border := cfg.Page.BarBorder
	if m.IsFocused() {
		border = cfg.Page.BarFocusedBorder
	}
	strokeRoundRect(screen, r, barRadius, 2, border, cfg.Page.BarFill)

	face := fonts.Body.Get()
	inner := r.Inset(textPadding)
	inner.Y, inner.H = r.Y, r.H

	if m.Value() == "" {
		drawTextLeft(screen, cfg.Search.Placeholder, face, inner.X, r, cfg.Page.PlaceholderColor)
	}
	shown := visibleTail(m.Value(), func(s string) float64 { return textWidth(face, s) }, inner.W)
	drawTextLeft(screen, shown, face, inner.X, r, cfg.Page.TextColor)

	if m.IsFocused() && s.Caret.On() {
		x := inner.X + textWidth(face, shown) + 1
		caret := gamemath.Rect{X: x, Y: r.Y + r.H*0.25, W: caretWidth, H: r.H * 0.5}
		fillRect(screen, caret, cfg.Page.TextColor)
	}
}

// visibleTail trims the front of s until it fits in width, so the caret
// end stays visible.
func visibleTail(s string, measure func(string) float64, width float64) string {
	for s != "" && measure(s) > width {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

func drawTrigger(screen *ebiten.Image, s *components.SearchData) {
	if s.ButtonAlpha <= 0 {
		return
	}
	r := s.Trigger.DisplacedBounds()
	fill := withAlpha(cfg.Page.BarFill, s.ButtonAlpha)
	edge := withAlpha(cfg.Page.BarFocusedBorder, s.ButtonAlpha)
	rad := r.H / 2
	fillRoundRect(screen, r, rad, edge)
	fillRoundRect(screen, r.Inset(2), rad-2, fill)

	// a 2x2 grid of dots marks the quick links
	cx, cy := r.Center()
	dot := withAlpha(cfg.Page.TextColor, s.ButtonAlpha)
	for _, d := range [][2]float64{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		fillRoundRect(screen, gamemath.Rect{X: cx + d[0]*6 - 3, Y: cy + d[1]*6 - 3, W: 6, H: 6}, 3, dot)
	}
}

func drawSuggestions(screen *ebiten.Image, s *components.SearchData) {
	m := s.Machine
	face := fonts.Body.Get()
	small := fonts.Small.Get()

	for i, site := range m.Suggestions() {
		if i >= len(s.Suggestions) {
			break
		}
		r := s.Suggestions[i].DisplacedBounds()
		fill := cfg.Page.BarFill
		if i == m.Selected() || s.Suggestions[i].Hovered() {
			fill = cfg.Page.TileHover
		}
		fillRoundRect(screen, r, rowRadius, fill)

		icon := gamemath.Rect{X: r.X + 10, Y: r.Y + (r.H-28)/2, W: 28, H: 28}
		fillRoundRect(screen, icon, 6, cfg.Page.BarFocusedBorder)
		drawTextCentered(screen, site.Initial(), small, icon, cfg.Page.TextColor)
		drawTextLeft(screen, site.Name, face, icon.X+icon.W+12, r, cfg.Page.TextColor)
	}
}
