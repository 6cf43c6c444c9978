package ui

import (
	"fmt"
	goimage "image"
	"image/color"

	"github.com/automoto/startpage/components"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/fonts"
	"github.com/automoto/startpage/glow"
	"github.com/automoto/startpage/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// setting binds one -/+ row to a config value
type setting struct {
	name   string
	format string
	rng    cfg.Range
	get    func() float64
	set    func(float64)
	value  *widget.Label
}

// PanelsUI holds the ebitenui settings panels
type PanelsUI struct {
	UI     *ebitenui.UI
	Panels func() *components.PanelsData

	root   *widget.Container
	glass  *widget.Container
	glow   *widget.Container
	shown  components.PanelID
	cursor *widget.Button

	settings []*setting

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewPanelsUI creates the Glassmorphism and Glow panels. panels returns the
// page's panel state, which decides what is shown.
func NewPanelsUI(panels func() *components.PanelsData) *PanelsUI {
	pui := &PanelsUI{Panels: panels, shown: components.PanelNone}

	pui.loadFonts()
	pui.buildUI()

	return pui
}

func (pui *PanelsUI) loadFonts() {
	pui.titleFace = fonts.Bold.Face()
	pui.normalFace = fonts.Small.Face()
	pui.smallFace = fonts.Small.Face()
}

func (pui *PanelsUI) buildUI() {
	// Root container with AnchorLayout; panels pin to the top-right corner
	pui.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Page.PanelMargin)),
		)),
	)

	pui.glass = pui.buildPanel("GLASSMORPHISM", pui.glassRows)
	pui.glow = pui.buildPanel("GLOW", pui.glowRows)

	pui.UI = &ebitenui.UI{
		Container: pui.root,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (pui *PanelsUI) buildPanel(title string, rows func(*widget.Container)) *widget.Container {
	padding := widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{28, 31, 42, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Page.PanelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	rows(panel)
	return panel
}

func (pui *PanelsUI) glassRows(panel *widget.Container) {
	pui.cursor = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 22),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(cursorLabel(), &pui.smallFace, pui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cfg.Cursor.Visible = !cfg.Cursor.Visible
			pui.changed()
		}),
	)
	panel.AddChild(pui.cursor)

	c := cfg.CursorLimits
	pui.section(panel, "Cursor")
	pui.addRow(panel, &setting{name: "Fill opacity", format: "%.2f", rng: c.Opacity,
		get: func() float64 { return cfg.Cursor.FillOpacity }, set: func(v float64) { cfg.Cursor.FillOpacity = v }})
	pui.addRow(panel, &setting{name: "Blur radius", format: "%.2f", rng: c.Blur,
		get: func() float64 { return cfg.Cursor.BlurRadius }, set: func(v float64) { cfg.Cursor.BlurRadius = v }})
	pui.addRow(panel, &setting{name: "Edge thickness", format: "%.1f", rng: c.Edge,
		get: func() float64 { return cfg.Cursor.EdgeThickness }, set: func(v float64) { cfg.Cursor.EdgeThickness = v }})
	pui.addRow(panel, &setting{name: "Edge opacity", format: "%.2f", rng: c.Opacity,
		get: func() float64 { return cfg.Cursor.EdgeOpacity }, set: func(v float64) { cfg.Cursor.EdgeOpacity = v }})
	pui.addRow(panel, &setting{name: "Border opacity", format: "%.2f", rng: c.Opacity,
		get: func() float64 { return cfg.Cursor.BorderOpacity }, set: func(v float64) { cfg.Cursor.BorderOpacity = v }})

	l := cfg.ConfettiLimits
	pui.section(panel, "Confetti")
	pui.addRow(panel, &setting{name: "Count", format: "%.0f", rng: l.Count,
		get: func() float64 { return float64(cfg.Confetti.Count) }, set: func(v float64) { cfg.Confetti.Count = int(v) }})
	pui.addRow(panel, &setting{name: "Size", format: "%.1f", rng: l.Size,
		get: func() float64 { return cfg.Confetti.Size }, set: func(v float64) { cfg.Confetti.Size = v }})
	pui.addRow(panel, &setting{name: "Velocity", format: "%.1f", rng: l.Velocity,
		get: func() float64 { return cfg.Confetti.Velocity }, set: func(v float64) { cfg.Confetti.Velocity = v }})
	pui.addRow(panel, &setting{name: "Gravity", format: "%.2f", rng: l.Gravity,
		get: func() float64 { return cfg.Confetti.Gravity }, set: func(v float64) { cfg.Confetti.Gravity = v }})
	pui.addRow(panel, &setting{name: "Fade out", format: "%.3f", rng: l.FadeOut,
		get: func() float64 { return cfg.Confetti.FadeOut }, set: func(v float64) { cfg.Confetti.FadeOut = v }})
}

func (pui *PanelsUI) glowRows(panel *widget.Container) {
	pui.section(panel, "Unfocused")
	pui.glowLook(panel, &cfg.Glow.Base)
	pui.section(panel, "Focused")
	pui.glowLook(panel, &cfg.Glow.Intense)
}

func (pui *PanelsUI) glowLook(panel *widget.Container, g *glow.Config) {
	l := cfg.GlowLimits
	pui.addRow(panel, &setting{name: "Blur", format: "%.0f", rng: l.Blur,
		get: func() float64 { return g.Blur }, set: func(v float64) { g.Blur = v }})
	pui.addRow(panel, &setting{name: "Spread", format: "%.0f", rng: l.Spread,
		get: func() float64 { return g.Spread }, set: func(v float64) { g.Spread = v }})
	pui.addRow(panel, &setting{name: "Red", format: "%.0f", rng: l.Channel,
		get: func() float64 { return g.Color.R }, set: func(v float64) { g.Color.R = v }})
	pui.addRow(panel, &setting{name: "Green", format: "%.0f", rng: l.Channel,
		get: func() float64 { return g.Color.G }, set: func(v float64) { g.Color.G = v }})
	pui.addRow(panel, &setting{name: "Blue", format: "%.0f", rng: l.Channel,
		get: func() float64 { return g.Color.B }, set: func(v float64) { g.Color.B = v }})
	pui.addRow(panel, &setting{name: "Alpha", format: "%.2f", rng: l.Alpha,
		get: func() float64 { return g.Color.A }, set: func(v float64) { g.Color.A = v }})
}

func (pui *PanelsUI) section(panel *widget.Container, name string) {
	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(name, &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{100, 180, 255, 255},
		}),
	))
}

// addRow adds "[-] value [+] name" bound to s.
func (pui *PanelsUI) addRow(panel *widget.Container, s *setting) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(pui.stepButton("-", s, -1))
	s.value = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf(s.format, s.get()), &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(s.value)
	row.AddChild(pui.stepButton("+", s, 1))
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(s.name, &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 204, 214, 255},
		}),
	))

	pui.settings = append(pui.settings, s)
	panel.AddChild(row)
}

func (pui *PanelsUI) stepButton(label string, s *setting, dir int) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(22, 20),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.smallFace, pui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.set(s.rng.Nudge(s.get(), dir))
			pui.changed()
		}),
	)
}

func (pui *PanelsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (pui *PanelsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 255, 200, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

func cursorLabel() string {
	if cfg.Cursor.Visible {
		return "Custom cursor: on"
	}
	return "Custom cursor: off"
}

func (pui *PanelsUI) changed() {
	if p := pui.Panels(); p != nil {
		p.Changed = true
	}
	pui.UpdateUI()
}

// UpdateUI refreshes every value label from the live config
func (pui *PanelsUI) UpdateUI() {
	for _, s := range pui.settings {
		if s.value != nil {
			s.value.Label = fmt.Sprintf(s.format, s.get())
		}
	}
	if pui.cursor != nil {
		if textWidget := pui.cursor.Text(); textWidget != nil {
			textWidget.Label = cursorLabel()
		}
	}
}

// sync shows the panel the page state asks for.
func (pui *PanelsUI) sync() {
	p := pui.Panels()
	if p == nil || p.Open == pui.shown {
		return
	}
	pui.root.RemoveChildren()
	switch p.Open {
	case components.PanelGlass:
		pui.root.AddChild(pui.glass)
	case components.PanelGlow:
		pui.root.AddChild(pui.glow)
	}
	pui.shown = p.Open
	pui.UpdateUI()
}

// Contains reports whether (x, y) is over the visible panel.
func (pui *PanelsUI) Contains(x, y int) bool {
	var panel *widget.Container
	switch pui.shown {
	case components.PanelGlass:
		panel = pui.glass
	case components.PanelGlow:
		panel = pui.glow
	default:
		return false
	}
	return goimage.Pt(x, y).In(panel.GetWidget().Rect)
}

// Update processes panel input. Must run before the page systems so clicks on
// a panel do not reach the page.
func (pui *PanelsUI) Update() {
	pui.sync()
	pui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !pui.initialized {
		pui.initialized = true
		pui.UpdateUI()
	}
}

// Close hides any open panel, saving edits.
func (pui *PanelsUI) Close() {
	if p := pui.Panels(); p != nil {
		systems.ClosePanel(p)
	}
}
