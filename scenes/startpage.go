package scenes

import (
	"log"
	"sync"

	"github.com/automoto/startpage/archetypes"
	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/components"
	"github.com/automoto/startpage/systems"
	"github.com/automoto/startpage/systems/factory"
	"github.com/automoto/startpage/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartPageScene is the start page: search, cursor, confetti and panels
type StartPageScene struct {
	ecs      *ecs.ECS
	panelsUI *ui.PanelsUI
	page     *donburi.Entry
	once     sync.Once
	err      error
}

// NewStartPageScene creates the start page scene
func NewStartPageScene() *StartPageScene {
	return &StartPageScene{}
}

// Err returns the error that stopped the scene from being configured.
func (s *StartPageScene) Err() error {
	return s.err
}

func (s *StartPageScene) Update() {
	s.once.Do(s.configure)
	if s.ecs == nil {
		return
	}

	// Panels take their clicks before the page sees them
	s.panelsUI.Update()
	p := components.Pointer.Get(s.page)
	x, y := ebiten.CursorPosition()
	p.OverPanel = s.panelsUI.Contains(x, y)

	s.ecs.Update()
}

func (s *StartPageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Page.Background)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	s.panelsUI.UI.Draw(screen)

	// the cursor stays above the panels
	systems.DrawCursor(s.ecs, screen)
}

// Close saves any open panel's edits.
func (s *StartPageScene) Close() {
	if s.panelsUI != nil {
		s.panelsUI.Close()
	}
}

func (s *StartPageScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input systems
	ecs.AddSystem(systems.UpdateViewport)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdatePanels)
	ecs.AddSystem(systems.UpdateSearch)
	ecs.AddSystem(systems.UpdateModal)
	ecs.AddSystem(systems.UpdateMagnetic)
	ecs.AddSystem(systems.UpdateConfetti)
	ecs.AddSystem(systems.UpdateCursor)

	// Frame clock: cursor spring, confetti loop, magnetic transitions
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateGlow)
	ecs.AddSystem(systems.UpdateDebug)

	// Add renderers
	ecs.AddRenderer(archetypes.Default, systems.DrawBackground)
	ecs.AddRenderer(archetypes.Default, systems.DrawDateTime)
	ecs.AddRenderer(archetypes.Default, systems.DrawGlow)
	ecs.AddRenderer(archetypes.Default, systems.DrawSearch)
	ecs.AddRenderer(archetypes.Default, systems.DrawPanelToggles)
	ecs.AddRenderer(archetypes.Default, systems.DrawModal)
	ecs.AddRenderer(archetypes.Default, systems.DrawConfetti)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)

	page, err := factory.CreatePage(ecs, cfg.C.Width, cfg.C.Height)
	if err != nil {
		log.Printf("Warning: %v", err)
		s.err = err
		return
	}
	factory.CreateSearch(ecs, page)
	factory.CreateModal(ecs, page)
	factory.CreateConfetti(ecs, page, systems.NewCanvas)
	factory.CreateCursor(ecs, page)

	s.page = page
	s.panelsUI = ui.NewPanelsUI(func() *components.PanelsData {
		return systems.GetPanels(ecs)
	})
	s.ecs = ecs
}
