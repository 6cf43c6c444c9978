package components

import "github.com/yohamta/donburi"

// PanelID names a settings panel
type PanelID int

const (
	PanelNone PanelID = iota
	PanelGlass
	PanelGlow
)

// PanelsData tracks which settings panel is showing
type PanelsData struct {
	Open    PanelID
	Changed bool // settings were edited since the panel opened
}

var Panels = donburi.NewComponentType[PanelsData]()

// StatsData accumulates debug counters between log lines
type StatsData struct {
	Frames  int
	Spawned int
	Clicks  int
}

var Stats = donburi.NewComponentType[StatsData]()
