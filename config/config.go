package config

import (
	"image/color"

	"github.com/automoto/startpage/confetti"
	"github.com/automoto/startpage/cursor"
	"github.com/automoto/startpage/glow"
	"github.com/automoto/startpage/magnetic"
	"github.com/automoto/startpage/sites"
)

// Config holds general window configuration
type Config struct {
	Width      int
	Height     int
	Title      string
	Fullscreen bool
	TPS        int
}

// GlowConfig holds the resting and focused looks of the search bar halo.
// Both are read every frame, so panel edits apply immediately.
type GlowConfig struct {
	Base    glow.Config
	Intense glow.Config
	Layers  int // rings used to approximate the blur
}

// MagneticConfig holds the per-element attraction presets
type MagneticConfig struct {
	Search     magnetic.Options
	Trigger    magnetic.Options
	Suggestion magnetic.Options
	Tile       magnetic.Options
}

// SearchConfig contains search bar behavior and copy
type SearchConfig struct {
	Engine      string
	Placeholder string

	// Trigger button reveal
	ShiftDuration float64 // seconds to slide the bar left
	FadeDuration  float64 // seconds to fade the button in or out

	CaretBlinkFrames int
	MaxInputRunes    int
}

// PageConfig contains page chrome: colors, date line and panel sizes
type PageConfig struct {
	Background       color.RGBA
	BarFill          color.RGBA
	BarBorder        color.RGBA
	BarFocusedBorder color.RGBA
	TextColor        color.RGBA
	PlaceholderColor color.RGBA
	MutedText        color.RGBA
	SelectedRow      color.RGBA
	Backdrop         color.RGBA
	ModalFill        color.RGBA
	TileFill         color.RGBA
	TileHover        color.RGBA
	CursorFill       color.RGBA
	CursorEdge       color.RGBA
	CursorBorder     color.RGBA

	DateFormat string
	TitleSize  float64
	BodySize   float64
	SmallSize  float64

	PanelWidth  int
	PanelMargin int
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Enabled     bool // log frame stats once per second
	StatsPeriod int  // frames between stat lines
}

// Global configuration instances
var C *Config
var Cursor cursor.Config
var Confetti confetti.Config
var Glow GlowConfig
var Magnetic MagneticConfig
var Search SearchConfig
var Page PageConfig
var Debug DebugConfig
var Sites []sites.Site

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Night     = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	Slate     = color.RGBA{R: 32, G: 35, B: 46, A: 255}
	Steel     = color.RGBA{R: 72, G: 135, B: 202, A: 255}
	LightGray = color.RGBA{R: 200, G: 204, B: 214, A: 255}
	Gray      = color.RGBA{R: 130, G: 134, B: 146, A: 255}
	Shade     = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	Glass     = color.RGBA{R: 255, G: 255, B: 255, A: 28}
	GlassEdge = color.RGBA{R: 255, G: 255, B: 255, A: 70}
)

func init() {
	Reset()
}

// Reset restores every setting to its built-in default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Start Page",
		TPS:    60,
	}

	Cursor = cursor.DefaultConfig()
	Confetti = confetti.DefaultConfig()

	Glow = GlowConfig{
		Base:    glow.DefaultBase(),
		Intense: glow.DefaultIntense(),
		Layers:  12,
	}

	Magnetic = MagneticConfig{
		Search:     magnetic.Options{Strength: 0.08, Scale: 1.01},
		Trigger:    magnetic.Options{Strength: 0.3, Scale: 1.05},
		Suggestion: magnetic.Options{Strength: 0.2, Scale: 1.03},
		Tile:       magnetic.DefaultOptions(),
	}

	Search = SearchConfig{
		Engine:           "https://www.google.com/search",
		Placeholder:      "Search Google or type a URL",
		ShiftDuration:    0.3,
		FadeDuration:     0.3,
		CaretBlinkFrames: 32,
		MaxInputRunes:    256,
	}

	Page = PageConfig{
		Background:       Night,
		BarFill:          Slate,
		BarBorder:        color.RGBA{R: 60, G: 64, B: 78, A: 255},
		BarFocusedBorder: Steel,
		TextColor:        White,
		PlaceholderColor: Gray,
		MutedText:        LightGray,
		SelectedRow:      color.RGBA{R: 72, G: 135, B: 202, A: 90},
		Backdrop:         Shade,
		ModalFill:        color.RGBA{R: 28, G: 31, B: 42, A: 240},
		TileFill:         color.RGBA{R: 44, G: 48, B: 62, A: 255},
		TileHover:        color.RGBA{R: 58, G: 64, B: 82, A: 255},
		CursorFill:       White,
		CursorEdge:       White,
		CursorBorder:     White,

		DateFormat: "Monday, January 2 | 3:04 PM",
		TitleSize:  22,
		BodySize:   18,
		SmallSize:  14,

		PanelWidth:  300,
		PanelMargin: 16,
	}

	Debug = DebugConfig{
		StatsPeriod: 60,
	}

	Sites = append([]sites.Site(nil), sites.Default...)
}
