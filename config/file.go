package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/automoto/startpage/glow"
	"github.com/automoto/startpage/sites"
)

// FileConfig represents the TOML configuration file. Unset keys keep the
// built-in defaults.
type FileConfig struct {
	Window   WindowFile   `toml:"window"`
	Cursor   CursorFile   `toml:"cursor"`
	Confetti ConfettiFile `toml:"confetti"`
	Glow     GlowFile     `toml:"glow"`
	Search   SearchFile   `toml:"search"`
	Sites    []sites.Site `toml:"sites"`
}

// WindowFile maps window settings.
type WindowFile struct {
	Width      *int  `toml:"width"`
	Height     *int  `toml:"height"`
	Fullscreen *bool `toml:"fullscreen"`
}

// CursorFile maps cursor settings.
type CursorFile struct {
	Visible          *bool    `toml:"visible"`
	Size             *float64 `toml:"size"`
	Intensity        *float64 `toml:"intensity"`
	StretchIntensity *float64 `toml:"stretch_intensity"`
	FillOpacity      *float64 `toml:"fill_opacity"`
	BlurRadius       *float64 `toml:"blur_radius"`
	EdgeThickness    *float64 `toml:"edge_thickness"`
	EdgeOpacity      *float64 `toml:"edge_opacity"`
	BorderOpacity    *float64 `toml:"border_opacity"`
}

// ConfettiFile maps confetti settings.
type ConfettiFile struct {
	Count    *int     `toml:"count"`
	Size     *float64 `toml:"size"`
	Velocity *float64 `toml:"velocity"`
	Gravity  *float64 `toml:"gravity"`
	FadeOut  *float64 `toml:"fade_out"`
}

// GlowFile maps both glow looks.
type GlowFile struct {
	Base    GlowLookFile `toml:"base"`
	Intense GlowLookFile `toml:"intense"`
}

// GlowLookFile maps a single glow look.
type GlowLookFile struct {
	Blur   *float64 `toml:"blur"`
	Spread *float64 `toml:"spread"`
	R      *float64 `toml:"r"`
	G      *float64 `toml:"g"`
	B      *float64 `toml:"b"`
	A      *float64 `toml:"a"`
}

// SearchFile maps search settings.
type SearchFile struct {
	Engine      *string `toml:"engine"`
	Placeholder *string `toml:"placeholder"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return FileConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (f FileConfig) validate() error {
	if w := f.Window.Width; w != nil && *w <= 0 {
		return fmt.Errorf("window width must be positive, got %d", *w)
	}
	if h := f.Window.Height; h != nil && *h <= 0 {
		return fmt.Errorf("window height must be positive, got %d", *h)
	}
	for i, s := range f.Sites {
		if s.Name == "" || s.URL == "" {
			return fmt.Errorf("site %d needs a name and url", i)
		}
	}
	return nil
}

// Apply overlays the file onto the globals and clamps the result.
func (f FileConfig) Apply() {
	set(&C.Width, f.Window.Width)
	set(&C.Height, f.Window.Height)
	set(&C.Fullscreen, f.Window.Fullscreen)

	c := f.Cursor
	set(&Cursor.Visible, c.Visible)
	set(&Cursor.Size, c.Size)
	set(&Cursor.Intensity, c.Intensity)
	set(&Cursor.StretchIntensity, c.StretchIntensity)
	set(&Cursor.FillOpacity, c.FillOpacity)
	set(&Cursor.BlurRadius, c.BlurRadius)
	set(&Cursor.EdgeThickness, c.EdgeThickness)
	set(&Cursor.EdgeOpacity, c.EdgeOpacity)
	set(&Cursor.BorderOpacity, c.BorderOpacity)

	k := f.Confetti
	set(&Confetti.Count, k.Count)
	set(&Confetti.Size, k.Size)
	set(&Confetti.Velocity, k.Velocity)
	set(&Confetti.Gravity, k.Gravity)
	set(&Confetti.FadeOut, k.FadeOut)

	f.Glow.Base.applyTo(&Glow.Base)
	f.Glow.Intense.applyTo(&Glow.Intense)

	set(&Search.Engine, f.Search.Engine)
	set(&Search.Placeholder, f.Search.Placeholder)

	if len(f.Sites) > 0 {
		Sites = append([]sites.Site(nil), f.Sites...)
	}

	Normalize()
}

func (g GlowLookFile) applyTo(c *glow.Config) {
	set(&c.Blur, g.Blur)
	set(&c.Spread, g.Spread)
	set(&c.Color.R, g.R)
	set(&c.Color.G, g.G)
	set(&c.Color.B, g.B)
	set(&c.Color.A, g.A)
}

func set[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}

// DefaultTemplate is written by `startpage config init`.
const DefaultTemplate = `# startpage configuration

[window]
# width = 1280
# height = 720
# fullscreen = false

[cursor]
# visible = true
# size = 40
# intensity = 0.56
# stretch_intensity = 0.19

[confetti]
# count = 20
# size = 2
# velocity = 3.5
# gravity = 0.27
# fade_out = 0.028

[glow.base]
# blur = 40
# spread = 15
# r = 72
# g = 135
# b = 202
# a = 0.3

[glow.intense]
# blur = 120
# spread = 60
# a = 0.8

[search]
# engine = "https://www.google.com/search"
# placeholder = "Search Google or type a URL"

# [[sites]]
# name = "Gmail"
# url = "https://mail.google.com"
# favicon = "https://www.google.com/s2/favicons?domain=mail.google.com&sz=64"
`

// WriteTemplate creates the default config file unless one already exists.
func WriteTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultTemplate), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
