package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/startpage/config"
	"github.com/automoto/startpage/confetti"
	"github.com/automoto/startpage/cursor"
	"github.com/automoto/startpage/glow"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the panel settings stored on disk
type SavedSettings struct {
	Cursor      cursor.Config   `json:"cursor"`
	Confetti    confetti.Config `json:"confetti"`
	GlowBase    glow.Config     `json:"glowBase"`
	GlowIntense glow.Config     `json:"glowIntense"`
	Fullscreen  bool            `json:"fullscreen"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := cfg.OpenStore()
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	// start from the current values so fields added later keep their defaults
	settings := CurrentSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the live configuration
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Cursor:      cfg.Cursor,
		Confetti:    cfg.Confetti,
		GlowBase:    cfg.Glow.Base,
		GlowIntense: cfg.Glow.Intense,
		Fullscreen:  cfg.C.Fullscreen,
	}
}

// SaveCurrentSettings saves the live configuration
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettingsGlobal applies settings before the first scene is created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Cursor = saved.Cursor
	cfg.Confetti = saved.Confetti
	cfg.Glow.Base = saved.GlowBase
	cfg.Glow.Intense = saved.GlowIntense
	cfg.C.Fullscreen = saved.Fullscreen
	cfg.Normalize()

	ebiten.SetFullscreen(saved.Fullscreen)
}

// ResetSettings clears the saved settings
func ResetSettings() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if err := cfg.ClearItem(gdataManager, settingsKey); err != nil {
		log.Printf("Warning: Could not clear settings: %v", err)
		return err
	}
	return nil
}
