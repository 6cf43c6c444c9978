package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRangeNudge(t *testing.T) {
	g := ConfettiLimits.Gravity
	if got := g.Nudge(0.27, 1); got != 0.28 {
		t.Fatalf("expected 0.28, got %v", got)
	}
	if got := g.Nudge(0.05, -1); got != 0.05 {
		t.Fatalf("expected clamp at min, got %v", got)
	}
	if got := ConfettiLimits.Count.Nudge(198, 1); got != 200 {
		t.Fatalf("expected clamp at max, got %v", got)
	}
	if got := ConfettiLimits.Count.Nudge(22, 0); got != 20 {
		t.Fatalf("expected snap to the step grid, got %v", got)
	}
	if got := GlowLimits.Alpha.Nudge(0.3, 5); got != 0.35 {
		t.Fatalf("expected 0.35, got %v", got)
	}
}

func TestClampConfetti(t *testing.T) {
	c := Confetti
	c.Count = 1000
	c.FadeOut = 0
	got := ClampConfetti(c)
	if got.Count != 200 || got.FadeOut != 0.005 {
		t.Fatalf("expected clamped config, got %+v", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Window.Width != nil || len(cfg.Sites) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for an empty path")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigApply(t *testing.T) {
	t.Cleanup(Reset)
	path := writeConfig(t, `
[window]
width = 1600

[confetti]
count = 40
fade_out = 0.9

[glow.intense]
a = 0.5

[search]
engine = "https://duckduckgo.com/"

[[sites]]
name = "Go"
url = "https://go.dev"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Apply()

	if C.Width != 1600 || C.Height != 720 {
		t.Fatalf("expected 1600x720, got %dx%d", C.Width, C.Height)
	}
	if Confetti.Count != 40 || Confetti.Gravity != 0.27 {
		t.Fatalf("unexpected confetti %+v", Confetti)
	}
	if Confetti.FadeOut != 0.05 {
		t.Fatalf("fade rate must be clamped, got %v", Confetti.FadeOut)
	}
	if Glow.Intense.Color.A != 0.5 || Glow.Intense.Blur != 120 {
		t.Fatalf("unexpected intense glow %+v", Glow.Intense)
	}
	if Search.Engine != "https://duckduckgo.com/" {
		t.Fatalf("unexpected engine %q", Search.Engine)
	}
	if len(Sites) != 1 || Sites[0].Name != "Go" {
		t.Fatalf("expected the file catalog, got %v", Sites)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "[window\nwidth = ")); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := LoadConfig(writeConfig(t, "[window]\nwidth = -5\n")); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := LoadConfig(writeConfig(t, "[[sites]]\nname = \"x\"\n")); err == nil {
		t.Fatalf("expected error for a site without url")
	}
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "startpage", "config.toml")
	created, err := WriteTemplate(path)
	if err != nil || !created {
		t.Fatalf("expected template written, created=%v err=%v", created, err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Fatalf("template must parse: %v", err)
	}
	created, err = WriteTemplate(path)
	if err != nil || created {
		t.Fatalf("existing file must be kept, created=%v err=%v", created, err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/xdg", "startpage", "config.toml") {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestNormalizeCursor(t *testing.T) {
	t.Cleanup(Reset)
	Cursor.FillOpacity = 3
	Cursor.Size = 1
	Normalize()
	if Cursor.FillOpacity != 1 || Cursor.Size != 8 {
		t.Fatalf("expected clamped cursor, got %+v", Cursor)
	}
}
