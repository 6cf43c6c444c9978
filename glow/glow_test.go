package glow

import (
	"image/color"
	"math"
	"testing"
)

func TestMixEndpoints(t *testing.T) {
	base, intense := DefaultBase(), DefaultIntense()
	if got := Mix(base, intense, 0); got != base {
		t.Fatalf("expected base at 0, got %+v", got)
	}
	if got := Mix(base, intense, 1); got != intense {
		t.Fatalf("expected intense at 1, got %+v", got)
	}
	if got := Mix(base, intense, 2); got != intense {
		t.Fatalf("t must be clamped, got %+v", got)
	}
	mid := Mix(base, intense, 0.5)
	if mid.Blur != 80 || mid.Spread != 37.5 {
		t.Fatalf("unexpected midpoint %+v", mid)
	}
}

func TestColorRGBA(t *testing.T) {
	got := Color{R: 72, G: 135, B: 202, A: 0.5}.RGBA()
	want := color.NRGBA{R: 72, G: 135, B: 202, A: 128}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := (Color{R: 300, A: 2}).RGBA(); got.R != 255 || got.A != 255 {
		t.Fatalf("channels must clamp, got %v", got)
	}
}

func TestLayers(t *testing.T) {
	c := DefaultBase()
	layers := Layers(c, 8)
	if len(layers) != 9 {
		t.Fatalf("expected 9 layers, got %d", len(layers))
	}
	if layers[0].Grow != c.Spread || layers[0].Alpha != c.Color.A {
		t.Fatalf("first layer must be the solid spread, got %+v", layers[0])
	}
	last := layers[len(layers)-1]
	if last.Grow != c.Spread+c.Blur || last.Alpha != 0 {
		t.Fatalf("last layer must reach spread+blur and fade out, got %+v", last)
	}
	if Layers(Config{}, 8) != nil {
		t.Fatalf("transparent glow must draw nothing")
	}
}

func TestTransitionSettles(t *testing.T) {
	tr := NewTransition(60)
	for i := 0; i < 120; i++ {
		tr.Update(true, DefaultBase(), DefaultIntense())
	}
	if math.Abs(tr.Progress()-1) > 0.01 {
		t.Fatalf("expected focused look after 2s, progress %v", tr.Progress())
	}
	for i := 0; i < 120; i++ {
		tr.Update(false, DefaultBase(), DefaultIntense())
	}
	if math.Abs(tr.Progress()) > 0.01 {
		t.Fatalf("expected resting look after 2s, progress %v", tr.Progress())
	}

	tr.Snap(true)
	if tr.Progress() != 1 {
		t.Fatalf("expected snap to focused")
	}
}
