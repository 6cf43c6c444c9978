package gamemath

import (
	"image/color"
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.2); !near(got, 12) {
		t.Fatalf("expected 12, got %v", got)
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	if !r.Contains(10, 10) {
		t.Fatalf("top-left corner must be inside")
	}
	if r.Contains(30, 15) || r.Contains(15, 20) {
		t.Fatalf("right and bottom edges must be outside")
	}
	if cx, cy := r.Center(); cx != 20 || cy != 15 {
		t.Fatalf("expected center (20,15), got (%v,%v)", cx, cy)
	}
}

func TestAffineOrder(t *testing.T) {
	// scale first, then move: (1,0) -> (2,0) -> (12,5)
	m := Identity().Scale(2, 2).Translate(10, 5)
	x, y := m.Apply(1, 0)
	if !near(x, 12) || !near(y, 5) {
		t.Fatalf("expected (12,5), got (%v,%v)", x, y)
	}

	// rotating (1,0) by 90 degrees points it down the screen
	x, y = Identity().Rotate(90).Apply(1, 0)
	if !near(x, 0) || !near(y, 1) {
		t.Fatalf("expected (0,1), got (%v,%v)", x, y)
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    color.RGBA
	}{
		{0, 1, 0.5, color.RGBA{255, 0, 0, 255}},
		{120, 1, 0.5, color.RGBA{0, 255, 0, 255}},
		{240, 1, 0.5, color.RGBA{0, 0, 255, 255}},
		{360, 1, 0.5, color.RGBA{255, 0, 0, 255}},
		{0, 0, 1, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := HSLToRGB(tt.h, tt.s, tt.l); got != tt.want {
			t.Errorf("HSLToRGB(%v,%v,%v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}
