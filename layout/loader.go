package layout

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/automoto/startpage/gamemath"
	"github.com/lafriks/go-tiled"
)

// Load parses a TMX map into a Layout. It takes an fs.FS so callers can pass
// the embedded assets or a directory on disk.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	l := &Layout{
		Width:         float64(m.Width * m.TileWidth),
		Height:        float64(m.Height * m.TileHeight),
		MaxWidthRatio: 1,
		MaxRows:       5,
		ModalColumns:  3,
	}

	found := map[string]bool{}
	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			r := gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			found[o.Name] = true
			switch o.Name {
			case "datetime":
				l.DateTime = r
			case "search":
				l.Search = r
				l.TriggerShift = o.Properties.GetFloat("trigger_shift")
				if ratio := o.Properties.GetFloat("max_width_ratio"); ratio > 0 {
					l.MaxWidthRatio = ratio
				}
			case "trigger":
				l.Trigger = r
			case "suggestions":
				l.Suggestions = r
				if n := o.Properties.GetInt("max_rows"); n > 0 {
					l.MaxRows = n
				}
			case "modal":
				l.Modal = r
				if n := o.Properties.GetInt("columns"); n > 0 {
					l.ModalColumns = n
				}
				l.ModalPadding = o.Properties.GetFloat("padding")
				l.ModalRowH = o.Properties.GetFloat("row_height")
			case "glass_toggle":
				l.GlassToggle = r
			case "glow_toggle":
				l.GlowToggle = r
			}
		}
	}

	for _, name := range []string{"search", "trigger", "suggestions", "modal"} {
		if !found[name] {
			return nil, fmt.Errorf("layout %s: missing object %q", tmxPath, name)
		}
	}
	if l.ModalRowH <= 0 {
		l.ModalRowH = l.Modal.H / 3
	}
	return l, nil
}

// Place fits the layout into a w x h window: the map is centered, and the
// search bar is narrowed to MaxWidthRatio of the window when it would not
// fit. The receiver is not modified.
func (l *Layout) Place(w, h float64) *Layout {
	out := *l
	dx := math.Round((w - l.Width) / 2)
	dy := math.Round((h - l.Height) / 2)
	move := func(r gamemath.Rect) gamemath.Rect { return r.Offset(dx, dy) }

	out.Width, out.Height = w, h
	out.DateTime = move(l.DateTime)
	out.Search = move(l.Search)
	out.Trigger = move(l.Trigger)
	out.Suggestions = move(l.Suggestions)
	out.Modal = move(l.Modal)

	if maxW := w * l.MaxWidthRatio; out.Search.W > maxW {
		shrink := out.Search.W - maxW
		out.Search.X += shrink / 2
		out.Search.W = maxW
		out.Trigger.X -= shrink / 2
		out.Suggestions.X += shrink / 2
	}

	// the panel toggles stay pinned to the bottom-right corner
	out.GlassToggle = l.GlassToggle.Offset(w-l.Width, h-l.Height)
	out.GlowToggle = l.GlowToggle.Offset(w-l.Width, h-l.Height)
	return &out
}
