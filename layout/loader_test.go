package layout

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/startpage/assets"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="page">
  <object id="1" name="search" x="100" y="100" width="400" height="50"/>
  <object id="2" name="trigger" x="450" y="100" width="50" height="50"/>
  <object id="3" name="suggestions" x="150" y="160" width="200" height="40"/>
  <object id="4" name="modal" x="200" y="20" width="240" height="200">
   <properties>
    <property name="columns" type="int" value="2"/>
    <property name="padding" type="float" value="10"/>
    <property name="row_height" type="float" value="60"/>
   </properties>
  </object>
 </objectgroup>
</map>`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"page.tmx": {Data: []byte(testMap)}}
	l, err := Load(fsys, "page.tmx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Width != 640 || l.Height != 320 {
		t.Fatalf("expected 640x320, got %vx%v", l.Width, l.Height)
	}
	if l.Search.W != 400 || l.Trigger.X != 450 {
		t.Fatalf("unexpected rects: search %+v trigger %+v", l.Search, l.Trigger)
	}
	if l.ModalColumns != 2 || l.ModalPadding != 10 || l.ModalRowH != 60 {
		t.Fatalf("modal properties not read: %+v", l)
	}
	if l.MaxRows != 5 || l.MaxWidthRatio != 1 {
		t.Fatalf("expected defaults for missing properties, got rows=%d ratio=%v", l.MaxRows, l.MaxWidthRatio)
	}
}

func TestLoadMissingObject(t *testing.T) {
	broken := strings.Replace(testMap, `name="trigger"`, `name="other"`, 1)
	fsys := fstest.MapFS{"page.tmx": {Data: []byte(broken)}}
	if _, err := Load(fsys, "page.tmx"); err == nil || !strings.Contains(err.Error(), "trigger") {
		t.Fatalf("expected missing trigger error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestLoadEmbeddedLayout(t *testing.T) {
	l, err := Load(assets.FS, assets.LayoutPath)
	if err != nil {
		t.Fatalf("embedded layout failed to load: %v", err)
	}
	if l.Search.H != 58 || l.Trigger.W != 58 || l.TriggerShift != 73 {
		t.Fatalf("unexpected search geometry: %+v %+v shift %v", l.Search, l.Trigger, l.TriggerShift)
	}
	if l.Trigger.X+l.Trigger.W != l.Search.X+l.Search.W {
		t.Fatalf("trigger must sit at the right end of the search bar")
	}
}

func TestPlaceCentersAndNarrows(t *testing.T) {
	fsys := fstest.MapFS{"page.tmx": {Data: []byte(testMap)}}
	l, err := Load(fsys, "page.tmx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := l.Place(840, 420)
	if p.Search.X != 200 || p.Search.Y != 150 {
		t.Fatalf("expected search at (200,150), got (%v,%v)", p.Search.X, p.Search.Y)
	}
	if l.Search.X != 100 {
		t.Fatalf("Place modified the receiver")
	}

	l.MaxWidthRatio = 0.5
	p = l.Place(640, 320)
	if p.Search.W != 320 || p.Search.X != 140 {
		t.Fatalf("expected narrowed search (140, w=320), got %+v", p.Search)
	}
	if p.Trigger.X+p.Trigger.W != p.Search.X+p.Search.W {
		t.Fatalf("trigger must follow the narrowed search bar")
	}
}

func TestTiles(t *testing.T) {
	fsys := fstest.MapFS{"page.tmx": {Data: []byte(testMap)}}
	l, _ := Load(fsys, "page.tmx")

	first, fourth := l.Tile(0), l.Tile(3)
	if first.X != 210 || first.Y != 30 || first.W != 110 {
		t.Fatalf("unexpected first tile %+v", first)
	}
	if fourth.X != 320 || fourth.Y != 90 {
		t.Fatalf("unexpected fourth tile %+v", fourth)
	}
	if h := l.ModalHeight(7); h != 4*60+20 {
		t.Fatalf("expected modal height 260, got %v", h)
	}
	if r := l.Row(2); r.Y != 240 {
		t.Fatalf("expected third row at y=240, got %v", r.Y)
	}
}

func TestFitModal(t *testing.T) {
	fsys := fstest.MapFS{"page.tmx": {Data: []byte(testMap)}}
	l, _ := Load(fsys, "page.tmx")

	fit := l.FitModal(2)
	if fit.Modal.H != 80 || fit.Modal.Y != 80 || fit.Modal.X != 200 {
		t.Fatalf("unexpected fitted modal %+v", fit.Modal)
	}
	if l.Modal.H != 200 {
		t.Fatalf("FitModal must not modify the receiver")
	}
}
