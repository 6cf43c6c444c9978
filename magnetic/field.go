package magnetic

import (
	"github.com/automoto/startpage/frame"
	"github.com/automoto/startpage/gamemath"
	"github.com/solarlune/resolv"
)

const (
	// Tag marks element objects in the field's space.
	Tag      = "magnetic"
	probeTag = "pointer"

	cellSize = 16
)

type element struct {
	behavior *Behavior
	object   *resolv.Object
	enabled  bool
}

// Field hit-tests the pointer against every magnetic element and turns the
// result into Enter, Move and Leave calls. Element objects live in a resolv
// space at their displaced bounds, and a 1x1 probe object follows the
// pointer.
type Field struct {
	clock    *frame.Clock
	registry *Registry

	space    *resolv.Space
	probe    *resolv.Object
	elements []*element

	lastX, lastY float64
	hasSample    bool
}

// NewField creates a field covering a w x h window.
func NewField(w, h int, clock *frame.Clock, registry *Registry) *Field {
	f := &Field{clock: clock, registry: registry}
	f.Resize(w, h)
	return f
}

// Resize rebuilds the space for a new window size.
func (f *Field) Resize(w, h int) {
	if w < cellSize {
		w = cellSize
	}
	if h < cellSize {
		h = cellSize
	}
	f.space = resolv.NewSpace(w, h, cellSize, cellSize)
	f.probe = resolv.NewObject(f.lastX, f.lastY, 1, 1, probeTag)
	f.space.Add(f.probe)
	for _, e := range f.elements {
		f.space.Add(e.object)
		f.sync(e)
	}
}

// Registry returns the registry behaviors enter and leave.
func (f *Field) Registry() *Registry {
	return f.registry
}

// Add attaches a new magnetic element.
func (f *Field) Add(bounds gamemath.Rect, opts Options) *Behavior {
	b := NewBehavior(f.clock, f.registry, bounds, opts)
	obj := resolv.NewObject(bounds.X, bounds.Y, bounds.W, bounds.H, Tag)
	obj.SetShape(resolv.NewRectangle(0, 0, bounds.W, bounds.H))
	e := &element{behavior: b, object: obj, enabled: true}
	obj.Data = e
	f.space.Add(obj)
	f.elements = append(f.elements, e)
	return b
}

// Remove detaches b and drops it from the field.
func (f *Field) Remove(b *Behavior) {
	for i, e := range f.elements {
		if e.behavior != b {
			continue
		}
		b.Detach()
		f.space.Remove(e.object)
		f.elements = append(f.elements[:i], f.elements[i+1:]...)
		return
	}
}

// SetBounds moves b's layout bounds.
func (f *Field) SetBounds(b *Behavior, r gamemath.Rect) {
	if e := f.find(b); e != nil {
		b.SetBounds(r)
		e.object.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		f.sync(e)
	}
}

// SetEnabled hides or shows b. A hidden element is left immediately and
// ignored by hit testing.
func (f *Field) SetEnabled(b *Behavior, enabled bool) {
	e := f.find(b)
	if e == nil || e.enabled == enabled {
		return
	}
	e.enabled = enabled
	if !enabled {
		b.Leave()
	}
}

func (f *Field) find(b *Behavior) *element {
	for _, e := range f.elements {
		if e.behavior == b {
			return e
		}
	}
	return nil
}

func (f *Field) sync(e *element) {
	r := e.behavior.DisplacedBounds()
	e.object.X, e.object.Y = r.X, r.Y
	e.object.W, e.object.H = r.W, r.H
	e.object.Update()
}

// Pointer dispatches a pointer sample. Elements the pointer has left get
// Leave, newly entered ones get Enter, and every hovered element gets Move
// when the sample changed.
func (f *Field) Pointer(x, y float64) {
	moved := !f.hasSample || x != f.lastX || y != f.lastY
	f.lastX, f.lastY = x, y
	f.hasSample = true

	for _, e := range f.elements {
		f.sync(e)
	}
	f.probe.X, f.probe.Y = x, y
	f.probe.Update()

	inside := map[*element]bool{}
	if check := f.probe.Check(0, 0, Tag); check != nil {
		for _, obj := range check.ObjectsByTags(Tag) {
			e, ok := obj.Data.(*element)
			if !ok || !e.enabled {
				continue
			}
			// the space only narrows by cell
			if e.behavior.DisplacedBounds().Contains(x, y) {
				inside[e] = true
			}
		}
	}

	for _, e := range f.elements {
		b := e.behavior
		switch {
		case inside[e] && !b.Hovered():
			b.Enter()
			b.Move(x, y)
		case inside[e] && moved:
			b.Move(x, y)
		case !inside[e] && b.Hovered():
			b.Leave()
		}
	}
}

// PointerLeft leaves every element, as when the pointer exits the window.
func (f *Field) PointerLeft() {
	for _, e := range f.elements {
		e.behavior.Leave()
	}
	f.hasSample = false
}

// Behaviors returns the attached behaviors in insertion order.
func (f *Field) Behaviors() []*Behavior {
	out := make([]*Behavior, 0, len(f.elements))
	for _, e := range f.elements {
		out = append(out, e.behavior)
	}
	return out
}

// Len returns the number of attached elements.
func (f *Field) Len() int {
	return len(f.elements)
}
