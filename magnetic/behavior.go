package magnetic

import (
	"github.com/automoto/startpage/frame"
	"github.com/automoto/startpage/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Behavior is the magnetic effect attached to one element.
//
// Pointer moves are coalesced: each Move cancels the previous pending frame
// request, so at most one displacement is computed per frame, from the
// latest sample. The displacement target is measured from the element's
// layout bounds, not its displaced bounds, so the pull does not feed back on
// itself.
type Behavior struct {
	opts     Options
	bounds   gamemath.Rect
	strength float64

	clock    *frame.Clock
	registry *Registry

	attached bool
	hovered  bool

	pending frame.Handle
	anim    *frame.Loop
	tx, ty  *gween.Tween
	ts      *gween.Tween

	offset Offset
}

// NewBehavior attaches a behavior with the given options and layout bounds.
func NewBehavior(clock *frame.Clock, registry *Registry, bounds gamemath.Rect, opts Options) *Behavior {
	b := &Behavior{
		opts:     opts,
		clock:    clock,
		registry: registry,
		attached: true,
		offset:   Rest,
	}
	b.anim = frame.NewLoop(clock, b.step)
	b.SetBounds(bounds)
	return b
}

// SetBounds re-measures the element and recomputes its effective strength.
func (b *Behavior) SetBounds(r gamemath.Rect) {
	b.bounds = r
	b.strength = EffectiveStrength(b.opts.Strength, r.W, r.H)
}

func (b *Behavior) Bounds() gamemath.Rect {
	return b.bounds
}

// DisplacedBounds returns the bounds as currently drawn.
func (b *Behavior) DisplacedBounds() gamemath.Rect {
	return b.offset.Apply(b.bounds)
}

func (b *Behavior) Strength() float64 {
	return b.strength
}

func (b *Behavior) Options() Options {
	return b.opts
}

func (b *Behavior) Offset() Offset {
	return b.offset
}

func (b *Behavior) Hovered() bool {
	return b.hovered
}

func (b *Behavior) Attached() bool {
	return b.attached
}

// Enter marks the pointer as inside the element.
func (b *Behavior) Enter() {
	if !b.attached || b.hovered {
		return
	}
	b.hovered = true
	b.registry.Enter(b)
}

// Move schedules a displacement toward (x, y) for the next frame.
func (b *Behavior) Move(x, y float64) {
	if !b.attached || !b.hovered {
		return
	}
	b.pending.Cancel()
	b.pending = b.clock.RequestFrame(func(frame.Info) {
		cx, cy := b.bounds.Center()
		target := Offset{
			X:     (x - cx) * b.strength,
			Y:     (y - cy) * b.strength,
			Scale: b.opts.Scale,
		}
		b.animateTo(target, MoveDuration, ease.OutQuad)
	})
}

// Leave relaxes the element back to rest and releases magnetic mode.
func (b *Behavior) Leave() {
	b.pending.Cancel()
	if !b.hovered {
		return
	}
	b.hovered = false
	b.registry.Leave(b)
	if b.attached {
		b.animateTo(Rest, LeaveDuration, ease.OutQuint)
	}
}

// Detach cancels every pending frame and releases magnetic mode. The element
// snaps back to rest and ignores further input.
func (b *Behavior) Detach() {
	b.pending.Cancel()
	b.anim.Stop()
	if b.hovered {
		b.registry.Leave(b)
	}
	b.hovered = false
	b.attached = false
	b.offset = Rest
}

// Animating reports whether a transition is in progress.
func (b *Behavior) Animating() bool {
	return b.anim.Running()
}

func (b *Behavior) animateTo(target Offset, duration float32, fn ease.TweenFunc) {
	from := b.offset
	b.tx = gween.New(float32(from.X), float32(target.X), duration, fn)
	b.ty = gween.New(float32(from.Y), float32(target.Y), duration, fn)
	b.ts = gween.New(float32(from.Scale), float32(target.Scale), duration, fn)
	b.anim.Start()
}

func (b *Behavior) step(info frame.Info) {
	dt := float32(info.Delta)
	x, doneX := b.tx.Update(dt)
	y, doneY := b.ty.Update(dt)
	s, doneS := b.ts.Update(dt)
	b.offset = Offset{X: float64(x), Y: float64(y), Scale: float64(s)}
	if doneX && doneY && doneS {
		b.anim.Stop()
	}
}
