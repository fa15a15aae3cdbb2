// Package scroll provides View, an in-memory scroll surface that refresh
// controls can attach to.
//
// View keeps the metrics a platform scroll view would expose (offset,
// content size, content inset, viewport size and pan phase), applies scroll
// physics to user drags, and notifies subscribed observers of every change.
// Hosts that already own a platform scroll view implement refresh.Surface
// directly; View backs the terminal demo, trace replays and tests.
package scroll

import (
	"math"

	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/refresh"
)

// View is a vertical scroll surface.
type View struct {
	offset      graphics.Offset
	contentSize graphics.Size
	inset       graphics.EdgeInsets
	viewport    graphics.Size
	phase       refresh.PanPhase
	physics     Physics

	observers []observerEntry
	nextID    int
	controls  map[refresh.Edge]refresh.ControlPosition

	// notifying counts the notifications being delivered; deferred work
	// waits until it drops back to zero.
	notifying int
	deferred  []func()
}

var (
	_ refresh.Surface  = (*View)(nil)
	_ refresh.Deferrer = (*View)(nil)
)

type observerEntry struct {
	id       int
	observer refresh.Observer
}

// NewView creates a view with the given viewport. A nil physics uses
// BouncingPhysics so that pulls can overscroll.
func NewView(viewport graphics.Size, physics Physics) *View {
	if physics == nil {
		physics = BouncingPhysics{}
	}
	return &View{
		viewport: viewport,
		physics:  physics,
		controls: make(map[refresh.Edge]refresh.ControlPosition),
	}
}

// Metrics returns the current snapshot.
func (v *View) Metrics() refresh.Metrics {
	return refresh.Metrics{
		Offset:       v.offset,
		ContentSize:  v.contentSize,
		ContentInset: v.inset,
		ViewportSize: v.viewport,
		PanPhase:     v.phase,
	}
}

// Subscribe registers an observer. The returned function removes it and is
// safe to call more than once.
func (v *View) Subscribe(observer refresh.Observer) func() {
	id := v.nextID
	v.nextID++
	v.observers = append(v.observers, observerEntry{id: id, observer: observer})
	return func() {
		for i, entry := range v.observers {
			if entry.id == id {
				v.observers = append(v.observers[:i:i], v.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount returns the number of subscribed observers.
func (v *View) ObserverCount() int {
	return len(v.observers)
}

// AdjustContentInset adds delta to the inset of edge.
func (v *View) AdjustContentInset(edge refresh.Edge, delta float64) {
	if edge == refresh.EdgeBottom {
		v.inset.Bottom += delta
		return
	}
	v.inset.Top += delta
}

// SetControlOrigin records where the control anchored at edge sits.
func (v *View) SetControlOrigin(edge refresh.Edge, position refresh.ControlPosition) {
	v.controls[edge] = position
}

// ControlPosition returns the last position set for edge.
func (v *View) ControlPosition(edge refresh.Edge) (refresh.ControlPosition, bool) {
	position, ok := v.controls[edge]
	return position, ok
}

// ContentInset returns the current content inset.
func (v *View) ContentInset() graphics.EdgeInsets {
	return v.inset
}

// Offset returns the current vertical offset.
func (v *View) Offset() float64 {
	return v.offset.Y
}

// PanPhase returns the current pan phase.
func (v *View) PanPhase() refresh.PanPhase {
	return v.phase
}

// MinScrollOffset is the resting offset at the top edge.
func (v *View) MinScrollOffset() float64 {
	// 0 - x rather than -x: a zero inset must rest at +0, not -0.
	return 0 - v.inset.Top
}

// MaxScrollOffset is the resting offset at the bottom edge.
func (v *View) MaxScrollOffset() float64 {
	max := v.contentSize.Height + v.inset.Bottom - v.viewport.Height
	return math.Max(max, v.MinScrollOffset())
}

// SetViewportSize updates the viewport. Viewport changes are not observed.
func (v *View) SetViewportSize(size graphics.Size) {
	v.viewport = size
}

// SetContentSize updates the content size and notifies observers.
func (v *View) SetContentSize(size graphics.Size) {
	if size == v.contentSize {
		return
	}
	old := v.contentSize
	v.contentSize = size
	v.notify(func(observer refresh.Observer) {
		if observer.OnContentSizeChanged != nil {
			observer.OnContentSizeChanged(old, size)
		}
	})
}

// SetContentHeight is SetContentSize keeping the current width.
func (v *View) SetContentHeight(height float64) {
	v.SetContentSize(graphics.Size{Width: v.contentSize.Width, Height: height})
}

// SetOffset moves the view without applying physics and notifies observers.
func (v *View) SetOffset(y float64) {
	if math.IsNaN(y) || y == v.offset.Y {
		return
	}
	old := v.offset
	current := graphics.Offset{X: old.X, Y: y}
	v.offset = current
	v.notify(func(observer refresh.Observer) {
		if observer.OnOffsetChanged != nil {
			observer.OnOffsetChanged(old, current)
		}
	})
}

// BeginPan starts a pan gesture.
func (v *View) BeginPan() {
	v.setPhase(refresh.PanBegan)
}

// Drag moves the finger by delta; positive values pull the content down.
// A pan is started first if none is in progress.
func (v *View) Drag(delta float64) {
	if !v.phase.Dragging() {
		v.BeginPan()
	}
	v.setPhase(refresh.PanChanged)
	scrollDelta := v.physics.ApplyPhysicsToUserOffset(v, -delta)
	v.SetOffset(v.clampOffset(v.offset.Y + scrollDelta))
}

// EndPan lifts the finger.
func (v *View) EndPan() {
	v.setPhase(refresh.PanEnded)
}

// CancelPan cancels the pan gesture.
func (v *View) CancelPan() {
	v.setPhase(refresh.PanCancelled)
}

// Settle moves an overscrolled view back to the nearest resting offset, as
// the bounce animation of a platform view would.
func (v *View) Settle() {
	v.SetOffset(graphics.Clamp(v.offset.Y, v.MinScrollOffset(), v.MaxScrollOffset()))
}

// Overscrolled reports whether the offset lies outside the resting range.
func (v *View) Overscrolled() bool {
	return v.offset.Y < v.MinScrollOffset() || v.offset.Y > v.MaxScrollOffset()
}

func (v *View) setPhase(phase refresh.PanPhase) {
	if phase == v.phase {
		return
	}
	v.phase = phase
	v.notify(func(observer refresh.Observer) {
		if observer.OnPanPhaseChanged != nil {
			observer.OnPanPhaseChanged(phase)
		}
	})
}

// Defer holds fn until the notification being delivered has reached every
// observer, including notifications nested inside it. It returns false when
// no notification is in progress.
func (v *View) Defer(fn func()) bool {
	if fn == nil || v.notifying == 0 {
		return false
	}
	v.deferred = append(v.deferred, fn)
	return true
}

// notify delivers one change to a snapshot of the observers, then runs the
// work deferred during the outermost delivery in order.
func (v *View) notify(deliver func(refresh.Observer)) {
	v.notifying++
	for _, observer := range v.snapshot() {
		deliver(observer)
	}
	v.notifying--
	if v.notifying > 0 {
		return
	}
	for len(v.deferred) > 0 {
		fn := v.deferred[0]
		v.deferred = v.deferred[1:]
		fn()
	}
}

func (v *View) clampOffset(value float64) float64 {
	if !isBouncing(v.physics) {
		return graphics.Clamp(value, v.MinScrollOffset(), v.MaxScrollOffset())
	}
	limit := graphics.Clamp(v.viewportExtent()*0.35, 80, 220)
	return graphics.Clamp(value, v.MinScrollOffset()-limit, v.MaxScrollOffset()+limit)
}

func (v *View) viewportExtent() float64 {
	if v.viewport.Height > 0 {
		return v.viewport.Height
	}
	return 600
}

// snapshot copies the observers so they may unsubscribe while notified.
func (v *View) snapshot() []refresh.Observer {
	observers := make([]refresh.Observer, len(v.observers))
	for i, entry := range v.observers {
		observers[i] = entry.observer
	}
	return observers
}
