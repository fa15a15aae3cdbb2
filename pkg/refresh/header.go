package refresh

import (
	"math"

	"github.com/go-drift/refresh/pkg/graphics"
)

// Header is the trigger engine of a pull to refresh control anchored above
// the content of a surface.
//
// While idle it converts overscroll into a pull percent and reports it to the
// delegate. Releasing the pan with the percent at 1 starts a refresh. While
// refreshing the header reserves HeightForRefreshingState of top inset so it
// stays visible, and ignores metrics until the host ends the refresh and
// reports the hide animation complete.
type Header struct {
	control

	// Delegate receives lifecycle callbacks. Nil delegates are skipped.
	Delegate HeaderDelegate
	// Action starts the refresh work. It must not block.
	Action func()

	percent   float64
	lastPhase PanPhase
	// released is set when a pan ended while overscrolled but short of the
	// fire height; inertial motion may still carry the pull over it.
	released   bool
	hiding     bool
	hideResult HideResult
	animating  bool
}

// NewHeader creates a detached header engine.
func NewHeader(delegate HeaderDelegate, action func()) *Header {
	return &Header{
		control:  control{edge: EdgeTop, name: "Header"},
		Delegate: delegate,
		Action:   action,
	}
}

// Percent returns the last reported pull percent. It is pinned at 1 while
// refreshing.
func (h *Header) Percent() float64 {
	return h.percent
}

// Animating reports whether the header shows its refreshing animation. It
// stays true until CompleteHideAnimation.
func (h *Header) Animating() bool {
	return h.animating
}

// Hiding reports whether the header waits for CompleteHideAnimation.
func (h *Header) Hiding() bool {
	return h.hiding
}

// Attach subscribes to the surface and places the header above its content.
// A refresh requested while detached starts now.
func (h *Header) Attach(s Surface) {
	h.enter()
	defer h.leave()
	h.attach(s, h)
}

// Detach unsubscribes and returns any inset the header holds. It is a no-op
// when the header is not attached.
func (h *Header) Detach() {
	h.enter()
	defer h.leave()
	h.detach()
	h.lastPhase = PanNone
	h.released = false
}

// SetHidden hides or shows the header. Hidden headers ignore metrics and
// hold no inset.
func (h *Header) SetHidden(hidden bool) {
	h.enter()
	defer h.leave()
	h.setHidden(hidden, h)
}

// OnMetricsChanged evaluates a new snapshot against the previous one.
func (h *Header) OnMetricsChanged(current, previous Metrics) {
	h.enter()
	defer h.leave()
	h.lastPhase = current.PanPhase
	if h.hidden || h.state != StateIdle || h.hiding {
		return
	}

	overscroll := -(current.Offset.Y + current.ContentInset.Top - h.insetApplied)
	if overscroll < 0 || math.IsNaN(overscroll) {
		overscroll = 0
	}
	percent := pullPercent(overscroll, h.fireHeight())
	h.updatePercent(percent)

	switch {
	case current.PanPhase == PanEnded && previous.PanPhase != PanEnded:
		if percent >= 1 {
			h.trigger()
			return
		}
		h.released = overscroll > 0
	case current.PanPhase.Dragging():
		h.released = false
	case h.released && percent >= 1:
		h.trigger()
		return
	}
	if overscroll == 0 {
		h.released = false
	}
}

// BeginRefreshing starts a refresh programmatically. It is a no-op while a
// refresh is running, queued, or still hiding. If the header is not live the
// request is queued until it is attached and shown.
func (h *Header) BeginRefreshing() {
	h.enter()
	defer h.leave()
	if h.state != StateIdle || h.hiding {
		return
	}
	h.trigger()
}

// EndRefreshing finishes the running refresh and starts hiding the header.
// Calls outside a refresh are ignored; a queued request is withdrawn.
func (h *Header) EndRefreshing(result HideResult) {
	h.enter()
	defer h.leave()
	switch h.state {
	case StateWillTrigger:
		h.setState(StateIdle)
		return
	case StateTriggering:
	default:
		return
	}
	h.setState(StateIdle)
	h.hiding = true
	h.hideResult = result
	h.syncInset(h)
	if d := h.Delegate; d != nil {
		h.guard("DidEndRefreshing", d.DidEndRefreshing)
		h.guard("DidBeginHideAnimation", func() { d.DidBeginHideAnimation(result) })
	}
}

// CompleteHideAnimation is called by the host once the hide animation
// started by EndRefreshing has finished. Pulls are evaluated again afterwards.
func (h *Header) CompleteHideAnimation() {
	h.enter()
	defer h.leave()
	if !h.hiding {
		return
	}
	h.hiding = false
	h.animating = false
	h.percent = 0
	h.released = false
	if d := h.Delegate; d != nil {
		result := h.hideResult
		h.guard("DidCompleteHideAnimation", func() { d.DidCompleteHideAnimation(result) })
	}
}

func (h *Header) trigger() {
	if h.state == StateTriggering {
		return
	}
	if !h.live() {
		h.setState(StateWillTrigger)
		return
	}
	h.setState(StateTriggering)
	h.released = false
	h.percent = 1
	h.animating = true
	// The holding inset is reserved with the begin callbacks so the surface
	// does not change while it is still notifying other observers.
	h.beginCycle(func() {
		h.syncInset(h)
		if d := h.Delegate; d != nil {
			h.guard("DidBeginRefreshing", d.DidBeginRefreshing)
		}
		h.runAction(h.Action)
	})
}

func (h *Header) updatePercent(percent float64) {
	if percent == h.percent {
		return
	}
	h.percent = percent
	if d := h.Delegate; d != nil {
		h.guard("PercentUpdate", func() { d.PercentUpdate(percent) })
	}
}

func (h *Header) height() float64 {
	if h.Delegate == nil {
		return DefaultHeaderHeight
	}
	return h.Delegate.HeightForControl()
}

func (h *Header) fireHeight() float64 {
	if h.Delegate == nil {
		return DefaultHeaderHeight
	}
	return h.Delegate.HeightForFireRefreshing()
}

func (h *Header) observer() Observer {
	return Observer{
		OnOffsetChanged: func(old, _ graphics.Offset) {
			if h.surface == nil {
				return
			}
			current := h.surface.Metrics()
			previous := current
			previous.Offset = old
			previous.PanPhase = h.lastPhase
			h.OnMetricsChanged(current, previous)
		},
		OnPanPhaseChanged: func(phase PanPhase) {
			if h.surface == nil {
				return
			}
			current := h.surface.Metrics()
			current.PanPhase = phase
			previous := current
			previous.PanPhase = h.lastPhase
			h.OnMetricsChanged(current, previous)
		},
	}
}

func (h *Header) position(Metrics) ControlPosition {
	height := h.height()
	return ControlPosition{Y: -height, Height: height}
}

func (h *Header) insetWanted() bool {
	return h.state == StateTriggering
}

func (h *Header) insetAmount() float64 {
	if h.Delegate == nil {
		return DefaultHeaderHeight
	}
	return h.Delegate.HeightForRefreshingState()
}

func (h *Header) collapse() {
	if h.state == StateWillTrigger && h.live() {
		h.trigger()
	}
}

// pullPercent converts overscroll into a percent of the fire height,
// clamped to [0, 1].
func pullPercent(overscroll, fireHeight float64) float64 {
	if fireHeight <= 0 {
		if overscroll > 0 {
			return 1
		}
		return 0
	}
	return graphics.Clamp(overscroll/fireHeight, 0, 1)
}
