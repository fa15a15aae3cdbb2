package refresh

import "github.com/go-drift/refresh/pkg/graphics"

// Footer is the trigger engine of a load more control anchored below the
// content of a surface.
//
// The footer loads when a pan gesture ends with the bottom of the content
// revealed and the delegate allows scroll-driven loading, or when Tap is
// called. UpdateToNoMoreData disables it until ResetToDefault.
//
// While attached and visible the footer reserves its height of bottom inset,
// and it follows the content size so it always sits right below the content.
type Footer struct {
	control

	// Delegate receives lifecycle callbacks. Nil delegates are skipped.
	Delegate FooterDelegate
	// Action starts loading. It must not block.
	Action func()
	// LoadWhileScrolling also loads when the offset moves down past the
	// bottom edge of tall content, without waiting for the pan to end.
	LoadWhileScrolling bool

	lastPhase PanPhase
}

// NewFooter creates a detached footer engine.
func NewFooter(delegate FooterDelegate, action func()) *Footer {
	return &Footer{
		control:  control{edge: EdgeBottom, name: "Footer"},
		Delegate: delegate,
		Action:   action,
	}
}

// InteractionEnabled reports whether the footer evaluates triggers. It is
// false exactly while in StateNoMoreData.
func (f *Footer) InteractionEnabled() bool {
	return f.state != StateNoMoreData
}

// Attach subscribes to the surface, places the footer below the content and
// reserves its height of bottom inset unless hidden.
func (f *Footer) Attach(s Surface) {
	f.enter()
	defer f.leave()
	f.attach(s, f)
}

// Detach returns the inset and unsubscribes. It is a no-op when the footer
// is not attached.
func (f *Footer) Detach() {
	f.enter()
	defer f.leave()
	f.detach()
	f.lastPhase = PanNone
}

// SetHidden hides or shows the footer, returning or reserving its inset.
func (f *Footer) SetHidden(hidden bool) {
	f.enter()
	defer f.leave()
	f.setHidden(hidden, f)
}

// OnMetricsChanged evaluates a new snapshot against the previous one.
// Content size changes always reposition the footer; offset and pan changes
// are ignored while hidden or while interaction is disabled.
func (f *Footer) OnMetricsChanged(current, previous Metrics) {
	f.enter()
	defer f.leave()
	f.lastPhase = current.PanPhase
	if current.ContentSize != previous.ContentSize {
		f.reposition(current)
	}
	if f.hidden || !f.InteractionEnabled() {
		return
	}
	if current.Offset != previous.Offset {
		f.handleOffset(current, previous)
	}
	if current.PanPhase == PanEnded && previous.PanPhase != PanEnded {
		f.handleRelease(current)
	}
}

// Tap starts loading from a tap on the footer. Taps bypass
// ShouldBeginRefreshingWhenScroll but are ignored while interaction is
// disabled.
func (f *Footer) Tap() {
	f.enter()
	defer f.leave()
	if !f.InteractionEnabled() {
		return
	}
	f.BeginRefreshing()
}

// BeginRefreshing starts loading programmatically. It is a no-op while
// loading, queued, or in StateNoMoreData. If the footer is not live the
// request is queued until it is attached and shown.
func (f *Footer) BeginRefreshing() {
	f.enter()
	defer f.leave()
	if f.state != StateIdle {
		return
	}
	f.trigger()
}

// EndRefreshing finishes the running load. Calls outside a load are ignored;
// a queued request is withdrawn.
func (f *Footer) EndRefreshing() {
	f.enter()
	defer f.leave()
	switch f.state {
	case StateWillTrigger:
		f.setState(StateIdle)
		return
	case StateTriggering:
	default:
		return
	}
	f.setState(StateIdle)
	if d := f.Delegate; d != nil {
		f.guard("DidResetToDefault", d.DidResetToDefault)
		f.guard("DidEndRefreshing", d.DidEndRefreshing)
	}
}

// UpdateToNoMoreData disables the footer from any state. A pending or queued
// load is dropped.
func (f *Footer) UpdateToNoMoreData() {
	f.enter()
	defer f.leave()
	if !f.setState(StateNoMoreData) {
		return
	}
	if d := f.Delegate; d != nil {
		f.guard("DidUpdateToNoMoreData", d.DidUpdateToNoMoreData)
	}
}

// ResetToDefault returns the footer to idle and re-enables interaction.
func (f *Footer) ResetToDefault() {
	f.enter()
	defer f.leave()
	if !f.setState(StateIdle) {
		return
	}
	if d := f.Delegate; d != nil {
		f.guard("DidResetToDefault", d.DidResetToDefault)
	}
}

func (f *Footer) handleRelease(m Metrics) {
	if f.state != StateIdle {
		return
	}
	if !ReachedBottom(m) {
		return
	}
	if !f.shouldBeginWhenScroll() {
		return
	}
	f.trigger()
}

func (f *Footer) handleOffset(current, previous Metrics) {
	if !f.LoadWhileScrolling || f.state != StateIdle {
		return
	}
	if !tallContent(current) || current.Offset.Y <= previous.Offset.Y {
		return
	}
	if current.Offset.Y <= bottomEdge(current) {
		return
	}
	if !f.shouldBeginWhenScroll() {
		return
	}
	f.trigger()
}

func (f *Footer) shouldBeginWhenScroll() bool {
	d := f.Delegate
	if d == nil {
		return true
	}
	should := false
	f.guard("ShouldBeginRefreshingWhenScroll", func() { should = d.ShouldBeginRefreshingWhenScroll() })
	return should
}

func (f *Footer) trigger() {
	if f.state == StateTriggering {
		return
	}
	if !f.live() {
		f.setState(StateWillTrigger)
		return
	}
	f.setState(StateTriggering)
	f.beginCycle(func() {
		if d := f.Delegate; d != nil {
			f.guard("DidBeginRefreshing", d.DidBeginRefreshing)
		}
		f.runAction(f.Action)
	})
}

func (f *Footer) reposition(m Metrics) {
	if f.surface == nil {
		return
	}
	f.surface.SetControlOrigin(f.edge, f.position(m))
}

func (f *Footer) height() float64 {
	if f.Delegate == nil {
		return DefaultFooterHeight
	}
	return f.Delegate.HeightForControl()
}

func (f *Footer) observer() Observer {
	return Observer{
		OnOffsetChanged: func(old, _ graphics.Offset) {
			if f.surface == nil {
				return
			}
			current := f.surface.Metrics()
			previous := current
			previous.Offset = old
			previous.PanPhase = f.lastPhase
			f.OnMetricsChanged(current, previous)
		},
		OnContentSizeChanged: func(old, _ graphics.Size) {
			if f.surface == nil {
				return
			}
			current := f.surface.Metrics()
			previous := current
			previous.ContentSize = old
			previous.PanPhase = f.lastPhase
			f.OnMetricsChanged(current, previous)
		},
		OnPanPhaseChanged: func(phase PanPhase) {
			if f.surface == nil {
				return
			}
			current := f.surface.Metrics()
			current.PanPhase = phase
			previous := current
			previous.PanPhase = f.lastPhase
			f.OnMetricsChanged(current, previous)
		},
	}
}

func (f *Footer) position(m Metrics) ControlPosition {
	return ControlPosition{Y: m.ContentSize.Height, Height: f.height()}
}

func (f *Footer) insetWanted() bool {
	return true
}

func (f *Footer) insetAmount() float64 {
	return f.height()
}

func (f *Footer) collapse() {
	if f.state == StateWillTrigger && f.live() {
		f.trigger()
	}
}

// ReachedBottom reports whether a pan released with these metrics has
// revealed the bottom of the content. Content shorter than the viewport
// counts as revealed once the offset is at or below its resting position.
func ReachedBottom(m Metrics) bool {
	if !tallContent(m) {
		return m.Offset.Y >= -m.ContentInset.Top
	}
	return m.Offset.Y > bottomEdge(m)
}

func tallContent(m Metrics) bool {
	return m.ContentInset.Top+m.ContentSize.Height > m.ViewportSize.Height
}

func bottomEdge(m Metrics) float64 {
	return m.ContentSize.Height + m.ContentInset.Bottom - m.ViewportSize.Height
}
