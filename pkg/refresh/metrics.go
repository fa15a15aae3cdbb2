package refresh

import "github.com/go-drift/refresh/pkg/graphics"

// PanPhase is the phase of the pan gesture recognizer driving a surface.
type PanPhase int

const (
	// PanNone means no pan gesture has been recognized.
	PanNone PanPhase = iota
	// PanBegan means a pan gesture was just recognized.
	PanBegan
	// PanChanged means the finger moved during a pan.
	PanChanged
	// PanEnded means the finger lifted; the surface may still be decelerating.
	PanEnded
	// PanCancelled means the system cancelled the pan.
	PanCancelled
)

func (p PanPhase) String() string {
	switch p {
	case PanBegan:
		return "began"
	case PanChanged:
		return "changed"
	case PanEnded:
		return "ended"
	case PanCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Dragging reports whether a finger is currently down.
func (p PanPhase) Dragging() bool {
	return p == PanBegan || p == PanChanged
}

// Metrics is an immutable snapshot of a scroll surface.
type Metrics struct {
	Offset       graphics.Offset
	ContentSize  graphics.Size
	ContentInset graphics.EdgeInsets
	ViewportSize graphics.Size
	PanPhase     PanPhase
}

// Edge selects the side of a surface a control is anchored to.
type Edge int

const (
	// EdgeTop anchors a control above the content.
	EdgeTop Edge = iota
	// EdgeBottom anchors a control below the content.
	EdgeBottom
)

func (e Edge) String() string {
	if e == EdgeBottom {
		return "bottom"
	}
	return "top"
}

// ControlPosition places a control in content coordinates.
type ControlPosition struct {
	// Y is the origin of the control relative to the top of the content.
	Y float64
	// Height is the extent of the control.
	Height float64
}

// State is the exclusive state of a trigger engine.
type State int

const (
	// StateIdle waits for a pull, a release or a programmatic trigger.
	StateIdle State = iota
	// StateWillTrigger holds a trigger requested while the control was not live.
	StateWillTrigger
	// StateTriggering means the action was dispatched and has not been ended.
	StateTriggering
	// StateNoMoreData disables a footer until it is reset.
	StateNoMoreData
)

func (s State) String() string {
	switch s {
	case StateWillTrigger:
		return "will_trigger"
	case StateTriggering:
		return "triggering"
	case StateNoMoreData:
		return "no_more_data"
	default:
		return "idle"
	}
}

// HideResult describes how a header refresh finished.
type HideResult int

const (
	// ResultNone hides the header without a result message.
	ResultNone HideResult = iota
	// ResultSuccess reports a successful refresh.
	ResultSuccess
	// ResultFailure reports a failed refresh.
	ResultFailure
)

func (r HideResult) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	default:
		return "none"
	}
}

// Observer receives change notifications from a Surface.
// Nil callbacks are skipped.
type Observer struct {
	OnOffsetChanged      func(old, new graphics.Offset)
	OnContentSizeChanged func(old, new graphics.Size)
	OnPanPhaseChanged    func(phase PanPhase)
}

// Surface is the scroll surface a control attaches to. Engines keep a
// non-owning reference to it between Attach and Detach.
type Surface interface {
	// Metrics returns the current snapshot.
	Metrics() Metrics
	// Subscribe registers an observer and returns a function that removes it.
	Subscribe(observer Observer) (unsubscribe func())
	// AdjustContentInset adds delta to the inset of the given edge.
	AdjustContentInset(edge Edge, delta float64)
	// SetControlOrigin places the control anchored at edge.
	SetControlOrigin(edge Edge, position ControlPosition)
}

// Deferrer is implemented by surfaces that can hold work until the
// notification they are delivering has reached every observer. Engines use
// it so that one control's transition never changes what the observers
// after it see for the same event.
type Deferrer interface {
	// Defer queues fn to run once the notification in progress completes.
	// It reports false, leaving fn unscheduled, when nothing is being
	// delivered.
	Defer(fn func()) bool
}
