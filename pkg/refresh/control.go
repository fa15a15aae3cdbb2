package refresh

import (
	"github.com/sirupsen/logrus"

	"github.com/go-drift/refresh/pkg/errors"
	"github.com/go-drift/refresh/pkg/platform"
)

// controlHooks is implemented by Header and Footer to customize the shared
// attach, inset and trigger bookkeeping.
type controlHooks interface {
	observer() Observer
	position(m Metrics) ControlPosition
	// insetWanted reports whether the control should currently reserve inset.
	insetWanted() bool
	insetAmount() float64
	// collapse turns a queued trigger into a real one once the control is live.
	collapse()
}

// control holds the attach, inset and dispatch state shared by both engines.
type control struct {
	// Dispatch posts DidBeginRefreshing and the action. Nil uses
	// platform.Dispatch, then the surface's Deferrer, then runs them when the
	// current call returns.
	Dispatch func(callback func())
	// Logger receives state transitions at debug level. Nil uses the logrus
	// standard logger.
	Logger logrus.FieldLogger

	edge  Edge
	name  string
	state State
	cycle uint64

	surface      Surface
	unsubscribe  func()
	hidden       bool
	insetApplied float64

	depth    int
	draining bool
	pending  []func()
}

// State returns the current state.
func (c *control) State() State {
	return c.state
}

// Attached reports whether the control is attached to a surface.
func (c *control) Attached() bool {
	return c.surface != nil
}

// Hidden reports whether the control is hidden.
func (c *control) Hidden() bool {
	return c.hidden
}

// InsetApplied returns the inset the control currently contributes to its surface.
func (c *control) InsetApplied() float64 {
	return c.insetApplied
}

func (c *control) live() bool {
	return c.surface != nil && !c.hidden
}

func (c *control) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

func (c *control) setState(s State) bool {
	if s == c.state {
		return false
	}
	c.logger().WithFields(logrus.Fields{
		"control": c.name,
		"from":    c.state.String(),
		"to":      s.String(),
	}).Debug("refresh state changed")
	c.state = s
	return true
}

func (c *control) attach(s Surface, hooks controlHooks) {
	if s == nil {
		return
	}
	if c.surface == s {
		return
	}
	if c.surface != nil {
		c.detach()
	}
	c.surface = s
	c.unsubscribe = s.Subscribe(hooks.observer())
	s.SetControlOrigin(c.edge, hooks.position(s.Metrics()))
	c.syncInset(hooks)
	hooks.collapse()
}

// detach is safe without a prior attach and may run during teardown.
func (c *control) detach() {
	if c.surface == nil {
		return
	}
	c.removeInset()
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.unsubscribe = nil
	c.surface = nil
}

func (c *control) setHidden(hidden bool, hooks controlHooks) {
	if hidden == c.hidden {
		return
	}
	c.hidden = hidden
	c.syncInset(hooks)
	if !hidden {
		hooks.collapse()
	}
}

// syncInset adds or removes the inset contribution so that it is present
// exactly when the control is live and wants it.
func (c *control) syncInset(hooks controlHooks) {
	if c.live() && hooks.insetWanted() {
		if c.insetApplied != 0 {
			return
		}
		amount := hooks.insetAmount()
		if amount <= 0 {
			return
		}
		c.surface.AdjustContentInset(c.edge, amount)
		c.insetApplied = amount
		return
	}
	c.removeInset()
}

func (c *control) removeInset() {
	if c.surface == nil || c.insetApplied == 0 {
		return
	}
	c.surface.AdjustContentInset(c.edge, -c.insetApplied)
	c.insetApplied = 0
}

// enter and leave bracket every entry point. Callbacks queued with post while
// no dispatcher is available and the surface is not delivering a
// notification run when the outermost entry point returns.
func (c *control) enter() {
	c.depth++
}

func (c *control) leave() {
	c.depth--
	if c.depth > 0 || c.draining {
		return
	}
	c.draining = true
	defer func() { c.draining = false }()
	for len(c.pending) > 0 {
		fn := c.pending[0]
		c.pending = c.pending[1:]
		fn()
	}
}

func (c *control) post(fn func()) {
	wrapped := func() {
		c.enter()
		defer c.leave()
		fn()
	}
	if c.Dispatch != nil {
		c.Dispatch(wrapped)
		return
	}
	if platform.Dispatch(wrapped) {
		return
	}
	if d, ok := c.surface.(Deferrer); ok && d.Defer(wrapped) {
		return
	}
	c.pending = append(c.pending, fn)
	if c.depth == 0 && !c.draining {
		c.enter()
		c.leave()
	}
}

// beginCycle starts a new triggering cycle and posts its begin callbacks.
// The posted work is dropped if the cycle is over by the time it runs.
func (c *control) beginCycle(begin func()) {
	c.cycle++
	cycle := c.cycle
	c.post(func() {
		if c.state != StateTriggering || c.cycle != cycle {
			return
		}
		begin()
	})
}

// guard runs a delegate callback, reporting a panic under the callback's name.
func (c *control) guard(op string, fn func()) bool {
	return errors.Guard("refresh."+c.name+"."+op, errors.KindDelegate, fn)
}

func (c *control) runAction(action func()) {
	errors.Guard("refresh."+c.name+".Action", errors.KindAction, action)
}
