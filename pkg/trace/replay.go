package trace

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	drifterrors "github.com/go-drift/refresh/pkg/errors"
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/refresh"
	"github.com/go-drift/refresh/pkg/scroll"
)

// Player executes a trace against a scroll.View with a header and a footer.
type Player struct {
	Trace    *Trace
	View     *scroll.View
	Header   *refresh.Header
	Footer   *refresh.Footer
	Recorder *Recorder
	Queue    *Queue

	headerDelegate *HeaderDelegate
	footerDelegate *FooterDelegate
	headerActions  int
	footerActions  int
	logger         logrus.FieldLogger
}

// Result is the outcome of a replay.
type Result struct {
	Events        []Event             `yaml:"events"`
	Header        refresh.State       `yaml:"-"`
	Footer        refresh.State       `yaml:"-"`
	HeaderActions int                 `yaml:"header_actions"`
	FooterActions int                 `yaml:"footer_actions"`
	Inset         graphics.EdgeInsets `yaml:"-"`
	Offset        float64             `yaml:"offset"`
}

// NewPlayer builds the surface and both engines described by tr. The
// engines start detached; traces attach them with an attach step.
func NewPlayer(tr *Trace, logger logrus.FieldLogger) *Player {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	var physics scroll.Physics = scroll.ClampingPhysics{}
	if tr.Surface.Bouncing {
		physics = scroll.BouncingPhysics{}
	}
	view := scroll.NewView(tr.Surface.Viewport(), physics)
	view.SetContentSize(graphics.Size{Width: tr.Surface.ViewportWidth, Height: tr.Surface.ContentHeight})
	view.AdjustContentInset(refresh.EdgeTop, tr.Surface.InsetTop)
	view.AdjustContentInset(refresh.EdgeBottom, tr.Surface.InsetBottom)
	view.SetOffset(view.MinScrollOffset())

	p := &Player{
		Trace:    tr,
		View:     view,
		Recorder: &Recorder{},
		Queue:    &Queue{},
		logger:   logger,
	}
	p.headerDelegate = p.Recorder.HeaderDelegate(tr.Header)
	p.footerDelegate = p.Recorder.FooterDelegate(tr.Footer)

	p.Header = refresh.NewHeader(p.headerDelegate, func() {
		p.headerActions++
		p.Recorder.Record(TargetHeader, EventAction, "")
	})
	p.Header.Dispatch = p.Queue.Dispatch
	p.Header.Logger = logger

	p.Footer = refresh.NewFooter(p.footerDelegate, func() {
		p.footerActions++
		p.Recorder.Record(TargetFooter, EventAction, "")
	})
	p.Footer.Dispatch = p.Queue.Dispatch
	p.Footer.Logger = logger
	p.Footer.LoadWhileScrolling = tr.Footer.LoadWhileScrolling
	return p
}

// Run executes every step, detaches both engines, and returns the result.
func (p *Player) Run() (*Result, error) {
	for i, step := range p.Trace.Steps {
		repeat := step.Repeat
		if repeat == 0 {
			repeat = 1
		}
		for range repeat {
			if err := p.Step(step); err != nil {
				return nil, traceError("trace.Run", fmt.Errorf("step %d (%s): %w", i+1, step, err))
			}
		}
	}
	result := p.Result()
	p.Header.Detach()
	p.Footer.Detach()
	return result, nil
}

// Step executes one step and, unless the trace dispatches manually, runs the
// callbacks it posted.
func (p *Player) Step(step Step) error {
	p.logger.WithField("step", step.String()).Debug("trace step")
	switch step.Op {
	case OpAttach:
		p.each(step, TargetBoth, func() { p.Header.Attach(p.View) }, func() { p.Footer.Attach(p.View) })
	case OpDetach:
		p.each(step, TargetBoth, p.Header.Detach, p.Footer.Detach)
	case OpHide:
		p.each(step, TargetBoth, func() { p.Header.SetHidden(true) }, func() { p.Footer.SetHidden(true) })
	case OpShow:
		p.each(step, TargetBoth, func() { p.Header.SetHidden(false) }, func() { p.Footer.SetHidden(false) })
	case OpPanBegin:
		p.View.BeginPan()
	case OpDrag:
		p.View.Drag(step.DY)
	case OpPanEnd:
		p.View.EndPan()
	case OpPanCancel:
		p.View.CancelPan()
	case OpOffset:
		p.View.SetOffset(step.Y)
	case OpContentHeight:
		p.View.SetContentHeight(step.Value)
	case OpSettle:
		p.View.Settle()
	case OpBeginRefreshing:
		p.each(step, TargetHeader, p.Header.BeginRefreshing, p.Footer.BeginRefreshing)
	case OpEndRefreshing:
		result, err := parseHideResult(step.Result)
		if err != nil {
			return err
		}
		p.each(step, TargetHeader, func() { p.Header.EndRefreshing(result) }, p.Footer.EndRefreshing)
	case OpCompleteHide:
		p.Header.CompleteHideAnimation()
	case OpTap:
		if p.footerDelegate.Mode.AllowsTap() {
			p.Footer.Tap()
		}
	case OpNoMoreData:
		p.Footer.UpdateToNoMoreData()
	case OpReset:
		p.Footer.ResetToDefault()
	case OpFlush:
		p.Queue.Flush()
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	if !p.Trace.ManualDispatch {
		p.Queue.Flush()
	}
	return nil
}

// Result snapshots the current outcome.
func (p *Player) Result() *Result {
	return &Result{
		Events:        p.Recorder.Events(),
		Header:        p.Header.State(),
		Footer:        p.Footer.State(),
		HeaderActions: p.headerActions,
		FooterActions: p.footerActions,
		Inset:         p.View.ContentInset(),
		Offset:        p.View.Offset(),
	}
}

func (p *Player) each(step Step, fallback string, header, footer func()) {
	target := step.Target
	if target == "" {
		target = fallback
	}
	if target == TargetHeader || target == TargetBoth {
		header()
	}
	if target == TargetFooter || target == TargetBoth {
		footer()
	}
}

// Replay runs tr with a fresh Player.
func Replay(tr *Trace, logger logrus.FieldLogger) (*Result, error) {
	return NewPlayer(tr, logger).Run()
}

// Verify compares the result with exp and returns a KindTrace error listing
// every mismatch. A nil expectation always passes.
func (r *Result) Verify(exp *Expectation) error {
	if exp == nil {
		return nil
	}
	var mismatches []string
	if exp.Header != "" && exp.Header != r.Header.String() {
		mismatches = append(mismatches, fmt.Sprintf("header state = %s, want %s", r.Header, exp.Header))
	}
	if exp.Footer != "" && exp.Footer != r.Footer.String() {
		mismatches = append(mismatches, fmt.Sprintf("footer state = %s, want %s", r.Footer, exp.Footer))
	}
	if exp.HeaderActions != nil && *exp.HeaderActions != r.HeaderActions {
		mismatches = append(mismatches, fmt.Sprintf("header actions = %d, want %d", r.HeaderActions, *exp.HeaderActions))
	}
	if exp.FooterActions != nil && *exp.FooterActions != r.FooterActions {
		mismatches = append(mismatches, fmt.Sprintf("footer actions = %d, want %d", r.FooterActions, *exp.FooterActions))
	}
	if exp.InsetTop != nil && !graphics.FloatEqual(*exp.InsetTop, r.Inset.Top) {
		mismatches = append(mismatches, fmt.Sprintf("inset top = %g, want %g", r.Inset.Top, *exp.InsetTop))
	}
	if exp.InsetBottom != nil && !graphics.FloatEqual(*exp.InsetBottom, r.Inset.Bottom) {
		mismatches = append(mismatches, fmt.Sprintf("inset bottom = %g, want %g", r.Inset.Bottom, *exp.InsetBottom))
	}
	if exp.Events != nil {
		got := make([]string, len(r.Events))
		for i, event := range r.Events {
			got[i] = event.String()
		}
		if strings.Join(got, "\n") != strings.Join(exp.Events, "\n") {
			mismatches = append(mismatches, fmt.Sprintf("events = [%s], want [%s]",
				strings.Join(got, ", "), strings.Join(exp.Events, ", ")))
		}
	}
	if len(mismatches) == 0 {
		return nil
	}
	return &drifterrors.RefreshError{
		Op:   "trace.Verify",
		Kind: drifterrors.KindTrace,
		Err:  fmt.Errorf("%d mismatch(es): %s", len(mismatches), strings.Join(mismatches, "; ")),
	}
}

func parseHideResult(s string) (refresh.HideResult, error) {
	switch s {
	case "", "none":
		return refresh.ResultNone, nil
	case "success":
		return refresh.ResultSuccess, nil
	case "failure":
		return refresh.ResultFailure, nil
	default:
		return refresh.ResultNone, fmt.Errorf("unknown result %q", s)
	}
}
