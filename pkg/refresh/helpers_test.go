package refresh_test

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/go-drift/refresh/pkg/config"
	drifterrors "github.com/go-drift/refresh/pkg/errors"
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/refresh"
	"github.com/go-drift/refresh/pkg/scroll"
	"github.com/go-drift/refresh/pkg/trace"
)

// harness wires a header and a footer to a bouncing view with recording
// delegates. Neither engine is attached.
type harness struct {
	view     *scroll.View
	recorder *trace.Recorder
	header   *refresh.Header
	footer   *refresh.Footer

	headerActions int
	footerActions int
}

func newHarness(t *testing.T, contentHeight float64, mode string) *harness {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	h := &harness{
		view:     scroll.NewView(graphics.Size{Width: 320, Height: 500}, nil),
		recorder: &trace.Recorder{},
	}
	h.view.SetContentHeight(contentHeight)

	h.header = refresh.NewHeader(h.recorder.HeaderDelegate(config.HeaderConfig{
		Height:           50,
		FireHeight:       40,
		RefreshingHeight: 40,
	}), func() { h.headerActions++ })
	h.header.Logger = logger

	h.footer = refresh.NewFooter(h.recorder.FooterDelegate(config.FooterConfig{
		Height: 44,
		Mode:   mode,
	}), func() { h.footerActions++ })
	h.footer.Logger = logger
	return h
}

// release runs a pan that ends at offset y.
func (h *harness) release(y float64) {
	h.view.BeginPan()
	h.view.SetOffset(y)
	h.view.EndPan()
}

func (h *harness) count(control, name string) int {
	return h.recorder.Count(control, name)
}

// panicking wraps a recording header delegate and panics when a refresh begins.
type panicking struct {
	*trace.HeaderDelegate
}

func (panicking) DidBeginRefreshing() {
	panic("delegate exploded")
}

type panicRecorder struct {
	ops   []string
	kinds []drifterrors.ErrorKind
}

func (r *panicRecorder) HandleError(*drifterrors.RefreshError) {}

func (r *panicRecorder) HandlePanic(err *drifterrors.PanicError) {
	r.ops = append(r.ops, err.Op)
	r.kinds = append(r.kinds, err.Kind)
}

func recordPanics(t *testing.T) *panicRecorder {
	t.Helper()
	r := &panicRecorder{}
	drifterrors.SetHandler(r)
	t.Cleanup(func() { drifterrors.SetHandler(nil) })
	return r
}
