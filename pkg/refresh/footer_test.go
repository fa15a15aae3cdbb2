package refresh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	drifterrors "github.com/go-drift/refresh/pkg/errors"
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/refresh"
	"github.com/go-drift/refresh/pkg/trace"
)

func TestFooter_ShortContentBoundary(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   refresh.State
	}{
		{"pulled down", -1, refresh.StateIdle},
		{"at rest", 0, refresh.StateTriggering},
		{"pushed up", 30, refresh.StateTriggering},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 100, "scroll_and_tap")
			h.footer.Attach(h.view)

			h.release(tt.offset)

			assert.Equal(t, tt.want, h.footer.State())
		})
	}
}

func TestFooter_TallContentBoundary(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   refresh.State
	}{
		{"above bottom edge", 499, refresh.StateIdle},
		{"at bottom edge", 500, refresh.StateIdle},
		{"past bottom edge", 501, refresh.StateTriggering},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 1000, "scroll_and_tap")
			footer := refresh.NewFooter(nil, nil)
			footer.Logger = h.footer.Logger
			footer.Attach(h.view)

			current := refresh.Metrics{
				Offset:       graphics.Offset{Y: tt.offset},
				ContentSize:  graphics.Size{Width: 320, Height: 1000},
				ViewportSize: graphics.Size{Width: 320, Height: 500},
				PanPhase:     refresh.PanEnded,
			}
			previous := current
			previous.PanPhase = refresh.PanChanged
			footer.OnMetricsChanged(current, previous)

			assert.Equal(t, tt.want, footer.State())
		})
	}
}

func TestReachedBottom(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		content float64
		inset   graphics.EdgeInsets
		want    bool
	}{
		{"short content at rest", 0, 100, graphics.EdgeInsets{}, true},
		{"short content pulled", -1, 100, graphics.EdgeInsets{}, false},
		{"short content under top inset", -20, 100, graphics.EdgeInsets{Top: 20}, true},
		{"tall content at edge", 544, 1000, graphics.EdgeInsets{Bottom: 44}, false},
		{"tall content past edge", 545, 1000, graphics.EdgeInsets{Bottom: 44}, true},
		{"top inset makes content tall", -15, 490, graphics.EdgeInsets{Top: 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := refresh.Metrics{
				Offset:       graphics.Offset{Y: tt.offset},
				ContentSize:  graphics.Size{Height: tt.content},
				ContentInset: tt.inset,
				ViewportSize: graphics.Size{Height: 500},
			}
			assert.Equal(t, tt.want, refresh.ReachedBottom(m))
		})
	}
}

func TestFooter_LoadLifecycle(t *testing.T) {
	h := newHarness(t, 1000, "scroll_and_tap")
	h.footer.Attach(h.view)
	assert.Equal(t, 44.0, h.view.ContentInset().Bottom)

	h.release(545)
	require.Equal(t, refresh.StateTriggering, h.footer.State())
	assert.Equal(t, 1, h.footerActions)

	h.release(600)
	h.footer.Tap()
	h.footer.BeginRefreshing()
	assert.Equal(t, 1, h.footerActions, "no second load while loading")

	h.footer.EndRefreshing()
	h.footer.EndRefreshing()
	assert.Equal(t, refresh.StateIdle, h.footer.State())
	assert.Equal(t, 44.0, h.view.ContentInset().Bottom)
	assert.Equal(t, []string{
		"footer.did_begin_refreshing",
		"footer.did_reset_to_default",
		"footer.did_end_refreshing",
	}, h.recorder.Strings())
}

func TestFooter_ScrollGateBlocksReleaseButNotTap(t *testing.T) {
	h := newHarness(t, 1000, "tap")
	h.footer.Attach(h.view)

	h.release(560)
	assert.Equal(t, refresh.StateIdle, h.footer.State())

	h.footer.Tap()
	assert.Equal(t, refresh.StateTriggering, h.footer.State())
	assert.Equal(t, 1, h.footerActions)
}

func TestFooter_NoMoreDataRejectsTriggersUntilReset(t *testing.T) {
	h := newHarness(t, 1000, "scroll_and_tap")
	h.footer.Attach(h.view)

	h.footer.UpdateToNoMoreData()
	h.footer.UpdateToNoMoreData()
	assert.Equal(t, refresh.StateNoMoreData, h.footer.State())
	assert.False(t, h.footer.InteractionEnabled())
	assert.Equal(t, 1, h.count(trace.TargetFooter, trace.EventDidUpdateToNoMoreData))

	h.release(560)
	h.footer.Tap()
	h.footer.BeginRefreshing()
	h.footer.EndRefreshing()
	assert.Equal(t, refresh.StateNoMoreData, h.footer.State())
	assert.Equal(t, 0, h.footerActions)
	assert.Equal(t, 44.0, h.view.ContentInset().Bottom, "the footer keeps its inset")

	h.footer.ResetToDefault()
	h.footer.ResetToDefault()
	assert.Equal(t, 1, h.count(trace.TargetFooter, trace.EventDidResetToDefault))
	assert.True(t, h.footer.InteractionEnabled())

	h.footer.Tap()
	assert.Equal(t, refresh.StateTriggering, h.footer.State())
	assert.Equal(t, 1, h.footerActions)
}

func TestFooter_NoMoreDataDropsPendingLoad(t *testing.T) {
	h := newHarness(t, 1000, "scroll_and_tap")
	var queue trace.Queue
	h.footer.Dispatch = queue.Dispatch
	h.footer.Attach(h.view)

	h.footer.Tap()
	h.footer.UpdateToNoMoreData()
	queue.Flush()

	assert.Equal(t, 0, h.footerActions)
	assert.Equal(t, 0, h.count(trace.TargetFooter, trace.EventDidBeginRefreshing))
}

func TestFooter_FollowsContentSize(t *testing.T) {
	h := newHarness(t, 1000, "scroll_and_tap")
	h.footer.Attach(h.view)

	position, ok := h.view.ControlPosition(refresh.EdgeBottom)
	require.True(t, ok)
	assert.Equal(t, refresh.ControlPosition{Y: 1000, Height: 44}, position)

	h.footer.UpdateToNoMoreData()
	h.footer.SetHidden(true)
	h.view.SetContentHeight(1500)

	position, _ = h.view.ControlPosition(refresh.EdgeBottom)
	assert.Equal(t, 1500.0, position.Y, "repositioned even while disabled and hidden")
}

func TestFooter_HiddenReturnsInset(t *testing.T) {
	h := newHarness(t, 1000, "scroll_and_tap")
	h.footer.Attach(h.view)

	h.footer.SetHidden(true)
	h.footer.SetHidden(true)
	assert.Equal(t, 0.0, h.view.ContentInset().Bottom)
	assert.True(t, h.footer.Hidden())

	h.release(520)
	assert.Equal(t, refresh.StateIdle, h.footer.State(), "hidden footers ignore releases")

	h.footer.SetHidden(false)
	assert.Equal(t, 44.0, h.view.ContentInset().Bottom)
	assert.Equal(t, 44.0, h.footer.InsetApplied())
}

func TestFooter_AttachDetachNetZeroInset(t *testing.T) {
	h := newHarness(t, 1000, "scroll_and_tap")
	h.view.AdjustContentInset(refresh.EdgeBottom, 8)

	for range 3 {
		h.footer.Attach(h.view)
		h.header.Attach(h.view)
		assert.Equal(t, 52.0, h.view.ContentInset().Bottom)
		assert.Equal(t, 2, h.view.ObserverCount())

		h.footer.Detach()
		h.header.Detach()
		assert.Equal(t, 8.0, h.view.ContentInset().Bottom)
		assert.Equal(t, 0.0, h.view.ContentInset().Top)
		assert.Equal(t, 0, h.view.ObserverCount())
	}
}

func TestFooter_QueuedIntentCollapsesOnAttach(t *testing.T) {
	h := newHarness(t, 1000, "scroll_and_tap")

	h.footer.BeginRefreshing()
	assert.Equal(t, refresh.StateWillTrigger, h.footer.State())
	assert.Equal(t, 0, h.footerActions)

	h.footer.Attach(h.view)
	assert.Equal(t, refresh.StateTriggering, h.footer.State())
	assert.Equal(t, 1, h.footerActions)
}

func TestFooter_LoadWhileScrolling(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    refresh.State
	}{
		{"enabled", true, refresh.StateTriggering},
		{"disabled", false, refresh.StateIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 1000, "scroll_and_tap")
			h.footer.LoadWhileScrolling = tt.enabled
			h.footer.Attach(h.view)

			h.view.BeginPan()
			h.view.SetOffset(540)
			assert.Equal(t, refresh.StateIdle, h.footer.State())
			h.view.SetOffset(545)

			assert.Equal(t, tt.want, h.footer.State())
		})
	}
}

func TestFooter_NilDelegate(t *testing.T) {
	h := newHarness(t, 1000, "scroll_and_tap")
	loads := 0
	footer := refresh.NewFooter(nil, func() { loads++ })
	footer.Logger = h.footer.Logger
	footer.Attach(h.view)
	assert.Equal(t, refresh.DefaultFooterHeight, h.view.ContentInset().Bottom)

	h.release(545)
	assert.Equal(t, refresh.StateTriggering, footer.State())
	assert.Equal(t, 1, loads)

	footer.EndRefreshing()
	footer.UpdateToNoMoreData()
	footer.ResetToDefault()
	assert.Equal(t, refresh.StateIdle, footer.State())
}

func TestFooter_RecoversActionPanics(t *testing.T) {
	panics := recordPanics(t)
	h := newHarness(t, 1000, "scroll_and_tap")
	h.footer.Action = func() { panic("load failed") }
	h.footer.Attach(h.view)

	h.footer.Tap()

	assert.Equal(t, refresh.StateTriggering, h.footer.State())
	assert.Equal(t, 1, h.count(trace.TargetFooter, trace.EventDidBeginRefreshing))
	assert.Equal(t, []string{"refresh.Footer.Action"}, panics.ops)
	assert.Equal(t, []drifterrors.ErrorKind{drifterrors.KindAction}, panics.kinds)

	h.footer.EndRefreshing()
	assert.Equal(t, refresh.StateIdle, h.footer.State())
}
