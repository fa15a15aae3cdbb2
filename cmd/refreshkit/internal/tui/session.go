package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/go-drift/refresh/pkg/config"
	"github.com/go-drift/refresh/pkg/graphics"
	"github.com/go-drift/refresh/pkg/refresh"
	"github.com/go-drift/refresh/pkg/scroll"
	"github.com/go-drift/refresh/pkg/trace"
)

// session owns the scroll surface, both engines and the simulated data.
// Model is copied by value on every update, so everything mutable lives here.
type session struct {
	cfg    *config.Config
	mode   refresh.FooterMode
	view   *scroll.View
	header *refresh.Header
	footer *refresh.Footer
	// queue receives posted engine callbacks when the program registers it
	// with platform.RegisterDispatch.
	queue trace.Queue

	rows      []string
	pages     int
	refreshes int

	percent    float64
	hideResult refresh.HideResult
	failNext   bool

	cmds   []tea.Cmd
	logger logrus.FieldLogger
}

func newSession(cfg *config.Config) *session {
	var physics scroll.Physics = scroll.ClampingPhysics{}
	if cfg.Surface.Bouncing {
		physics = scroll.BouncingPhysics{}
	}
	s := &session{
		cfg:    cfg,
		mode:   cfg.Footer.FooterMode(),
		view:   scroll.NewView(cfg.Surface.Viewport(), physics),
		logger: logrus.StandardLogger().WithField("component", "demo"),
	}
	s.view.AdjustContentInset(refresh.EdgeTop, cfg.Surface.InsetTop)
	s.view.AdjustContentInset(refresh.EdgeBottom, cfg.Surface.InsetBottom)
	s.view.SetOffset(s.view.MinScrollOffset())
	s.appendPage()

	s.header = refresh.NewHeader(&headerDelegate{s: s}, s.startRefresh)
	s.header.Logger = s.logger
	s.footer = refresh.NewFooter(&footerDelegate{s: s}, s.startLoad)
	s.footer.Logger = s.logger
	s.footer.LoadWhileScrolling = cfg.Footer.LoadWhileScrolling

	s.header.Attach(s.view)
	s.footer.Attach(s.view)
	return s
}

func (s *session) close() {
	s.header.Detach()
	s.footer.Detach()
}

// post schedules cmd with the next batch returned from Update.
func (s *session) post(cmd tea.Cmd) {
	s.cmds = append(s.cmds, cmd)
}

// drain runs callbacks posted by the engines and collects scheduled commands.
func (s *session) drain() []tea.Cmd {
	s.queue.Flush()
	cmds := s.cmds
	s.cmds = nil
	return cmds
}

func (s *session) resize(width, height int) {
	lines := height - chromeLines
	if lines < minViewportLines {
		lines = minViewportLines
	}
	s.view.SetViewportSize(graphics.Size{Width: float64(width), Height: float64(lines) * pointsPerLine})
}

func (s *session) appendPage() {
	first := s.pages*s.cfg.Demo.PageSize + 1
	for i := range s.cfg.Demo.PageSize {
		s.rows = append(s.rows, fmt.Sprintf("Item %d", first+i))
	}
	s.pages++
	s.view.SetContentHeight(float64(len(s.rows)) * pointsPerLine)
}

func (s *session) startRefresh() {
	s.post(after(s.cfg.Demo.LoadDelay, refreshDoneMsg{}))
}

func (s *session) startLoad() {
	s.post(after(s.cfg.Demo.LoadDelay, loadDoneMsg{}))
}

func (s *session) finishRefresh() {
	if s.header.State() != refresh.StateTriggering {
		return
	}
	result := refresh.ResultSuccess
	if s.failNext {
		result = refresh.ResultFailure
		s.failNext = false
	} else {
		s.refreshes++
		s.rows = nil
		s.pages = 0
		s.appendPage()
		s.footer.ResetToDefault()
	}
	s.header.EndRefreshing(result)
}

func (s *session) finishLoad() {
	if s.footer.State() != refresh.StateTriggering {
		return
	}
	s.appendPage()
	s.footer.EndRefreshing()
	if limit := s.cfg.Demo.MaxPages; limit > 0 && s.pages >= limit {
		s.footer.UpdateToNoMoreData()
	}
}

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

type headerDelegate struct {
	s *session
}

func (d *headerDelegate) HeightForControl() float64 { return d.s.cfg.Header.Height }

func (d *headerDelegate) HeightForFireRefreshing() float64 { return d.s.cfg.Header.FireHeight }

func (d *headerDelegate) HeightForRefreshingState() float64 {
	return d.s.cfg.Header.RefreshingHeight
}

func (d *headerDelegate) PercentUpdate(percent float64) {
	d.s.percent = percent
}

func (d *headerDelegate) DidBeginRefreshing() {
	d.s.logger.Debug("refresh started")
}

func (d *headerDelegate) DidEndRefreshing() {
	d.s.logger.Debug("refresh ended")
}

func (d *headerDelegate) DidBeginHideAnimation(result refresh.HideResult) {
	d.s.hideResult = result
	d.s.post(after(hideDuration, hideDoneMsg{}))
}

func (d *headerDelegate) DidCompleteHideAnimation(refresh.HideResult) {
	d.s.percent = 0
}

type footerDelegate struct {
	s *session
}

func (d *footerDelegate) HeightForControl() float64 { return d.s.cfg.Footer.Height }

func (d *footerDelegate) ShouldBeginRefreshingWhenScroll() bool {
	return d.s.mode.AllowsScroll()
}

func (d *footerDelegate) DidBeginRefreshing() {
	d.s.logger.WithField("page", d.s.pages+1).Debug("load started")
}

func (d *footerDelegate) DidEndRefreshing() {
	d.s.logger.WithField("pages", d.s.pages).Debug("load ended")
}

func (d *footerDelegate) DidUpdateToNoMoreData() {
	d.s.logger.Debug("no more data")
}

func (d *footerDelegate) DidResetToDefault() {}
