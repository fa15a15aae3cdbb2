package trace

import (
	"fmt"
	"strconv"

	"github.com/go-drift/refresh/pkg/config"
	"github.com/go-drift/refresh/pkg/refresh"
)

// Event names recorded by Recorder.
const (
	EventPercent                  = "percent"
	EventDidBeginRefreshing       = "did_begin_refreshing"
	EventDidEndRefreshing         = "did_end_refreshing"
	EventDidBeginHideAnimation    = "did_begin_hide_animation"
	EventDidCompleteHideAnimation = "did_complete_hide_animation"
	EventDidUpdateToNoMoreData    = "did_update_to_no_more_data"
	EventDidResetToDefault        = "did_reset_to_default"
	EventAction                   = "action"
)

// Event is one delegate callback or action invocation.
type Event struct {
	Control string `yaml:"control"`
	Name    string `yaml:"name"`
	Value   string `yaml:"value,omitempty"`
}

func (e Event) String() string {
	if e.Value != "" {
		return fmt.Sprintf("%s.%s=%s", e.Control, e.Name, e.Value)
	}
	return e.Control + "." + e.Name
}

// Recorder collects events from the delegates it creates.
type Recorder struct {
	// OnEvent, if set, observes every event as it is recorded.
	OnEvent func(Event)

	events []Event
}

// Record appends an event.
func (r *Recorder) Record(control, name, value string) {
	event := Event{Control: control, Name: name, Value: value}
	r.events = append(r.events, event)
	if r.OnEvent != nil {
		r.OnEvent(event)
	}
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	return append([]Event(nil), r.events...)
}

// Strings returns the recorded events formatted with Event.String.
func (r *Recorder) Strings() []string {
	out := make([]string, len(r.events))
	for i, event := range r.events {
		out[i] = event.String()
	}
	return out
}

// Count returns how many events named name were recorded for control.
func (r *Recorder) Count(control, name string) int {
	n := 0
	for _, event := range r.events {
		if event.Control == control && event.Name == name {
			n++
		}
	}
	return n
}

// Percents returns the percent values reported for control, in order.
func (r *Recorder) Percents(control string) []float64 {
	var out []float64
	for _, event := range r.events {
		if event.Control != control || event.Name != EventPercent {
			continue
		}
		if v, err := strconv.ParseFloat(event.Value, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.events = nil
}

// HeaderDelegate returns a header delegate sized by cfg.
func (r *Recorder) HeaderDelegate(cfg config.HeaderConfig) *HeaderDelegate {
	return &HeaderDelegate{recorder: r, Config: cfg}
}

// FooterDelegate returns a footer delegate sized by cfg.
func (r *Recorder) FooterDelegate(cfg config.FooterConfig) *FooterDelegate {
	return &FooterDelegate{recorder: r, Config: cfg, Mode: cfg.FooterMode()}
}

// HeaderDelegate records header callbacks under the "header" control.
type HeaderDelegate struct {
	Config   config.HeaderConfig
	recorder *Recorder
}

var _ refresh.HeaderDelegate = (*HeaderDelegate)(nil)

func (d *HeaderDelegate) HeightForControl() float64         { return d.Config.Height }
func (d *HeaderDelegate) HeightForFireRefreshing() float64  { return d.Config.FireHeight }
func (d *HeaderDelegate) HeightForRefreshingState() float64 { return d.Config.RefreshingHeight }

func (d *HeaderDelegate) PercentUpdate(percent float64) {
	d.recorder.Record("header", EventPercent, strconv.FormatFloat(percent, 'f', 2, 64))
}

func (d *HeaderDelegate) DidBeginRefreshing() {
	d.recorder.Record("header", EventDidBeginRefreshing, "")
}

func (d *HeaderDelegate) DidEndRefreshing() {
	d.recorder.Record("header", EventDidEndRefreshing, "")
}

func (d *HeaderDelegate) DidBeginHideAnimation(result refresh.HideResult) {
	d.recorder.Record("header", EventDidBeginHideAnimation, result.String())
}

func (d *HeaderDelegate) DidCompleteHideAnimation(result refresh.HideResult) {
	d.recorder.Record("header", EventDidCompleteHideAnimation, result.String())
}

// FooterDelegate records footer callbacks under the "footer" control.
type FooterDelegate struct {
	Config config.FooterConfig
	// Mode answers ShouldBeginRefreshingWhenScroll and gates taps in Player.
	Mode     refresh.FooterMode
	recorder *Recorder
}

var _ refresh.FooterDelegate = (*FooterDelegate)(nil)

func (d *FooterDelegate) HeightForControl() float64 { return d.Config.Height }

func (d *FooterDelegate) ShouldBeginRefreshingWhenScroll() bool {
	return d.Mode.AllowsScroll()
}

func (d *FooterDelegate) DidBeginRefreshing() {
	d.recorder.Record("footer", EventDidBeginRefreshing, "")
}

func (d *FooterDelegate) DidEndRefreshing() {
	d.recorder.Record("footer", EventDidEndRefreshing, "")
}

func (d *FooterDelegate) DidUpdateToNoMoreData() {
	d.recorder.Record("footer", EventDidUpdateToNoMoreData, "")
}

func (d *FooterDelegate) DidResetToDefault() {
	d.recorder.Record("footer", EventDidResetToDefault, "")
}
