// Package trace replays scripted scroll sessions against refresh controls.
//
// A trace is a YAML document describing a scroll surface, the sizes of a
// header and a footer, and a list of steps (pans, drags, offset and content
// changes, programmatic calls). A Player executes the steps against a
// scroll.View with both engines attached through a Recorder, so the
// resulting delegate callbacks can be printed or compared with the
// expectations embedded in the trace.
//
//	version: v1.0.0
//	surface: {viewport_height: 500, content_height: 1000}
//	header: {fire_height: 40}
//	steps:
//	  - {op: attach}
//	  - {op: drag, dy: 40}
//	  - {op: pan_end}
//	expect:
//	  header: triggering
package trace

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/refresh/pkg/config"
	drifterrors "github.com/go-drift/refresh/pkg/errors"
)

// SchemaMajor is the trace schema major version this package reads.
const SchemaMajor = "v1"

// Step operations.
const (
	OpAttach          = "attach"
	OpDetach          = "detach"
	OpHide            = "hide"
	OpShow            = "show"
	OpPanBegin        = "pan_begin"
	OpDrag            = "drag"
	OpPanEnd          = "pan_end"
	OpPanCancel       = "pan_cancel"
	OpOffset          = "offset"
	OpContentHeight   = "content_height"
	OpSettle          = "settle"
	OpBeginRefreshing = "begin_refreshing"
	OpEndRefreshing   = "end_refreshing"
	OpCompleteHide    = "complete_hide"
	OpTap             = "tap"
	OpNoMoreData      = "no_more_data"
	OpReset           = "reset"
	OpFlush           = "flush"
)

// Targets select which control a step applies to.
const (
	TargetHeader = "header"
	TargetFooter = "footer"
	TargetBoth   = "both"
)

// Trace is a scripted scroll session.
type Trace struct {
	Version string               `yaml:"version" validate:"required"`
	Name    string               `yaml:"name,omitempty"`
	Surface config.SurfaceConfig `yaml:"surface"`
	Header  config.HeaderConfig  `yaml:"header"`
	Footer  config.FooterConfig  `yaml:"footer"`
	// ManualDispatch leaves posted callbacks queued until a flush step.
	// Otherwise they run after every step.
	ManualDispatch bool         `yaml:"manual_dispatch,omitempty"`
	Steps          []Step       `yaml:"steps" validate:"required,min=1,dive"`
	Expect         *Expectation `yaml:"expect,omitempty"`
}

// Step is one scripted operation.
type Step struct {
	Op     string  `yaml:"op" validate:"required,oneof=attach detach hide show pan_begin drag pan_end pan_cancel offset content_height settle begin_refreshing end_refreshing complete_hide tap no_more_data reset flush"`
	Target string  `yaml:"target,omitempty" validate:"omitempty,oneof=header footer both"`
	DY     float64 `yaml:"dy,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Result string  `yaml:"result,omitempty" validate:"omitempty,oneof=none success failure"`
	Repeat int     `yaml:"repeat,omitempty" validate:"gte=0"`
}

func (s Step) String() string {
	out := s.Op
	if s.Target != "" {
		out += " " + s.Target
	}
	switch s.Op {
	case OpDrag:
		out += fmt.Sprintf(" dy=%g", s.DY)
	case OpOffset:
		out += fmt.Sprintf(" y=%g", s.Y)
	case OpContentHeight:
		out += fmt.Sprintf(" value=%g", s.Value)
	case OpEndRefreshing:
		if s.Result != "" {
			out += " result=" + s.Result
		}
	}
	return out
}

// Expectation is the optional outcome a trace asserts.
type Expectation struct {
	Header        string   `yaml:"header,omitempty" validate:"omitempty,oneof=idle will_trigger triggering"`
	Footer        string   `yaml:"footer,omitempty" validate:"omitempty,oneof=idle will_trigger triggering no_more_data"`
	HeaderActions *int     `yaml:"header_actions,omitempty" validate:"omitempty,gte=0"`
	FooterActions *int     `yaml:"footer_actions,omitempty" validate:"omitempty,gte=0"`
	InsetTop      *float64 `yaml:"inset_top,omitempty"`
	InsetBottom   *float64 `yaml:"inset_bottom,omitempty"`
	// Events, when present, must equal the recorded events formatted with
	// Event.String, in order.
	Events []string `yaml:"events,omitempty"`
}

// Parse decodes a trace. Sections left out of the document take the
// defaults of config.Default.
func Parse(data []byte) (*Trace, error) {
	defaults := config.Default()
	tr := &Trace{
		Surface: defaults.Surface,
		Header:  defaults.Header,
		Footer:  defaults.Footer,
	}
	if err := yaml.Unmarshal(data, tr); err != nil {
		return nil, traceError("trace.Parse", err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return tr, nil
}

// Load reads and parses the trace at path.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &drifterrors.RefreshError{Op: "trace.Load", Kind: drifterrors.KindTrace, Path: path, Err: err}
	}
	tr, err := Parse(data)
	if err != nil {
		if refreshErr, ok := err.(*drifterrors.RefreshError); ok {
			refreshErr.Path = path
		}
		return nil, err
	}
	return tr, nil
}

// Validate checks the schema version and field constraints.
func (t *Trace) Validate() error {
	if !semver.IsValid(t.Version) {
		return traceError("trace.Validate", fmt.Errorf("version %q is not a valid semantic version", t.Version))
	}
	if major := semver.Major(t.Version); major != SchemaMajor {
		return traceError("trace.Validate", fmt.Errorf("unsupported trace version %s (want %s.x.y)", t.Version, SchemaMajor))
	}
	if err := config.Struct(t); err != nil {
		return traceError("trace.Validate", err)
	}
	return nil
}

func traceError(op string, err error) *drifterrors.RefreshError {
	return &drifterrors.RefreshError{Op: op, Kind: drifterrors.KindTrace, Err: err}
}
