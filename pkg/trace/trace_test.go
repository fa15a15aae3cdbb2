package trace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/refresh/pkg/config"
	drifterrors "github.com/go-drift/refresh/pkg/errors"
	"github.com/go-drift/refresh/pkg/refresh"
)

func TestTestdataTraces(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		if filepath.Base(path) == "bad_version.yaml" {
			continue
		}
		t.Run(filepath.Base(path), func(t *testing.T) {
			tr, err := Load(path)
			require.NoError(t, err)
			require.NotNil(t, tr.Expect)

			logger, _ := logtest.NewNullLogger()
			result, err := Replay(tr, logger)
			require.NoError(t, err)
			assert.NoError(t, result.Verify(tr.Expect))
		})
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_version.yaml"))
	require.Error(t, err)

	var refreshErr *drifterrors.RefreshError
	require.True(t, errors.As(err, &refreshErr))
	assert.Equal(t, drifterrors.KindTrace, refreshErr.Kind)
	assert.Contains(t, refreshErr.Path, "bad_version.yaml")
	assert.Contains(t, err.Error(), "unsupported trace version v2.0.0")
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing version", "steps: [{op: attach}]", "not a valid semantic version"},
		{"garbage version", "version: one\nsteps: [{op: attach}]", "not a valid semantic version"},
		{"no steps", "version: v1.0.0", "Steps"},
		{"unknown op", "version: v1.0.0\nsteps: [{op: jump}]", "Op"},
		{"unknown target", "version: v1.0.0\nsteps: [{op: attach, target: sidebar}]", "Target"},
		{"bad header", "version: v1.0.0\nheader: {fire_height: -1}\nsteps: [{op: attach}]", "FireHeight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	tr, err := Parse([]byte("version: v1.3.0\nheader: {fire_height: 30}\nsteps: [{op: attach}]"))
	require.NoError(t, err)
	assert.Equal(t, 30.0, tr.Header.FireHeight)
	assert.Equal(t, refresh.DefaultHeaderHeight, tr.Header.Height)
	assert.Equal(t, refresh.DefaultFooterHeight, tr.Footer.Height)
	assert.Equal(t, 500.0, tr.Surface.ViewportHeight)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestVerifyReportsMismatches(t *testing.T) {
	two := 2
	top := 40.0
	result := &Result{
		Header:        refresh.StateIdle,
		Footer:        refresh.StateTriggering,
		HeaderActions: 1,
		Events:        []Event{{Control: "footer", Name: EventAction}},
	}
	err := result.Verify(&Expectation{
		Header:        "triggering",
		Footer:        "triggering",
		HeaderActions: &two,
		InsetTop:      &top,
		Events:        []string{"footer.did_begin_refreshing"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 mismatch(es)")
	assert.Contains(t, err.Error(), "header state = idle, want triggering")
	assert.Contains(t, err.Error(), "inset top = 0, want 40")

	assert.NoError(t, result.Verify(nil))
	assert.NoError(t, result.Verify(&Expectation{Footer: "triggering"}))
}

func TestManualDispatchHoldsBeginUntilFlush(t *testing.T) {
	tr, err := Parse([]byte(`
version: v1.0.0
manual_dispatch: true
header: {fire_height: 40, refreshing_height: 40}
steps:
  - {op: attach, target: header}
  - {op: begin_refreshing}
`))
	require.NoError(t, err)

	logger, _ := logtest.NewNullLogger()
	p := NewPlayer(tr, logger)
	for _, step := range tr.Steps {
		require.NoError(t, p.Step(step))
	}
	assert.Equal(t, refresh.StateTriggering, p.Header.State())
	assert.Equal(t, 0, p.Recorder.Count(TargetHeader, EventDidBeginRefreshing))
	assert.Equal(t, 1, p.Queue.Len())

	require.NoError(t, p.Step(Step{Op: OpFlush}))
	assert.Equal(t, 1, p.Recorder.Count(TargetHeader, EventDidBeginRefreshing))
	assert.Equal(t, 1, p.Recorder.Count(TargetHeader, EventAction))
}

func TestStepRejectsUnknownResult(t *testing.T) {
	tr, err := Parse([]byte("version: v1.0.0\nsteps: [{op: attach}]"))
	require.NoError(t, err)
	logger, _ := logtest.NewNullLogger()
	p := NewPlayer(tr, logger)
	assert.Error(t, p.Step(Step{Op: OpEndRefreshing, Result: "maybe"}))
	assert.Error(t, p.Step(Step{Op: "warp"}))
}

func TestQueueFlushRunsNestedCallbacks(t *testing.T) {
	var q Queue
	var order []int
	q.Dispatch(func() {
		order = append(order, 1)
		q.Dispatch(func() { order = append(order, 3) })
	})
	q.Dispatch(func() { order = append(order, 2) })
	q.Dispatch(nil)

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 3, q.Flush())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, q.Len())
}

func TestRecorderPercents(t *testing.T) {
	var r Recorder
	var seen []string
	r.OnEvent = func(e Event) { seen = append(seen, e.String()) }
	d := r.HeaderDelegate(config.Default().Header)
	d.PercentUpdate(0.25)
	d.DidBeginRefreshing()
	d.PercentUpdate(1)

	assert.Equal(t, []float64{0.25, 1}, r.Percents(TargetHeader))
	assert.Equal(t, []string{"header.percent=0.25", "header.did_begin_refreshing", "header.percent=1.00"}, seen)
	assert.Equal(t, seen, r.Strings())
	r.Reset()
	assert.Empty(t, r.Events())
}
