package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/refresh/pkg/trace"
)

var (
	replayFormat  string
	replayNoCheck bool

	replayCmd = &cobra.Command{
		Use:   "replay TRACE...",
		Short: "Replay scroll traces and print the callbacks they produce",
		Long: `Replay runs each trace file against a fresh scroll surface with a header and
a footer attached, prints the recorded delegate callbacks and actions, and
compares the outcome with the trace's expect section.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), args)
		},
	}
)

func init() {
	replayCmd.Flags().StringVarP(&replayFormat, "output", "o", "text", "Output format: text or yaml")
	replayCmd.Flags().BoolVar(&replayNoCheck, "no-check", false, "Print results without checking expectations")
}

// replayReport is the yaml form of a replay.
type replayReport struct {
	Trace         string   `yaml:"trace"`
	Name          string   `yaml:"name,omitempty"`
	Header        string   `yaml:"header"`
	Footer        string   `yaml:"footer"`
	HeaderActions int      `yaml:"header_actions"`
	FooterActions int      `yaml:"footer_actions"`
	InsetTop      float64  `yaml:"inset_top"`
	InsetBottom   float64  `yaml:"inset_bottom"`
	Offset        float64  `yaml:"offset"`
	Events        []string `yaml:"events"`
	Check         string   `yaml:"check,omitempty"`
}

func runReplay(w io.Writer, paths []string) error {
	if replayFormat != "text" && replayFormat != "yaml" {
		return fmt.Errorf("unknown output format %q (use text or yaml)", replayFormat)
	}
	var enc *yaml.Encoder
	if replayFormat == "yaml" {
		enc = yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
	}
	failed := 0
	for _, path := range paths {
		tr, err := trace.Load(path)
		if err != nil {
			return err
		}
		result, err := trace.Replay(tr, logrus.WithField("trace", path))
		if err != nil {
			return err
		}

		report := newReplayReport(path, tr, result)
		if !replayNoCheck && tr.Expect != nil {
			report.Check = "pass"
			if err := result.Verify(tr.Expect); err != nil {
				report.Check = err.Error()
				failed++
			}
		}
		if enc != nil {
			err = enc.Encode(report)
		} else {
			writeReport(w, report)
		}
		if err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d traces did not match their expectations", failed, len(paths))
	}
	return nil
}

func newReplayReport(path string, tr *trace.Trace, result *trace.Result) replayReport {
	events := make([]string, len(result.Events))
	for i, event := range result.Events {
		events[i] = event.String()
	}
	return replayReport{
		Trace:         path,
		Name:          tr.Name,
		Header:        result.Header.String(),
		Footer:        result.Footer.String(),
		HeaderActions: result.HeaderActions,
		FooterActions: result.FooterActions,
		InsetTop:      result.Inset.Top,
		InsetBottom:   result.Inset.Bottom,
		Offset:        result.Offset,
		Events:        events,
	}
}

func writeReport(w io.Writer, report replayReport) {
	title := report.Trace
	if report.Name != "" {
		title += " (" + report.Name + ")"
	}
	fmt.Fprintln(w, title)
	for _, event := range report.Events {
		fmt.Fprintf(w, "  %s\n", event)
	}
	fmt.Fprintf(w, "  header=%s footer=%s actions=%d/%d inset=%g/%g\n",
		report.Header, report.Footer, report.HeaderActions, report.FooterActions,
		report.InsetTop, report.InsetBottom)
	switch report.Check {
	case "":
	case "pass":
		fmt.Fprintln(w, "  PASS")
	default:
		fmt.Fprintf(w, "  FAIL %s\n", report.Check)
	}
}
