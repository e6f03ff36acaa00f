package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/marionette/internal/importer"
	"github.com/roach88/marionette/internal/motion"
	"github.com/roach88/marionette/internal/rig"
	"github.com/roach88/marionette/internal/scene"
	"github.com/roach88/marionette/internal/timeline"
)

// Result is the outcome of one scenario run. Scene and Timeline are
// the live state after the run, available for extra inspection beyond
// the report.
type Result struct {
	Report   *importer.Report
	Scene    *scene.Graph
	Timeline *timeline.Memory
}

// Run executes a scenario against a fresh scene and a fresh in-memory
// timeline.
//
// Rig and motion problems that would be command errors in the CLI are
// returned as errors here too; per-joint outcomes land in the report
// and are checked separately via CheckExpectations.
func Run(scenario *Scenario) (*Result, error) {
	profile, err := rig.Compile([]byte(scenario.Rig), scenario.Name+".cue")
	if err != nil {
		return nil, fmt.Errorf("scenario rig: %w", err)
	}

	set, err := motion.Load(strings.NewReader(scenario.Motion), scenario.Name, motion.Options{
		FPS:        scenario.FPS,
		TimeColumn: scenario.TimeColumn,
	})
	if err != nil {
		return nil, fmt.Errorf("scenario motion: %w", err)
	}

	token := scenario.RunToken
	if token == "" {
		token = DefaultRunToken
	}

	graph := profile.Scene()
	tl := timeline.NewMemory()
	imp := importer.New(graph, tl, profile.AxisTable(),
		importer.WithTokenGenerator(importer.NewFixedGenerator(token)),
		importer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	report, err := imp.Run(context.Background(), set, scenario.Name)
	if err != nil {
		return nil, err
	}
	return &Result{Report: report, Scene: graph, Timeline: tl}, nil
}

// CheckExpectations compares a run report against the scenario's
// expectations and returns one message per mismatch. An empty slice
// means the scenario passed.
func (s *Scenario) CheckExpectations(result *Result) []string {
	outcomes := make(map[string]importer.JointReport, len(result.Report.Joints))
	for _, jr := range result.Report.Joints {
		outcomes[jr.Joint] = jr
	}

	var problems []string
	for _, joint := range s.Expect.Imported {
		jr, ok := outcomes[joint]
		if !ok {
			problems = append(problems, fmt.Sprintf("joint %q missing from report", joint))
			continue
		}
		if jr.Status != importer.StatusImported {
			problems = append(problems, fmt.Sprintf("joint %q: expected imported, got %s (%s)", joint, jr.Status, jr.Code))
		}
	}
	for _, want := range s.Expect.Skipped {
		jr, ok := outcomes[want.Joint]
		if !ok {
			problems = append(problems, fmt.Sprintf("joint %q missing from report", want.Joint))
			continue
		}
		if jr.Status != importer.StatusSkipped {
			problems = append(problems, fmt.Sprintf("joint %q: expected skipped, got %s", want.Joint, jr.Status))
			continue
		}
		if string(jr.Code) != want.Code {
			problems = append(problems, fmt.Sprintf("joint %q: expected code %s, got %s", want.Joint, want.Code, jr.Code))
		}
	}
	return problems
}
