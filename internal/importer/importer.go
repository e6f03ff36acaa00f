package importer

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/marionette/internal/motion"
	"github.com/roach88/marionette/internal/rig"
	"github.com/roach88/marionette/internal/scene"
	"github.com/roach88/marionette/internal/timeline"
)

// Importer runs imports against an injected scene registry and timeline.
// One run at a time; the importer is the sole mutator of both while a
// run is in progress.
type Importer struct {
	registry scene.Registry
	timeline timeline.Timeline
	axes     map[string]rig.Axis
	tokens   TokenGenerator
	logger   *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithTokenGenerator overrides the run token generator (for testing).
func WithTokenGenerator(g TokenGenerator) Option {
	return func(imp *Importer) { imp.tokens = g }
}

// WithLogger overrides the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(imp *Importer) { imp.logger = l }
}

// New creates an Importer. tl may be nil when only Validate is used.
func New(registry scene.Registry, tl timeline.Timeline, axes map[string]rig.Axis, opts ...Option) *Importer {
	imp := &Importer{
		registry: registry,
		timeline: tl,
		axes:     axes,
		tokens:   UUIDv7Generator{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// binding associates a joint with its live node for the duration of one
// run. Not cached across runs.
type binding struct {
	joint string
	node  *scene.Node
	track *motion.Track
	zero  scene.Euler
	axis  rig.Axis
}

// Run performs a full import of the motion set. source labels the run in
// the report.
//
// Per-joint failures are collected into the Report; the returned error
// is non-nil only for infrastructure failures (timeline write errors,
// cancellation), in which case the run is aborted mid-way.
func (imp *Importer) Run(ctx context.Context, set *motion.Set, source string) (*Report, error) {
	report := &Report{RunToken: imp.tokens.Generate(), Source: source}
	imp.logger.Info("import starting", "run", report.RunToken, "source", source, "tracks", len(set.Tracks))

	recorder, _ := imp.timeline.(timeline.RunRecorder)
	if recorder != nil {
		if err := recorder.BeginRun(ctx, report.RunToken, source); err != nil {
			return nil, fmt.Errorf("begin run: %w", err)
		}
	}

	bound := imp.resolve(set, report)

	// Zero-pose capture for every bound joint, strictly before any
	// animated sample is written. The rest pose must never be
	// overwritten by animation data.
	for _, b := range bound {
		b.zero = b.node.Rotation
		if err := imp.timeline.Insert(ctx, b.joint, ZeroPoseFrame, b.zero); err != nil {
			return nil, fmt.Errorf("capture zero pose for %s: %w", b.joint, err)
		}
		imp.logger.Debug("zero pose captured", "joint", b.joint, "rotation", b.zero.String())
	}

	animated := imp.resolveAxes(bound, report)

	for _, b := range animated {
		count := 0
		for _, s := range b.track.Samples {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("import interrupted at %s frame %d: %w", b.joint, s.Frame, err)
			}
			rot := RotationAt(b.zero, b.axis, s.Angle)
			b.node.Rotation = rot
			if err := imp.timeline.Insert(ctx, b.joint, s.Frame, rot); err != nil {
				return nil, fmt.Errorf("insert keyframe for %s at frame %d: %w", b.joint, s.Frame, err)
			}
			count++
		}
		report.add(JointReport{Joint: b.joint, Status: StatusImported, Keyframes: count})
		imp.logger.Debug("joint imported", "joint", b.joint, "keyframes", count, "axis", string(b.axis))
	}

	report.sorted()
	if recorder != nil {
		if err := recorder.FinishRun(ctx, report.RunToken, report.Imported, report.Skipped, report.Keyframes); err != nil {
			return nil, fmt.Errorf("finish run: %w", err)
		}
	}
	imp.logger.Info("import finished",
		"run", report.RunToken,
		"imported", report.Imported,
		"skipped", report.Skipped,
		"keyframes", report.Keyframes)
	return report, nil
}

// Validate performs the resolution and axis checks of a run without
// touching the scene or the timeline. Useful for checking a motion file
// against a rig before importing.
func (imp *Importer) Validate(set *motion.Set, source string) *Report {
	report := &Report{Source: source}
	bound := imp.resolve(set, report)
	animated := imp.resolveAxes(bound, report)
	for _, b := range animated {
		report.add(JointReport{Joint: b.joint, Status: StatusImported, Keyframes: len(b.track.Samples)})
	}
	report.sorted()
	return report
}

// resolve folds loader failures into the report and binds the remaining
// joints against the registry. Unresolvable joints are skipped, not
// fatal.
func (imp *Importer) resolve(set *motion.Set, report *Report) []*binding {
	for _, f := range set.Failures {
		msg := f.Message
		if f.Row >= 0 {
			msg = fmt.Sprintf("row %d: %s", f.Row, f.Message)
		}
		report.skip(&ImportError{Code: ErrCodeMalformedData, Joint: f.Column, Message: msg})
	}

	var bound []*binding
	for _, joint := range set.Joints() {
		track := set.Tracks[joint]
		if first := track.Samples[0].Frame; first <= ZeroPoseFrame {
			report.skip(&ImportError{
				Code:    ErrCodeMalformedData,
				Joint:   joint,
				Message: fmt.Sprintf("sample at frame %d collides with the reserved zero-pose frame %d", first, ZeroPoseFrame),
			})
			continue
		}
		node, ok := imp.registry.Lookup(joint)
		if !ok {
			report.skip(NewBindingError(joint, imp.normalizationHint(joint)))
			imp.logger.Warn("joint not bound", "joint", joint)
			continue
		}
		bound = append(bound, &binding{joint: joint, node: node, track: track})
	}
	return bound
}

// resolveAxes filters bound joints down to the ones with a configured
// axis convention.
func (imp *Importer) resolveAxes(bound []*binding, report *Report) []*binding {
	var animated []*binding
	for _, b := range bound {
		axis, ok := imp.axes[b.joint]
		if !ok {
			report.skip(NewMissingAxisError(b.joint))
			imp.logger.Warn("joint has no axis convention", "joint", b.joint)
			continue
		}
		b.axis = axis
		animated = append(animated, b)
	}
	return animated
}

// normalizationHint flags lookups that miss only because of Unicode
// normalization. Binding is deliberately byte-exact; when a header and a
// node name are the same text in different normal forms, the failure is
// invisible to the eye, so the report says what happened.
func (imp *Importer) normalizationHint(joint string) string {
	want := norm.NFC.String(joint)
	for _, name := range imp.registry.Names() {
		if name != joint && norm.NFC.String(name) == want {
			return fmt.Sprintf("node %q differs only by unicode normalization", name)
		}
	}
	return ""
}
