package cli

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/marionette/internal/importer"
	"github.com/roach88/marionette/internal/motion"
	"github.com/roach88/marionette/internal/rig"
	"github.com/roach88/marionette/internal/timeline"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Rig        string
	Database   string
	FPS        float64
	TimeColumn string

	// TokenGenerator allows overriding run token generation (for
	// testing). If nil, defaults to UUIDv7Generator.
	TokenGenerator importer.TokenGenerator
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <motion.csv>",
		Short: "Import a motion file onto a rig",
		Long: `Import per-joint rotation samples from a CSV motion file.

Each joint column is bound to the rig node with exactly the same name,
its rest pose is captured at the reserved sentinel frame, and every
sample becomes a rotation keyframe about the joint's configured local
axis. Joints that cannot be imported are skipped and reported; they
never abort the run.

With --db, keyframes are persisted to a SQLite timeline database
(created if missing) and the run is logged. Without it the import runs
against an in-memory timeline, which is only useful with --format json
to preview the outcome.

Example:
  marionette import --rig arm7.cue --db anim.db walk.csv
  marionette import --rig arm7.cue --fps 30 walk.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Rig, "rig", "", "path to rig profile (required)")
	_ = cmd.MarkFlagRequired("rig")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite timeline database")
	cmd.Flags().Float64Var(&opts.FPS, "fps", motion.DefaultFPS, "frames per second for the time column")
	cmd.Flags().StringVar(&opts.TimeColumn, "time-column", motion.DefaultTimeColumn, "header of the time column")

	return cmd
}

func runImport(opts *ImportOptions, motionPath string, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	profile, err := rig.LoadFile(opts.Rig)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load rig profile", err)
	}
	slog.Info("rig loaded", "rig", profile.Name, "joints", len(profile.Joints))

	set, err := motion.LoadFile(motionPath, motion.Options{FPS: opts.FPS, TimeColumn: opts.TimeColumn})
	if err != nil {
		// Source-unreadable: fatal before any mutation.
		return WrapExitError(ExitCommandError, "failed to load motion file", err)
	}
	formatter.VerboseLog("Loaded %d track(s), %d column failure(s)", len(set.Tracks), len(set.Failures))

	var tl timeline.Timeline
	if opts.Database != "" {
		store, err := timeline.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open timeline database", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("error closing timeline database", "error", closeErr)
			}
		}()
		tl = store
	} else {
		tl = timeline.NewMemory()
	}

	impOpts := []importer.Option{}
	if opts.TokenGenerator != nil {
		impOpts = append(impOpts, importer.WithTokenGenerator(opts.TokenGenerator))
	}
	imp := importer.New(profile.Scene(), tl, profile.AxisTable(), impOpts...)

	report, err := imp.Run(cmd.Context(), set, motionPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "import aborted", err)
	}

	if err := outputReport(formatter, report); err != nil {
		return err
	}
	if report.Failed() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d joint(s) skipped", report.Skipped))
	}
	return nil
}

// configureLogging sets up slog based on the verbose flag.
func configureLogging(opts *RootOptions) {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}

// outputReport renders a run report in the configured format.
func outputReport(f *OutputFormatter, report *importer.Report) error {
	if f.Format == "json" {
		return f.JSON(report)
	}

	if report.RunToken != "" {
		fmt.Fprintf(f.Writer, "run:      %s\n", report.RunToken)
	}
	if report.Source != "" {
		fmt.Fprintf(f.Writer, "source:   %s\n", report.Source)
	}
	fmt.Fprintf(f.Writer, "imported: %d joint(s), %d keyframe(s)\n", report.Imported, report.Keyframes)
	fmt.Fprintf(f.Writer, "skipped:  %d joint(s)\n", report.Skipped)

	w := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	for _, j := range report.Joints {
		switch j.Status {
		case importer.StatusImported:
			fmt.Fprintf(w, "  %s\timported\t%d keyframe(s)\n", j.Joint, j.Keyframes)
		case importer.StatusSkipped:
			fmt.Fprintf(w, "  %s\tskipped\t%s: %s\n", j.Joint, j.Code, j.Detail)
		}
	}
	return w.Flush()
}
