package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/marionette/internal/motion"
	"github.com/roach88/marionette/internal/stats"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	FPS        float64
	TimeColumn string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect <motion.csv>",
		Short: "Summarize the tracks in a motion file",
		Long: `Summarize each track in a motion file without needing a rig.

Reports sample count, frame span and angle statistics per joint. Useful
for spotting unit mixups (a range of hundreds suggests degrees where
radians are expected) and joints that never move.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.FPS, "fps", motion.DefaultFPS, "frames per second for the time column")
	cmd.Flags().StringVar(&opts.TimeColumn, "time-column", motion.DefaultTimeColumn, "header of the time column")

	return cmd
}

// inspectResult is the JSON payload of the inspect command.
type inspectResult struct {
	Source   string             `json:"source"`
	Tracks   []stats.TrackStats `json:"tracks"`
	Failures []string           `json:"failures,omitempty"`
}

func runInspect(opts *InspectOptions, motionPath string, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions)
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	set, err := motion.LoadFile(motionPath, motion.Options{FPS: opts.FPS, TimeColumn: opts.TimeColumn})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load motion file", err)
	}

	result := inspectResult{Source: motionPath, Tracks: stats.ForSet(set)}
	for _, f := range set.Failures {
		result.Failures = append(result.Failures, f.Error())
	}

	if formatter.Format == "json" {
		return formatter.JSON(result)
	}

	fmt.Fprintf(formatter.Writer, "source: %s\n", motionPath)
	w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  JOINT\tSAMPLES\tFRAMES\tMIN\tMAX\tMEAN\tSTDDEV")
	for _, ts := range result.Tracks {
		fmt.Fprintf(w, "  %s\t%d\t%d..%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			ts.Joint, ts.Samples, ts.FirstFrame, ts.LastFrame,
			ts.MinAngle, ts.MaxAngle, ts.MeanAngle, ts.StdDev)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for _, f := range result.Failures {
		fmt.Fprintf(formatter.Writer, "  failed: %s\n", f)
	}
	return nil
}
