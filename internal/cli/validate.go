package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/marionette/internal/importer"
	"github.com/roach88/marionette/internal/motion"
	"github.com/roach88/marionette/internal/rig"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Rig        string
	FPS        float64
	TimeColumn string
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <motion.csv>",
		Short: "Check a motion file against a rig without importing",
		Long: `Cross-check a motion file against a rig profile.

Parses every track, verifies each joint column binds to a rig node by
exact name and has an axis convention, and reports per-joint findings.
Nothing is mutated - no scene, no timeline.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Rig, "rig", "", "path to rig profile (required)")
	_ = cmd.MarkFlagRequired("rig")
	cmd.Flags().Float64Var(&opts.FPS, "fps", motion.DefaultFPS, "frames per second for the time column")
	cmd.Flags().StringVar(&opts.TimeColumn, "time-column", motion.DefaultTimeColumn, "header of the time column")

	return cmd
}

func runValidate(opts *ValidateOptions, motionPath string, cmd *cobra.Command) error {
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

	set, err := motion.LoadFile(motionPath, motion.Options{FPS: opts.FPS, TimeColumn: opts.TimeColumn})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load motion file", err)
	}

	imp := importer.New(profile.Scene(), nil, profile.AxisTable())
	report := imp.Validate(set, motionPath)

	if err := outputReport(formatter, report); err != nil {
		return err
	}
	if report.Failed() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d joint(s) would be skipped", report.Skipped))
	}
	return nil
}
