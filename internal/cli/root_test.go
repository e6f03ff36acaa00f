package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given args and captures output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "inspect", "whatever.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootCommand_UnknownFlagIsCommandError(t *testing.T) {
	_, _, err := execute(t, "inspect", "--bogus", "whatever.csv")
	require.Error(t, err)

	// Usage failures must surface: a message for main to print, and the
	// command-error exit code.
	assert.Contains(t, err.Error(), "unknown flag")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootCommand_MissingArgumentIsCommandError(t *testing.T) {
	_, _, err := execute(t, "inspect")
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "import")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "inspect")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "skipped")))

	// Anything the commands did not classify is a command error, never a
	// silent generic failure.
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))
}

func TestExitError_Unwrap(t *testing.T) {
	wrapped := WrapExitError(ExitCommandError, "context", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Contains(t, wrapped.Error(), "context")
}
