package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CleanFile(t *testing.T) {
	rigPath, motionPath := writeFixtures(t, testRig, testMotion)

	stdout, _, err := execute(t, "validate", "--rig", rigPath, "--fps", "1", motionPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported: 2 joint(s)")
}

func TestValidate_ReportsMissingAxis(t *testing.T) {
	// elbow exists as a node but carries no axis convention.
	rigSrc := `
rig: {
	joints: {
		shoulder: { axis: "Z" }
		elbow: {}
	}
}
`
	rigPath, motionPath := writeFixtures(t, rigSrc, testMotion)

	stdout, _, err := execute(t, "validate", "--rig", rigPath, "--fps", "1", motionPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "MISSING_AXIS")
	assert.Contains(t, stdout, "imported: 1 joint(s)")
}

func TestValidate_RigJointsAbsentFromFileAreIgnored(t *testing.T) {
	rigSrc := `
rig: {
	joints: {
		shoulder: { axis: "Z" }
		elbow: { axis: "X" }
		wrist: { axis: "Y" }
	}
}
`
	rigPath, motionPath := writeFixtures(t, rigSrc, testMotion)

	stdout, _, err := execute(t, "validate", "--rig", rigPath, "--fps", "1", motionPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported: 2 joint(s)")
	assert.NotContains(t, stdout, "wrist")
}

func TestValidate_UnboundJointFails(t *testing.T) {
	rigSrc := `rig: { joints: { shoulder: { axis: "Z" } } }`
	rigPath, motionPath := writeFixtures(t, rigSrc, testMotion)

	stdout, _, err := execute(t, "validate", "--rig", rigPath, "--fps", "1", motionPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "UNRESOLVED_BINDING")
}

func TestValidate_JSONHasNoRunToken(t *testing.T) {
	rigPath, motionPath := writeFixtures(t, testRig, testMotion)

	stdout, _, err := execute(t, "--format", "json", "validate", "--rig", rigPath, "--fps", "1", motionPath)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)

	// Validation is not a run.
	_, hasToken := data["run_token"]
	assert.False(t, hasToken)
}

func TestValidate_BadRigIsCommandError(t *testing.T) {
	rigPath, motionPath := writeFixtures(t, `rig: { joints: { j0: { axis: "W" } } }`, testMotion)

	_, _, err := execute(t, "validate", "--rig", rigPath, motionPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid axis")
}
