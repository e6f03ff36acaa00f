package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMotion(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motion.csv")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestInspect_Text(t *testing.T) {
	path := writeMotion(t, testMotion)

	stdout, _, err := execute(t, "inspect", "--fps", "1", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "JOINT")
	assert.Contains(t, stdout, "shoulder")
	assert.Contains(t, stdout, "elbow")
	assert.Contains(t, stdout, "0..2")
}

func TestInspect_JSON(t *testing.T) {
	path := writeMotion(t, testMotion)

	stdout, _, err := execute(t, "--format", "json", "inspect", "--fps", "1", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	tracks, ok := data["tracks"].([]interface{})
	require.True(t, ok)
	assert.Len(t, tracks, 2)
}

func TestInspect_ReportsColumnFailures(t *testing.T) {
	path := writeMotion(t, "j0,j1\n0.1,0.2\nNaN,0.4\n")

	stdout, _, err := execute(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "j1")
	assert.Contains(t, stdout, `failed: column "j0"`)
}

func TestInspect_UnreadableFile(t *testing.T) {
	_, _, err := execute(t, "inspect", "missing.csv")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
