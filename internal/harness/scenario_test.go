package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/basic_import.yaml")
	require.NoError(t, err)

	assert.Equal(t, "basic_import", s.Name)
	assert.Equal(t, 1.0, s.FPS)
	assert.Equal(t, "golden-basic-import", s.RunToken)
	assert.Contains(t, s.Rig, "shoulder")
	assert.Contains(t, s.Motion, "time,shoulder,elbow")
	assert.Equal(t, []string{"elbow", "shoulder"}, s.Expect.Imported)
}

func TestLoadScenario_UnknownFieldRejected(t *testing.T) {
	path := writeScenario(t, `
name: typo
rig: "rig: { joints: { j0: { axis: \"Z\" } } }"
motion: "j0\n0.1\n"
expectation:
  imported: [j0]
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario")
}

func TestLoadScenario_MissingExpectations(t *testing.T) {
	path := writeScenario(t, `
name: empty_expect
rig: "rig: { joints: { j0: { axis: \"Z\" } } }"
motion: "j0\n0.1\n"
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one outcome")
}

func TestLoadScenario_SkippedNeedsCode(t *testing.T) {
	path := writeScenario(t, `
name: no_code
rig: "rig: { joints: { j0: { axis: \"Z\" } } }"
motion: "j0\n0.1\n"
expect:
  skipped:
    - joint: j1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code is required")
}

func TestLoadScenario_Missing(t *testing.T) {
	_, err := LoadScenario("testdata/does_not_exist.yaml")
	require.Error(t, err)
}
