package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Each scenario file under testdata/ runs against its golden report in
// testdata/golden/. New scenarios only need a YAML file and an -update
// run.
func TestScenarios(t *testing.T) {
	for _, name := range []string{
		"basic_import",
		"missing_axis",
		"malformed_cell",
		"unresolved_binding",
	} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario("testdata/" + name + ".yaml")
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}
