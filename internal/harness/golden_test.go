package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarios_Golden runs every scenario under testdata/scenarios and
// compares its trace and final timeline against the matching golden file.
func TestScenarios_Golden(t *testing.T) {
	entries, err := os.ReadDir("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, entries, "no scenarios found")

	for _, entry := range entries {
		entry := entry
		t.Run(entry.Name(), func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata/scenarios", entry.Name()))
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)

			assert.True(t, result.Pass, "assertions failed: %v", result.Errors)
		})
	}
}
