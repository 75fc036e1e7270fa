package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_TextOutput(t *testing.T) {
	out, err := execute(t, "timeline", "testdata/branch.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Timeline:")
	assert.Contains(t, out, `v1`)
	assert.Contains(t, out, `"abX"`)
	assert.Contains(t, out, "tag=divergence")
	assert.NotContains(t, out, "Assertions", "timeline must not evaluate assertions")
}

func TestTimeline_JSONOutput(t *testing.T) {
	out, err := execute(t, "timeline", "testdata/branch.yaml", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Scenario string `json:"scenario"`
			Timeline []struct {
				Version   int64  `json:"version"`
				Tag       string `json:"tag"`
				State     string `json:"state"`
				CreatedAt string `json:"created_at"`
			} `json:"timeline"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "cli-branch", resp.Data.Scenario)
	require.Len(t, resp.Data.Timeline, 3)
	assert.Equal(t, int64(1), resp.Data.Timeline[0].Version)
	assert.Equal(t, "divergence", resp.Data.Timeline[2].Tag)
	assert.Equal(t, "2025-01-01T00:00:04Z", resp.Data.Timeline[2].CreatedAt)
}

func TestTimeline_IgnoresFailingAssertions(t *testing.T) {
	// The failing.yaml assertions would exit 1 under play; timeline only
	// renders the retained snapshots.
	out, err := execute(t, "timeline", "testdata/failing.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `"only"`)
}

func TestTimeline_MissingFileIsCommandError(t *testing.T) {
	_, err := execute(t, "timeline", "testdata/nope.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
