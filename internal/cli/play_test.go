package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versokit/verso/internal/testutil"
)

// execute runs the root command with the given args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPlay_TextOutput(t *testing.T) {
	out, err := execute(t, "play", "testdata/branch.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Scenario: cli-branch (run ")
	assert.Contains(t, out, `[4] undo    applied version=2 count=3 live="ab"`)
	assert.Contains(t, out, "Timeline:")
	assert.Contains(t, out, "tag=divergence")
	assert.Contains(t, out, "Assertions: 3 passed")
}

func TestPlay_TextVerboseIncludesDescription(t *testing.T) {
	out, err := execute(t, "play", "testdata/branch.yaml", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "branch truncation demo used by CLI tests")
}

func TestPlay_JSONOutput(t *testing.T) {
	out, err := execute(t, "play", "testdata/branch.yaml", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			RunToken string `json:"run_token"`
			Scenario string `json:"scenario"`
			Pass     bool   `json:"pass"`
			Trace    []struct {
				Op      string `json:"op"`
				Applied bool   `json:"applied"`
				Version int64  `json:"version"`
			} `json:"trace"`
			Timeline []struct {
				Version int64  `json:"version"`
				State   string `json:"state"`
			} `json:"timeline"`
			Live string `json:"live"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "cli-branch", resp.Data.Scenario)
	assert.True(t, resp.Data.Pass)
	assert.NotEmpty(t, resp.Data.RunToken)
	require.Len(t, resp.Data.Trace, 5)
	assert.Equal(t, "undo", resp.Data.Trace[3].Op)
	require.Len(t, resp.Data.Timeline, 3)
	assert.Equal(t, int64(4), resp.Data.Timeline[2].Version)
	assert.Equal(t, "abX", resp.Data.Live)
}

func TestPlay_FixedTokenGenerator(t *testing.T) {
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewPlayCommand(rootOpts, testutil.NewFixedTokenGenerator("run-0001"))

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"testdata/branch.yaml"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Scenario: cli-branch (run run-0001)")
}

func TestPlay_AssertionFailureExitsWithFailure(t *testing.T) {
	out, err := execute(t, "play", "testdata/failing.yaml")
	require.Error(t, err)

	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Assertions: 2 failed")
	assert.Contains(t, out, "assertion count failed")
}

func TestPlay_AssertionFailureJSON(t *testing.T) {
	out, err := execute(t, "play", "testdata/failing.yaml", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "assertions failed", resp.Error)
}

func TestPlay_MissingFileIsCommandError(t *testing.T) {
	_, err := execute(t, "play", "testdata/nope.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPlay_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, "play")
	require.Error(t, err)
}

func TestRoot_InvalidFormatRejected(t *testing.T) {
	_, err := execute(t, "play", "testdata/branch.yaml", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}
