package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenarioFile(t, `
name: roundtrip
description: save then undo
capacity: 4
dedupe: true
steps:
  - op: save
    state: hello
    tag: greeting
  - op: undo
assertions:
  - type: count
    count: 1
  - type: retained_versions
    versions: [1]
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "roundtrip", scenario.Name)
	assert.Equal(t, 4, scenario.Capacity)
	assert.True(t, scenario.Dedupe)
	require.Len(t, scenario.Steps, 2)
	assert.Equal(t, Step{Op: OpSave, State: "hello", Tag: "greeting"}, scenario.Steps[0])
	require.Len(t, scenario.Assertions, 2)
	assert.Equal(t, []int64{1}, scenario.Assertions[1].Versions)
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := writeScenarioFile(t, `
steps:
  - op: save
    state: x
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_NoSteps(t *testing.T) {
	path := writeScenarioFile(t, `name: empty`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one step is required")
}

func TestLoadScenario_InvalidYAML(t *testing.T) {
	path := writeScenarioFile(t, "name: [unclosed")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse scenario YAML")
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
