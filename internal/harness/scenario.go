package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpSave    = "save"
	OpUndo    = "undo"
	OpRedo    = "redo"
	OpRestore = "restore"
)

// Assertion types.
const (
	AssertCount            = "count"
	AssertCurrentVersion   = "current_version"
	AssertRetainedVersions = "retained_versions"
	AssertCanUndo          = "can_undo"
	AssertCanRedo          = "can_redo"
	AssertLiveState        = "live_state"
)

// Scenario defines a conformance scenario for the history engine.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden file
	// base name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Capacity bounds the retained snapshot count. Zero means unbounded.
	Capacity int `yaml:"capacity,omitempty"`

	// Dedupe enables duplicate-save suppression via string equality.
	Dedupe bool `yaml:"dedupe,omitempty"`

	// Steps is the ordered timeline script.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final engine and live state.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one timeline operation.
type Step struct {
	// Op is one of save, undo, redo, restore.
	Op string `yaml:"op"`

	// State is the live-state value a save step writes before saving.
	State string `yaml:"state,omitempty"`

	// Tag is an optional snapshot label for save steps.
	Tag string `yaml:"tag,omitempty"`

	// Version is the target version for restore steps.
	Version int64 `yaml:"version,omitempty"`
}

// Assertion validates one aspect of the final state.
type Assertion struct {
	// Type selects the check: count, current_version, retained_versions,
	// can_undo, can_redo, live_state.
	Type string `yaml:"type"`

	// Count is the expected snapshot count (type count).
	Count int `yaml:"count,omitempty"`

	// Version is the expected cursor version (type current_version).
	Version int64 `yaml:"version,omitempty"`

	// Versions are the expected retained versions in timeline order
	// (type retained_versions).
	Versions []int64 `yaml:"versions,omitempty"`

	// Value is the expected boolean (types can_undo, can_redo).
	Value bool `yaml:"value"`

	// State is the expected live state (type live_state).
	State string `yaml:"state,omitempty"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if scenario.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q: at least one step is required", scenario.Name)
	}
	return &scenario, nil
}
