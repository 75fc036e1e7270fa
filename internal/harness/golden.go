package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// runSnapshot is the canonical JSON shape compared against golden files.
// Field order is fixed by the struct, timestamps by the scenario clock, so
// serialization is fully deterministic.
type runSnapshot struct {
	ScenarioName string          `json:"scenario_name"`
	Trace        []TraceEvent    `json:"trace"`
	Timeline     []TimelineEntry `json:"timeline"`
}

// RunWithGolden executes a scenario and compares its trace and final
// timeline against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Assertion failures are not part of the golden payload; they fail the test
// directly through the returned result in the regular scenario tests.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	snapshot := runSnapshot{
		ScenarioName: scenario.Name,
		Trace:        result.Trace,
		Timeline:     result.Timeline,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}
