// Package harness provides a conformance harness for the history engine.
//
// Scenarios are defined in YAML: an engine configuration (capacity,
// duplicate suppression), an ordered list of timeline steps (save, undo,
// redo, restore), and assertions over the final engine state. The harness
// drives a history.History[string] through the steps with a deterministic
// step clock, records one trace event per step, and evaluates the
// assertions.
//
// Golden comparison: RunWithGolden serializes the trace and final timeline
// to canonical JSON and compares against testdata/golden/{name}.golden. To
// regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Determinism: snapshot timestamps come from testutil.NewScenarioClock, so
// the same scenario always produces byte-identical golden output.
//
// The harness is also the in-repo consumer of the pattern packages: step
// dispatch goes through a strategy.Selector and assertion evaluation through
// a chain.Chain.
package harness
