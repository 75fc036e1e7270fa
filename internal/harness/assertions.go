package harness

import (
	"fmt"
	"slices"

	"github.com/versokit/verso/chain"
	"github.com/versokit/verso/history"
)

// AssertionError describes one failed assertion with expected and actual
// outcomes rendered for humans.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion %s failed: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

// check is the request passed down the assertion chain.
type check struct {
	assertion Assertion
	history   *history.History[string]
	live      string
}

// EvaluateAssertions checks every assertion against the final engine and
// live state, returning one message per failure. Evaluation never stops
// early; callers get the full failure list.
func EvaluateAssertions(assertions []Assertion, h *history.History[string], live string) []string {
	// Each link owns one assertion type and declines the rest.
	evaluators := chain.New[check, error]().
		Then(typed(AssertCount, checkCount)).
		Then(typed(AssertCurrentVersion, checkCurrentVersion)).
		Then(typed(AssertRetainedVersions, checkRetainedVersions)).
		Then(typed(AssertCanUndo, checkCanUndo)).
		Then(typed(AssertCanRedo, checkCanRedo)).
		Then(typed(AssertLiveState, checkLiveState)).
		Build()

	var failures []string
	for _, assertion := range assertions {
		err, handled := evaluators.Handle(check{assertion: assertion, history: h, live: live})
		if !handled {
			failures = append(failures, fmt.Sprintf("unknown assertion type %q", assertion.Type))
			continue
		}
		if err != nil {
			failures = append(failures, err.Error())
		}
	}
	return failures
}

// typed wraps an evaluator so it only handles its own assertion type.
func typed(assertType string, eval func(check) error) chain.Handler[check, error] {
	return func(c check) (error, bool) {
		if c.assertion.Type != assertType {
			return nil, false
		}
		return eval(c), true
	}
}

func checkCount(c check) error {
	if got := c.history.Count(); got != c.assertion.Count {
		return &AssertionError{
			Type:     AssertCount,
			Expected: fmt.Sprintf("%d snapshots", c.assertion.Count),
			Actual:   fmt.Sprintf("%d snapshots", got),
		}
	}
	return nil
}

func checkCurrentVersion(c check) error {
	if got := c.history.CurrentVersion(); got != c.assertion.Version {
		return &AssertionError{
			Type:     AssertCurrentVersion,
			Expected: fmt.Sprintf("version %d", c.assertion.Version),
			Actual:   fmt.Sprintf("version %d", got),
		}
	}
	return nil
}

func checkRetainedVersions(c check) error {
	snaps := c.history.Snapshots()
	got := make([]int64, len(snaps))
	for i, s := range snaps {
		got[i] = s.Version
	}
	if !slices.Equal(got, c.assertion.Versions) {
		return &AssertionError{
			Type:     AssertRetainedVersions,
			Expected: fmt.Sprintf("%v", c.assertion.Versions),
			Actual:   fmt.Sprintf("%v", got),
		}
	}
	return nil
}

func checkCanUndo(c check) error {
	if got := c.history.CanUndo(); got != c.assertion.Value {
		return &AssertionError{
			Type:     AssertCanUndo,
			Expected: fmt.Sprintf("%t", c.assertion.Value),
			Actual:   fmt.Sprintf("%t", got),
		}
	}
	return nil
}

func checkCanRedo(c check) error {
	if got := c.history.CanRedo(); got != c.assertion.Value {
		return &AssertionError{
			Type:     AssertCanRedo,
			Expected: fmt.Sprintf("%t", c.assertion.Value),
			Actual:   fmt.Sprintf("%t", got),
		}
	}
	return nil
}

func checkLiveState(c check) error {
	if c.live != c.assertion.State {
		return &AssertionError{
			Type:     AssertLiveState,
			Expected: fmt.Sprintf("%q", c.assertion.State),
			Actual:   fmt.Sprintf("%q", c.live),
		}
	}
	return nil
}
