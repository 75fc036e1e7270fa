package harness

import (
	"fmt"
	"strings"
	"time"

	"github.com/versokit/verso/history"
	"github.com/versokit/verso/internal/testutil"
	"github.com/versokit/verso/strategy"
)

// runner carries the mutable run state threaded through the step handlers.
type runner struct {
	history *history.History[string]
	live    string
	seq     int
}

// Run executes a scenario against a fresh history engine and returns the
// result with trace, final timeline, and assertion outcomes.
//
// Each run uses its own engine and deterministic step clock, so runs are
// isolated and reproducible.
func Run(scenario *Scenario) (*Result, error) {
	opts := []history.Option[string]{
		history.WithCloner[string](strings.Clone),
		history.WithNow[string](testutil.NewScenarioClock().Now),
	}
	if scenario.Capacity > 0 {
		opts = append(opts, history.WithCapacity[string](scenario.Capacity))
	}
	if scenario.Dedupe {
		opts = append(opts, history.WithComparer[string](func(a, b string) bool { return a == b }))
	}

	h, err := history.New[string](opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: invalid engine configuration: %w", scenario.Name, err)
	}

	r := &runner{history: h}

	// Step dispatch is a first-match-wins strategy over the op name.
	steps := strategy.New[Step, TraceEvent]().
		When(opIs(OpSave), r.runSave).
		When(opIs(OpUndo), r.runUndo).
		When(opIs(OpRedo), r.runRedo).
		When(opIs(OpRestore), r.runRestore).
		Build()

	result := &Result{Pass: true}
	for i, step := range scenario.Steps {
		event, ok := steps.Select(step)
		if !ok {
			return nil, fmt.Errorf("scenario %q: step %d: unknown op %q", scenario.Name, i+1, step.Op)
		}
		result.Trace = append(result.Trace, event)
	}

	result.Timeline = timelineOf(h)
	result.Live = r.live

	for _, msg := range EvaluateAssertions(scenario.Assertions, h, r.live) {
		result.AddError(msg)
	}
	return result, nil
}

func opIs(op string) strategy.Predicate[Step] {
	return func(s Step) bool { return s.Op == op }
}

func (r *runner) runSave(step Step) TraceEvent {
	before := r.history.CurrentVersion()
	r.live = step.State
	if step.Tag != "" {
		r.history.SaveTagged(r.live, step.Tag)
	} else {
		r.history.Save(r.live)
	}
	// A suppressed duplicate consumes no version and leaves the cursor.
	return r.event(OpSave, r.history.CurrentVersion() != before)
}

func (r *runner) runUndo(step Step) TraceEvent {
	return r.event(OpUndo, r.history.Undo(&r.live))
}

func (r *runner) runRedo(step Step) TraceEvent {
	return r.event(OpRedo, r.history.Redo(&r.live))
}

func (r *runner) runRestore(step Step) TraceEvent {
	return r.event(OpRestore, r.history.Restore(step.Version, &r.live))
}

func (r *runner) event(op string, applied bool) TraceEvent {
	r.seq++
	return TraceEvent{
		Seq:     r.seq,
		Op:      op,
		Applied: applied,
		Version: r.history.CurrentVersion(),
		Count:   r.history.Count(),
		Live:    r.live,
	}
}

func timelineOf(h *history.History[string]) []TimelineEntry {
	snaps := h.Snapshots()
	timeline := make([]TimelineEntry, len(snaps))
	for i, s := range snaps {
		timeline[i] = TimelineEntry{
			Version:   s.Version,
			Tag:       s.Tag,
			State:     s.State,
			CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return timeline
}
