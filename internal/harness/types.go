package harness

// TraceEvent records the observable outcome of one scenario step.
type TraceEvent struct {
	// Seq is the 1-based step number.
	Seq int `json:"seq"`

	// Op is the step operation.
	Op string `json:"op"`

	// Applied reports whether the step changed the engine: true for a
	// save that appended, an undo/redo that moved the cursor, a restore
	// that found its version. False for boundary no-ops and suppressed
	// duplicate saves.
	Applied bool `json:"applied"`

	// Version is the cursor version after the step.
	Version int64 `json:"version"`

	// Count is the retained snapshot count after the step.
	Count int `json:"count"`

	// Live is the live state after the step.
	Live string `json:"live"`
}

// TimelineEntry describes one retained snapshot in the final timeline.
type TimelineEntry struct {
	Version   int64  `json:"version"`
	Tag       string `json:"tag,omitempty"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per executed step, in order.
	Trace []TraceEvent `json:"trace"`

	// Timeline is the final retained snapshot sequence, oldest first.
	Timeline []TimelineEntry `json:"timeline"`

	// Live is the final live state.
	Live string `json:"live"`

	// Errors contains assertion failure messages. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// AddError records an assertion failure and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Pass = false
	r.Errors = append(r.Errors, msg)
}
