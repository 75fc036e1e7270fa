package history

import "time"

// Snapshot is one retained point on a History timeline.
//
// Snapshots are created only inside Save and are owned by the History that
// produced them. Fields are exported for inspection; callers must treat a
// Snapshot as read-only. How deep State is copied from the live state is
// decided entirely by the configured cloner.
type Snapshot[S any] struct {
	// State is the cloned body captured at save time.
	State S

	// Version is the monotonic identity assigned at save time. Versions
	// start at 1, strictly increase in timeline order, and are never
	// reused, even after eviction.
	Version int64

	// CreatedAt is the capture time, taken from the configured time
	// source (wall clock by default).
	CreatedAt time.Time

	// Tag is an optional caller-supplied label, e.g. "before-refactor".
	Tag string
}
