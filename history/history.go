package history

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// History is a linear, branchable timeline of state snapshots with a cursor
// marking the snapshot currently reflected in the caller's live state.
//
// Invariants:
//   - versions strictly increase in timeline order
//   - the cursor is -1 only while the timeline is empty, otherwise a valid index
//   - after any Save that appends, the cursor sits at the tail
//   - the count never exceeds the configured capacity
//
// Thread-safety: none. A History has a single logical owner; serialize
// access externally if that owner spans goroutines.
type History[S any] struct {
	snapshots []Snapshot[S] // oldest first, sorted by Version
	cursor    int           // -1 when empty
	versions  versionCounter
	cfg       config[S]
}

// New creates an empty History. The zero configuration tracks value-copied
// snapshots with unbounded retention and no duplicate suppression; see the
// Option constructors for the pluggable strategies.
//
// New fails only on invalid configuration (negative capacity).
func New[S any](opts ...Option[S]) (*History[S], error) {
	cfg := defaultConfig[S]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, cfg.capacity)
	}
	return &History[S]{
		cursor: -1,
		cfg:    cfg,
	}, nil
}

// Save captures the live state as a new snapshot at the cursor and moves the
// cursor to it. Saving from a past cursor position first discards the
// snapshots after the cursor, so the old future becomes unreachable - the
// same semantics as committing from a checked-out past revision.
//
// With a comparer configured, a body equal to the cursor snapshot makes Save
// a no-op that consumes no version number.
func (h *History[S]) Save(state S) {
	h.save(state, "")
}

// SaveTagged is Save with a caller-supplied label attached to the snapshot.
func (h *History[S]) SaveTagged(state S, tag string) {
	h.save(state, tag)
}

func (h *History[S]) save(state S, tag string) {
	body := h.cfg.clone(state)

	// Duplicate suppression compares against the cursor snapshot only,
	// never the whole timeline.
	if h.cfg.equal != nil && h.cursor >= 0 && h.cfg.equal(body, h.snapshots[h.cursor].State) {
		h.cfg.logger.Debug("save suppressed, body equals cursor snapshot",
			zap.Int64("version", h.snapshots[h.cursor].Version))
		return
	}

	if dropped := len(h.snapshots) - 1 - h.cursor; h.cursor >= 0 && dropped > 0 {
		h.snapshots = h.snapshots[:h.cursor+1]
		h.cfg.logger.Debug("truncated redo branch",
			zap.Int("dropped", dropped),
			zap.Int64("cursor_version", h.snapshots[h.cursor].Version))
	}

	h.snapshots = append(h.snapshots, Snapshot[S]{
		State:     body,
		Version:   h.versions.next(),
		CreatedAt: h.cfg.now(),
		Tag:       tag,
	})
	h.cursor = len(h.snapshots) - 1

	h.evict()
}

// evict enforces the capacity bound by dropping the oldest snapshots.
//
// Policy for the case the capacity bound meets a non-tail cursor: eviction
// never removes the snapshot the cursor points at, it stops short instead.
// In practice the loop only runs right after an append, with the cursor at
// the tail, so a positive capacity always has room for the cursor snapshot.
func (h *History[S]) evict() {
	if h.cfg.capacity <= 0 {
		return
	}
	for len(h.snapshots) > h.cfg.capacity && h.cursor > 0 {
		h.cfg.logger.Debug("evicted oldest snapshot",
			zap.Int64("version", h.snapshots[0].Version))
		h.snapshots = h.snapshots[1:]
		h.cursor--
	}
}

// Undo materializes the snapshot before the cursor onto the live state and
// moves the cursor back. It returns false, leaving state untouched, when the
// cursor is already at the oldest snapshot or the timeline is empty. No
// snapshot is removed or altered.
func (h *History[S]) Undo(state *S) bool {
	if h.cursor <= 0 {
		return false
	}
	h.cursor--
	h.cfg.apply(state, h.snapshots[h.cursor].State)
	return true
}

// Redo materializes the snapshot after the cursor onto the live state and
// moves the cursor forward. It returns false, leaving state untouched, when
// the cursor has no successor.
func (h *History[S]) Redo(state *S) bool {
	if h.cursor < 0 || h.cursor >= len(h.snapshots)-1 {
		return false
	}
	h.cursor++
	h.cfg.apply(state, h.snapshots[h.cursor].State)
	return true
}

// Restore jumps the cursor to the snapshot with the exact given version and
// materializes it onto the live state. It returns false, with no side
// effects, when the version is unknown or already evicted.
//
// Restore is passive time travel: it never truncates forward history. Only a
// subsequent Save from the restored position discards the skipped future.
func (h *History[S]) Restore(version int64, state *S) bool {
	idx, ok := h.find(version)
	if !ok {
		return false
	}
	h.cursor = idx
	h.cfg.apply(state, h.snapshots[idx].State)
	return true
}

// find locates a version in the timeline. Versions are strictly increasing,
// so the timeline is sorted and binary search applies.
func (h *History[S]) find(version int64) (int, bool) {
	return slices.BinarySearchFunc(h.snapshots, version, func(s Snapshot[S], v int64) int {
		return cmp.Compare(s.Version, v)
	})
}

// CanUndo reports whether the cursor has a predecessor. No side effects.
func (h *History[S]) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether the cursor has a successor. No side effects.
func (h *History[S]) CanRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.snapshots)-1
}

// Count returns the number of retained snapshots.
func (h *History[S]) Count() int {
	return len(h.snapshots)
}

// CurrentVersion returns the version of the snapshot at the cursor, or 0
// when the timeline is empty.
func (h *History[S]) CurrentVersion() int64 {
	if h.cursor < 0 {
		return 0
	}
	return h.snapshots[h.cursor].Version
}

// Current returns a copy of the snapshot at the cursor without touching the
// live state. It returns false when the timeline is empty.
func (h *History[S]) Current() (Snapshot[S], bool) {
	if h.cursor < 0 {
		var zero Snapshot[S]
		return zero, false
	}
	return h.snapshots[h.cursor], true
}

// Snapshots returns a defensive copy of the full timeline, oldest first.
// Mutating the returned slice never propagates back into the History.
func (h *History[S]) Snapshots() []Snapshot[S] {
	out := make([]Snapshot[S], len(h.snapshots))
	copy(out, h.snapshots)
	return out
}
