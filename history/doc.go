// Package history implements a versioned, branchable snapshot timeline for
// arbitrary state types.
//
// A History owns an ordered sequence of immutable Snapshots plus a cursor
// marking the snapshot currently materialized into the caller's live state.
// Callers Save after each meaningful change, move the cursor with Undo and
// Redo, and jump to a known point with Restore. The engine is parameterized
// by three caller-supplied strategies:
//
//   - a cloner, producing an independent snapshot body from the live state
//   - an applier, writing a stored body back onto the live state in place
//   - an optional equality comparer, enabling duplicate-save suppression
//
// # Versioning
//
// Every appended snapshot receives a strictly increasing version number,
// starting at 1. Versions are permanent identities: capacity eviction
// shortens the timeline but never rolls the counter back or reuses a number.
//
// # Branching
//
// Saving while the cursor sits in the past truncates everything after the
// cursor before appending - the same semantics as committing from a
// checked-out past revision in version control. Restore alone never
// truncates; only the next Save does.
//
// # Failure model
//
// Undo, Redo, and Restore at a timeline boundary or with an unknown version
// are not errors: they return false and leave the live state untouched, so
// callers can probe freely (for example to enable or disable an Undo
// button). The only validated failure is a negative capacity, rejected by
// New.
//
// Thread-safety: a History has a single logical owner and performs no
// internal locking. Concurrent calls on one instance are a data race;
// serialize externally or use one History per document or session.
package history
