package history

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrNegativeCapacity is returned by New when a negative capacity is
// configured. Capacity problems are rejected at build time, never deferred
// to first use.
var ErrNegativeCapacity = errors.New("history: capacity must not be negative")

// Cloner produces an independent snapshot body from the live state.
// The returned value must not share mutable structure with the input.
type Cloner[S any] func(state S) S

// Applier writes a stored snapshot body back onto the live state in place.
type Applier[S any] func(state *S, body S)

// Comparer reports whether two snapshot bodies are equal. A configured
// Comparer enables duplicate-save suppression.
type Comparer[S any] func(a, b S) bool

// Option configures a History during construction.
type Option[S any] func(*config[S])

type config[S any] struct {
	clone    Cloner[S]
	apply    Applier[S]
	equal    Comparer[S] // nil = suppression disabled
	capacity int         // 0 = unbounded
	logger   *zap.Logger
	now      func() time.Time
}

func defaultConfig[S any]() config[S] {
	return config[S]{
		clone:  func(state S) S { return state },
		apply:  func(state *S, body S) { *state = body },
		logger: zap.NewNop(),
		now:    time.Now,
	}
}

// WithCloner sets the snapshot cloning strategy. The default is a plain
// value copy, which is only safe for state types without interior pointers.
func WithCloner[S any](clone Cloner[S]) Option[S] {
	return func(c *config[S]) {
		c.clone = clone
	}
}

// WithApplier sets the strategy that materializes a stored body onto the
// live state. The default overwrites the live state by assignment.
func WithApplier[S any](apply Applier[S]) Option[S] {
	return func(c *config[S]) {
		c.apply = apply
	}
}

// WithComparer enables duplicate-save suppression: a Save whose cloned body
// compares equal to the cursor snapshot becomes a no-op and consumes no
// version number. Without a comparer every Save appends.
func WithComparer[S any](equal Comparer[S]) Option[S] {
	return func(c *config[S]) {
		c.equal = equal
	}
}

// WithCapacity bounds the number of retained snapshots. When a Save pushes
// the count past the bound, the oldest snapshots are evicted. Zero (the
// default) means unbounded; negative values are rejected by New.
func WithCapacity[S any](capacity int) Option[S] {
	return func(c *config[S]) {
		c.capacity = capacity
	}
}

// WithLogger sets the logger for timeline mutations (truncation, eviction,
// suppressed saves), all at debug level. Defaults to a no-op logger.
func WithLogger[S any](logger *zap.Logger) Option[S] {
	return func(c *config[S]) {
		c.logger = logger
	}
}

// WithNow overrides the timestamp source for snapshots. Tests and golden
// scenarios use this for deterministic CreatedAt values.
func WithNow[S any](now func() time.Time) Option[S] {
	return func(c *config[S]) {
		c.now = now
	}
}
