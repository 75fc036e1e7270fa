// Package singleton provides generic lazy single-instance constructors.
package singleton

import "sync"

// Lazy wraps init so the first call constructs the instance and every later
// call returns that same instance. The returned accessor is safe for
// concurrent use; init runs at most once.
func Lazy[T any](init func() T) func() T {
	return sync.OnceValue(init)
}

// LazyErr is Lazy for fallible constructors. Both the instance and the error
// are memoized: a failed construction is not retried.
func LazyErr[T any](init func() (T, error)) func() (T, error) {
	return sync.OnceValues(init)
}
