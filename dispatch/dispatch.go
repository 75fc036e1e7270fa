// Package dispatch provides a fluent runtime type dispatcher.
//
// A Builder collects per-type arms via the free function Case (Go methods
// cannot introduce new type parameters), then Build freezes them into an
// immutable Dispatcher. Dispatch runs the handler of the first arm whose
// concrete type matches the value.
package dispatch

type arm[R any] struct {
	match  func(v any) bool
	handle func(v any) R
}

// Builder accumulates type arms in registration order.
type Builder[R any] struct {
	arms     []arm[R]
	fallback func(v any) R
}

// New creates an empty dispatcher builder.
func New[R any]() *Builder[R] {
	return &Builder[R]{}
}

// Case registers a handler for values whose dynamic type is T (or, for
// interface T, values implementing it). Arms are tried in registration
// order, so register more specific types first.
func Case[T any, R any](b *Builder[R], h func(v T) R) *Builder[R] {
	b.arms = append(b.arms, arm[R]{
		match: func(v any) bool {
			_, ok := v.(T)
			return ok
		},
		handle: func(v any) R {
			return h(v.(T))
		},
	})
	return b
}

// Default sets the handler used when no arm matches.
func (b *Builder[R]) Default(h func(v any) R) *Builder[R] {
	b.fallback = h
	return b
}

// Build freezes the registered arms into an immutable Dispatcher.
func (b *Builder[R]) Build() *Dispatcher[R] {
	arms := make([]arm[R], len(b.arms))
	copy(arms, b.arms)
	return &Dispatcher[R]{arms: arms, fallback: b.fallback}
}

// Dispatcher is a frozen type dispatcher. Immutable after Build.
type Dispatcher[R any] struct {
	arms     []arm[R]
	fallback func(v any) R
}

// Dispatch runs the handler of the first arm matching v's dynamic type,
// falling back to the Default handler. The second return is false only when
// nothing matched and no default is configured.
func (d *Dispatcher[R]) Dispatch(v any) (R, bool) {
	for _, a := range d.arms {
		if a.match(v) {
			return a.handle(v), true
		}
	}
	if d.fallback != nil {
		return d.fallback(v), true
	}
	var zero R
	return zero, false
}
