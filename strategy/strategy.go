// Package strategy provides a fluent, first-match-wins strategy selector.
//
// A Builder collects (predicate, handler) arms in registration order plus an
// optional fallback, then Build freezes them into an immutable Selector.
// Selection walks the arms in order and runs the handler of the first
// predicate that matches.
package strategy

// Predicate reports whether a handler applies to a value.
type Predicate[T any] func(v T) bool

// Handler produces a result for a matched value.
type Handler[T, R any] func(v T) R

// Builder accumulates strategy arms. Builders are not safe for concurrent
// use; freeze with Build before sharing.
type Builder[T, R any] struct {
	preds    []Predicate[T]
	handlers []Handler[T, R]
	fallback Handler[T, R]
}

// New creates an empty strategy builder.
func New[T, R any]() *Builder[T, R] {
	return &Builder[T, R]{}
}

// When appends an arm. Arms are evaluated in registration order.
func (b *Builder[T, R]) When(pred Predicate[T], h Handler[T, R]) *Builder[T, R] {
	b.preds = append(b.preds, pred)
	b.handlers = append(b.handlers, h)
	return b
}

// Otherwise sets the fallback handler used when no arm matches.
func (b *Builder[T, R]) Otherwise(h Handler[T, R]) *Builder[T, R] {
	b.fallback = h
	return b
}

// Build freezes the registered arms into an immutable Selector. The builder
// may keep accumulating arms afterwards without affecting the result.
func (b *Builder[T, R]) Build() *Selector[T, R] {
	preds := make([]Predicate[T], len(b.preds))
	copy(preds, b.preds)
	handlers := make([]Handler[T, R], len(b.handlers))
	copy(handlers, b.handlers)
	return &Selector[T, R]{
		preds:    preds,
		handlers: handlers,
		fallback: b.fallback,
	}
}

// Selector is a frozen first-match-wins dispatcher. It is immutable and safe
// for concurrent use as long as the handlers themselves are.
type Selector[T, R any] struct {
	preds    []Predicate[T]
	handlers []Handler[T, R]
	fallback Handler[T, R]
}

// Select runs the handler of the first matching arm, falling back to the
// Otherwise handler when no predicate matches. The second return is false
// only when nothing matched and no fallback is configured.
func (s *Selector[T, R]) Select(v T) (R, bool) {
	for i, pred := range s.preds {
		if pred(v) {
			return s.handlers[i](v), true
		}
	}
	if s.fallback != nil {
		return s.fallback(v), true
	}
	var zero R
	return zero, false
}
