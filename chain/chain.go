// Package chain provides a fluent chain-of-responsibility combinator.
//
// Unlike a strategy selector, a chain handler inspects the request itself
// and either produces a result or declines, passing the request to the next
// link. Build freezes the links into an immutable Chain.
package chain

// Handler inspects a request and either handles it (returning ok true) or
// declines it, in which case the next link is consulted.
type Handler[T, R any] func(req T) (R, bool)

// Builder accumulates chain links in registration order.
type Builder[T, R any] struct {
	links    []Handler[T, R]
	fallback func(req T) R
}

// New creates an empty chain builder.
func New[T, R any]() *Builder[T, R] {
	return &Builder[T, R]{}
}

// Then appends a link to the end of the chain.
func (b *Builder[T, R]) Then(h Handler[T, R]) *Builder[T, R] {
	b.links = append(b.links, h)
	return b
}

// Otherwise sets the terminal handler run when every link declines.
func (b *Builder[T, R]) Otherwise(h func(req T) R) *Builder[T, R] {
	b.fallback = h
	return b
}

// Build freezes the links into an immutable Chain.
func (b *Builder[T, R]) Build() *Chain[T, R] {
	links := make([]Handler[T, R], len(b.links))
	copy(links, b.links)
	return &Chain[T, R]{links: links, fallback: b.fallback}
}

// Chain is a frozen chain of responsibility. Immutable after Build.
type Chain[T, R any] struct {
	links    []Handler[T, R]
	fallback func(req T) R
}

// Handle walks the links in order until one accepts the request. When every
// link declines it runs the fallback; without a fallback it returns false.
func (c *Chain[T, R]) Handle(req T) (R, bool) {
	for _, link := range c.links {
		if res, ok := link(req); ok {
			return res, true
		}
	}
	if c.fallback != nil {
		return c.fallback(req), true
	}
	var zero R
	return zero, false
}
