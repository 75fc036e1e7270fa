// Package prototype provides a named-prototype registry: register exemplar
// values with a clone strategy, then stamp out independent copies by name.
package prototype

import "sort"

type entry[T any] struct {
	proto T
	clone func(T) T
}

// Registry stores named prototypes with their clone strategies. A Registry
// is not safe for concurrent mutation; register everything up front.
type Registry[T any] struct {
	entries map[string]entry[T]
}

// NewRegistry creates an empty prototype registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]entry[T])}
}

// Register stores proto under name. clone controls how deep each copy is; a
// nil clone registers the prototype with plain value-copy semantics.
// Re-registering a name replaces the previous prototype.
func (r *Registry[T]) Register(name string, proto T, clone func(T) T) {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	r.entries[name] = entry[T]{proto: proto, clone: clone}
}

// New returns an independent copy of the named prototype, or false when the
// name is unknown.
func (r *Registry[T]) New(name string) (T, bool) {
	e, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, false
	}
	return e.clone(e.proto), true
}

// Names returns the registered prototype names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
