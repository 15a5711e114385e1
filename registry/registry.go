// Package registry holds the extension points addons contribute to.
package registry

import (
	"cmp"
	"slices"
	"sync"
)

// Addon identifies the owner of registry entries.
type Addon struct {
	ID      string
	Name    string
	Version string
}

func (a Addon) String() string {
	if a.Version == "" {
		return a.Name
	}

	return a.Name + " " + a.Version
}

// Entry is one registered value.
type Entry[T any] struct {
	Value    T
	Priority int
	Owner    Addon
}

// Registry is an owner-scoped catalog ordered by priority. It is safe for
// concurrent use, but callers must not unload addons while a parse is using
// a snapshot they expect to stay complete.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries []Entry[T]
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Register appends a value owned by owner.
func (r *Registry[T]) Register(value T, priority int, owner Addon) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry[T]{Value: value, Priority: priority, Owner: owner})
}

// Unload removes every entry of owner and returns how many were removed.
func (r *Registry[T]) Unload(owner Addon) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(e Entry[T]) bool {
		return e.Owner.ID == owner.ID
	})

	return before - len(r.entries)
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Entries returns a snapshot ordered by descending priority. Entries sharing a
// priority come last-registered-first: the snapshot is the ascending stable
// sort, reversed.
func (r *Registry[T]) Entries() []Entry[T] {
	r.mu.RLock()
	entries := slices.Clone(r.entries)
	r.mu.RUnlock()

	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	slices.Reverse(entries)

	return entries
}

// Ordered returns the values of Entries.
func (r *Registry[T]) Ordered() []T {
	entries := r.Entries()
	values := make([]T, 0, len(entries))

	for _, e := range entries {
		values = append(values, e.Value)
	}

	return values
}

// Find returns the first ordered value accepted by match.
func (r *Registry[T]) Find(match func(T) bool) (T, bool) {
	for _, v := range r.Ordered() {
		if match(v) {
			return v, true
		}
	}

	var zero T

	return zero, false
}
