// Package cache holds the per-section in-memory mirror of server state.
// One Collection backs each dashboard section; it is populated from a
// fetch-all on section load and mutated alongside every confirmed (or
// optimistic) write. It is not safe for concurrent use; the TUI event
// loop is the only writer.
package cache

import "sort"

// Collection is an ordered, ID-keyed record set. Order is insertion/server
// order until a sort is explicitly applied.
type Collection[T any] struct {
	records []T
	index   map[string]int
	idOf    func(T) string
}

// New creates an empty Collection using idOf to key records.
func New[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{
		index: make(map[string]int),
		idOf:  idOf,
	}
}

// Replace swaps the entire contents for a fresh server snapshot.
func (c *Collection[T]) Replace(records []T) {
	c.records = append(c.records[:0:0], records...)
	c.reindex()
}

// Upsert replaces the record with a matching ID in place, or appends it.
func (c *Collection[T]) Upsert(record T) {
	id := c.idOf(record)
	if i, ok := c.index[id]; ok {
		c.records[i] = record
		return
	}
	c.records = append(c.records, record)
	c.index[id] = len(c.records) - 1
}

// RemoveByID deletes the record with the given ID, preserving order.
// Returns the removed record and whether it was present, so optimistic
// callers can restore it on rollback.
func (c *Collection[T]) RemoveByID(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	removed := c.records[i]
	c.records = append(c.records[:i], c.records[i+1:]...)
	c.reindex()
	return removed, true
}

// Get returns the record with the given ID.
func (c *Collection[T]) Get(id string) (T, bool) {
	if i, ok := c.index[id]; ok {
		return c.records[i], true
	}
	var zero T
	return zero, false
}

// All returns the live ordered sequence for rendering. Callers must not
// mutate it.
func (c *Collection[T]) All() []T {
	return c.records
}

// Len returns the record count.
func (c *Collection[T]) Len() int {
	return len(c.records)
}

// SortBy reorders the collection in place with a stable sort, so records
// that compare equal keep their current relative order.
func (c *Collection[T]) SortBy(less func(a, b T) bool) {
	sort.SliceStable(c.records, func(i, j int) bool {
		return less(c.records[i], c.records[j])
	})
	c.reindex()
}

func (c *Collection[T]) reindex() {
	c.index = make(map[string]int, len(c.records))
	for i := range c.records {
		c.index[c.idOf(c.records[i])] = i
	}
}
