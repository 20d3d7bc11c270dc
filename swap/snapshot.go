package swap

import (
	"sync/atomic"

	"heimdall/infra/arena"
)

// Snapshot is an immutable value plus the region that owns every byte
// the value points at. The reference count covers the holder's own
// unit and every outstanding Acquire or Stage; whichever Release
// observes the count hit zero tears the region down.
type Snapshot[T any] struct {
	value  T
	refs   atomic.Int64
	region *arena.Region
}

func newSnapshot[T any]() *Snapshot[T] {
	s := &Snapshot[T]{region: arena.NewRegion()}
	s.refs.Store(1)
	return s
}

// Value returns the published value. Callers must hold a reference.
func (s *Snapshot[T]) Value() *T {
	return &s.value
}

// Region returns the snapshot's region, for populating the value
// before publication. Immutable once the snapshot is published.
func (s *Snapshot[T]) Region() *arena.Region {
	return s.region
}

// Retain adds a reference. Visibility of the snapshot pointer itself
// is established by the holder's mutex, so a plain atomic add is
// enough here.
func (s *Snapshot[T]) Retain() {
	s.refs.Add(1)
}

// Release drops a reference and, on the last one, frees the region in
// one step. The decrement and the last-reference test are a single
// atomic operation; a separate load-then-act would race a concurrent
// Release into a double free.
func (s *Snapshot[T]) Release() {
	if s.refs.Add(-1) == 0 {
		s.region.Release()
	}
}

// Refs reports the current reference count. Diagnostic only.
func (s *Snapshot[T]) Refs() int64 {
	return s.refs.Load()
}
