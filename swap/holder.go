package swap

import "sync"

// Holder is the mutex-guarded slot exposing the current snapshot to
// readers. The mutex covers a pointer read plus one atomic increment,
// nothing more.
type Holder[T any] struct {
	mu      sync.Mutex
	current *Snapshot[T]
}

// New creates a holder around a fresh snapshot and returns both. The
// holder owns one reference to the snapshot; the caller populates the
// value through the snapshot's region before readers start.
func New[T any]() (*Holder[T], *Snapshot[T]) {
	s := newSnapshot[T]()
	return &Holder[T]{current: s}, s
}

// Acquire returns the current snapshot with one reference added. The
// caller must Release it exactly once.
func (h *Holder[T]) Acquire() *Snapshot[T] {
	h.mu.Lock()
	s := h.current
	s.Retain()
	h.mu.Unlock()
	return s
}

// Stage creates a brand-new unpublished snapshot, independent of the
// holder's state. Populate it through its region, then either Swap it
// in or Release it directly to discard; nothing else can see it yet.
func (h *Holder[T]) Stage() *Snapshot[T] {
	return newSnapshot[T]()
}

// Swap publishes staged, transferring its initial reference to the
// holder, and retires the previous snapshot. The old snapshot's
// Release runs outside the lock: it only touches that snapshot's own
// counter and region, so it cannot race Acquire or another Swap on
// the holder itself.
func (h *Holder[T]) Swap(staged *Snapshot[T]) {
	h.mu.Lock()
	old := h.current
	h.current = staged
	h.mu.Unlock()
	old.Release()
}

// Close drops the holder's own reference. The final snapshot is freed
// once every reader has released too.
func (h *Holder[T]) Close() {
	h.mu.Lock()
	s := h.current
	h.current = nil
	h.mu.Unlock()
	s.Release()
}
