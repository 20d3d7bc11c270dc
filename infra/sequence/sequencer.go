// Package sequence issues the strictly monotonic sequence numbers
// that order reloads across the journal, outbox, and checkpoints.
package sequence

import "sync/atomic"

// Sequencer generates strictly monotonic reload sequence numbers.
// Replay-safe: after journal replay it is reset to the last applied
// sequence.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer. Fresh start begins at 0; after replay,
// pass the last replayed sequence.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence number.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset sets the sequencer. Only used after journal replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
