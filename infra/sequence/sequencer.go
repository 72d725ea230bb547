// Package sequence issues the strictly monotonic sequence numbers
// that order every command applied to a book. Sequencing is
// deterministic and replay-safe.
package sequence

import "sync/atomic"

// Sequencer generates strictly monotonic sequence IDs.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer. A fresh book starts from 0; after WAL
// replay the start is the last replayed sequence.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset sets the sequencer to a specific value. Only used after
// replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
