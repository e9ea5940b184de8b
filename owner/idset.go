package owner

import (
	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

// IDSet owns the service-allocated folder identifier array. The array
// is freed as a single block on Close.
type IDSet struct {
	block  knownfolders.IDBlock
	closed bool
}

// NewIDSet takes ownership of block.
func NewIDSet(block knownfolders.IDBlock) *IDSet {
	notify(Event{Category: CategoryIDSet, Type: EventAcquired})
	return &IDSet{block: block}
}

// Len returns the number of identifiers in the set.
func (s *IDSet) Len() int {
	return s.block.Len()
}

// At returns the identifier at index i. The index is checked against
// the service-reported count.
func (s *IDSet) At(i int) (knownfolders.FolderID, error) {
	if i < 0 || i >= s.block.Len() {
		return knownfolders.FolderID{}, errors.OutOfBounds(i, s.block.Len())
	}
	return s.block.At(i), nil
}

// Close frees the array. Only the first call releases.
func (s *IDSet) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.block.Free()
	notify(Event{Category: CategoryIDSet, Type: EventReleased})
}
