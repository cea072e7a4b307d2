// Package nodeset provides a sparse set data structure for tracking DAFSA
// node IDs during graph traversal.
//
// A sparse set supports O(1) insertion, membership testing, and removal
// while still allowing dense iteration over its members. It is used by the
// dafsa package to track "already visited" node IDs during the minimizer's
// bottom-up recursion, without resorting to a map[NodeID]struct{} (which would cost a
// hash per lookup over a universe — the arena's node count — that is known
// up front).
package nodeset

// Set is a set of uint32 values (node IDs) drawn from a known, bounded
// universe [0, capacity). It supports O(1) Insert, Contains, and Remove.
//
// The zero value is not usable; construct with New.
type Set struct {
	sparse []uint32 // maps value -> index in dense, valid only when dense[sparse[v]] == v
	dense  []uint32 // the actual members, in insertion order modulo Remove's swap-pop
}

// New creates an empty Set over the universe [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Panics if value is outside the set's universe.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is a member of the set.
func (s *Set) Contains(value uint32) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Remove deletes value from the set, if present.
func (s *Set) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}
	idx := s.sparse[value]
	last := len(s.dense) - 1
	lastValue := s.dense[last]
	s.dense[idx] = lastValue
	s.sparse[lastValue] = idx
	s.dense = s.dense[:last]
}

// Len returns the number of members currently in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Values returns the members of the set in unspecified order. The returned
// slice aliases the set's internal storage and is only valid until the next
// mutating call.
func (s *Set) Values() []uint32 {
	return s.dense
}
