// Package sparse provides a small-universe sparse set that remembers
// insertion order.
//
// Membership is tested through the sparse array in O(1); iteration walks the
// dense array, which holds values in the order they were first inserted.
// Modifier flags use it so that flags are emitted in the order the caller
// enabled them.
package sparse

// SparseSet is a set of uint32 values drawn from [0, capacity).
type SparseSet struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Values in insertion order
}

// NewSparseSet creates a new sparse set able to hold values below capacity.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set. It reports whether the value was added;
// inserting a value that is already present is a no-op.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense)) //nolint:gosec // G115: len(dense) <= capacity, which is a uint32
	s.dense = append(s.dense, value)
	return true
}

// Contains returns true if the value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return uint64(idx) < uint64(len(s.dense)) && s.dense[idx] == value
}

// Remove removes a value from the set, keeping the relative order of the
// remaining values. It reports whether the value was present.
func (s *SparseSet) Remove(value uint32) bool {
	if !s.Contains(value) {
		return false
	}

	idx := s.sparse[value]
	copy(s.dense[idx:], s.dense[idx+1:])
	s.dense = s.dense[:len(s.dense)-1]

	// Shifted values moved one slot to the left.
	for i := idx; uint64(i) < uint64(len(s.dense)); i++ {
		s.sparse[s.dense[i]] = i
	}
	return true
}

// Clear removes all elements from the set in O(1) time.
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// IsEmpty returns true if the set contains no elements.
func (s *SparseSet) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the elements in insertion order.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}
