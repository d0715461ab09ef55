package containers

import "sort"

// SortedSequence keeps its items in ascending order as defined by the
// less function supplied at construction. Insertion is stable: an item
// equal to existing ones lands after them.
type SortedSequence[T any] struct {
	items []T
	limit int
	less  func(a, b T) bool
}

// NewSortedSequence creates a sequence holding at most capacity items,
// ordered by less.
func NewSortedSequence[T any](capacity int, less func(a, b T) bool) *SortedSequence[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &SortedSequence[T]{
		items: make([]T, 0, capacity),
		limit: capacity,
		less:  less,
	}
}

// Insert places v at its sorted position. Returns false if the sequence
// is full.
func (s *SortedSequence[T]) Insert(v T) bool {
	if len(s.items) >= s.limit {
		return false
	}
	// First position whose element sorts after v; equal elements stay left.
	i := sort.Search(len(s.items), func(i int) bool {
		return s.less(v, s.items[i])
	})
	s.items = append(s.items, v)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
	return true
}

// Remove deletes the first item for which match returns true, preserving
// order. Returns false if no item matched.
func (s *SortedSequence[T]) Remove(match func(T) bool) bool {
	for i, v := range s.items {
		if match(v) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// At returns the item at position i in ascending order.
// The position must be in [0, Len()).
func (s *SortedSequence[T]) At(i int) T { return s.items[i] }

// Len returns the number of items currently held.
func (s *SortedSequence[T]) Len() int { return len(s.items) }

// Cap returns the fixed capacity.
func (s *SortedSequence[T]) Cap() int { return s.limit }

// IsEmpty reports whether the sequence holds no items.
func (s *SortedSequence[T]) IsEmpty() bool { return len(s.items) == 0 }

// Each calls fn for every item in ascending order.
func (s *SortedSequence[T]) Each(fn func(T)) {
	for _, v := range s.items {
		fn(v)
	}
}
