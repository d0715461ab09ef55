// Package containers provides the small fixed-capacity collections used
// by the layer stores and history trackers.
//
// Every container in this package has a static capacity chosen at
// construction. Writes past capacity are rejected with a false return;
// nothing here grows, evicts, or panics on overflow.
package containers

// BoundedStack is a LIFO stack with a fixed capacity.
type BoundedStack[T any] struct {
	items []T
	limit int
}

// NewBoundedStack creates a stack that holds at most capacity items.
// A non-positive capacity yields a stack that rejects every push.
func NewBoundedStack[T any](capacity int) *BoundedStack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &BoundedStack[T]{
		items: make([]T, 0, capacity),
		limit: capacity,
	}
}

// Push places v on top of the stack. Returns false if the stack is full.
func (s *BoundedStack[T]) Push(v T) bool {
	if len(s.items) >= s.limit {
		return false
	}
	s.items = append(s.items, v)
	return true
}

// Pop removes and returns the top item. The second return value is false
// when the stack is empty.
func (s *BoundedStack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Peek returns the top item without removing it.
func (s *BoundedStack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items currently held.
func (s *BoundedStack[T]) Len() int { return len(s.items) }

// Cap returns the fixed capacity.
func (s *BoundedStack[T]) Cap() int { return s.limit }

// IsEmpty reports whether the stack holds no items.
func (s *BoundedStack[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsFull reports whether another Push would be rejected.
func (s *BoundedStack[T]) IsFull() bool { return len(s.items) >= s.limit }

// Clear removes all items.
func (s *BoundedStack[T]) Clear() { s.items = s.items[:0] }
