package containers

// BoundedQueue is a FIFO ring buffer with a fixed capacity.
//
// Each iterates the queued items oldest first without consuming them, so
// callers that fold over the contents never have to drain into a scratch
// buffer and rebuild.
type BoundedQueue[T any] struct {
	buf  []T
	head int
	size int
}

// NewBoundedQueue creates a queue that holds at most capacity items.
// A non-positive capacity yields a queue that rejects every enqueue.
func NewBoundedQueue[T any](capacity int) *BoundedQueue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &BoundedQueue[T]{buf: make([]T, capacity)}
}

// Enqueue appends v at the tail. Returns false if the queue is full.
func (q *BoundedQueue[T]) Enqueue(v T) bool {
	if q.size >= len(q.buf) {
		return false
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
	return true
}

// Dequeue removes and returns the oldest item. The second return value is
// false when the queue is empty.
func (q *BoundedQueue[T]) Dequeue() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// Front returns the oldest item without removing it.
func (q *BoundedQueue[T]) Front() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Each calls fn for every queued item, oldest first. The queue itself is
// not modified.
func (q *BoundedQueue[T]) Each(fn func(T)) {
	for i := 0; i < q.size; i++ {
		fn(q.buf[(q.head+i)%len(q.buf)])
	}
}

// Len returns the number of items currently held.
func (q *BoundedQueue[T]) Len() int { return q.size }

// Cap returns the fixed capacity.
func (q *BoundedQueue[T]) Cap() int { return len(q.buf) }

// IsEmpty reports whether the queue holds no items.
func (q *BoundedQueue[T]) IsEmpty() bool { return q.size == 0 }

// IsFull reports whether another Enqueue would be rejected.
func (q *BoundedQueue[T]) IsFull() bool { return q.size >= len(q.buf) }

// Clear removes all items.
func (q *BoundedQueue[T]) Clear() {
	var zero T
	for i := 0; i < q.size; i++ {
		q.buf[(q.head+i)%len(q.buf)] = zero
	}
	q.head = 0
	q.size = 0
}
