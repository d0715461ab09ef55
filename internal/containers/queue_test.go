package containers

import "testing"

func TestBoundedQueue_FIFO(t *testing.T) {
	q := NewBoundedQueue[int](3)

	if !q.IsEmpty() {
		t.Error("new queue should be empty")
	}
	for i := 1; i <= 3; i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue(%d) rejected below capacity", i)
		}
	}
	if q.Enqueue(4) {
		t.Error("Enqueue beyond capacity should return false")
	}
	if !q.IsFull() {
		t.Error("queue should be full")
	}

	for want := 1; want <= 3; want++ {
		got, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue() failed, want %d", want)
		}
		if got != want {
			t.Errorf("Dequeue() = %d, want %d", got, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue() on empty queue should return false")
	}
}

func TestBoundedQueue_WrapAround(t *testing.T) {
	q := NewBoundedQueue[int](3)

	// Force the ring to wrap.
	q.Enqueue(1)
	q.Enqueue(2)
	q.Dequeue()
	q.Enqueue(3)
	q.Enqueue(4)

	want := []int{2, 3, 4}
	for _, w := range want {
		got, ok := q.Dequeue()
		if !ok || got != w {
			t.Errorf("Dequeue() = %d, %v, want %d, true", got, ok, w)
		}
	}
}

func TestBoundedQueue_Each(t *testing.T) {
	q := NewBoundedQueue[int](4)
	q.Enqueue(10)
	q.Enqueue(20)
	q.Dequeue()
	q.Enqueue(30)

	var got []int
	q.Each(func(v int) { got = append(got, v) })

	want := []int{20, 30}
	if len(got) != len(want) {
		t.Fatalf("Each visited %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each order[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if q.Len() != 2 {
		t.Errorf("Each changed Len() to %d", q.Len())
	}
	if v, ok := q.Front(); !ok || v != 20 {
		t.Errorf("Front() = %d, %v after Each, want 20, true", v, ok)
	}
}

func TestBoundedQueue_Clear(t *testing.T) {
	q := NewBoundedQueue[int](2)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()

	if !q.IsEmpty() {
		t.Error("queue should be empty after Clear")
	}
	if !q.Enqueue(5) {
		t.Error("Enqueue after Clear should succeed")
	}
	if v, _ := q.Dequeue(); v != 5 {
		t.Errorf("Dequeue() = %d after Clear, want 5", v)
	}
}

func TestBoundedQueue_ZeroCapacity(t *testing.T) {
	q := NewBoundedQueue[int](0)
	if q.Enqueue(1) {
		t.Error("Enqueue on zero-capacity queue should be rejected")
	}
}
