package store

import (
	"github.com/danieljhkim/paintbox/internal/containers"
	"github.com/danieljhkim/paintbox/internal/layer"
)

// Additive holds an insertion-ordered, bounded sequence of layers.
// Duplicates are allowed. Composition runs oldest first.
type Additive struct {
	layers *containers.BoundedQueue[layer.Layer]
}

// NewAdditive creates an empty store bounded at capacity layers.
// A non-positive capacity means DefaultAdditiveCapacity.
func NewAdditive(capacity int) *Additive {
	if capacity <= 0 {
		capacity = DefaultAdditiveCapacity
	}
	return &Additive{layers: containers.NewBoundedQueue[layer.Layer](capacity)}
}

// Add appends l as the newest layer. Returns false when the store is
// full; the store is left unchanged.
func (s *Additive) Add(l layer.Layer) bool {
	return s.layers.Enqueue(l)
}

// Erase drops the oldest layer regardless of which layer is passed.
// Returns false when the store is empty.
func (s *Additive) Erase(layer.Layer) bool {
	_, ok := s.layers.Dequeue()
	return ok
}

// Color folds the held layers over start in insertion order, oldest
// first, threading each result into the next layer. The sequence itself
// is untouched.
func (s *Additive) Color(start layer.Color, t float64, x, y int) layer.Color {
	c := start
	s.layers.Each(func(l layer.Layer) {
		c = l.Apply(c, t, x, y)
	})
	return c
}

// Special reverses the composition order in place: the oldest layer
// becomes the newest. Reversal goes through an auxiliary stack.
func (s *Additive) Special() {
	aux := containers.NewBoundedStack[layer.Layer](s.layers.Len())
	for {
		l, ok := s.layers.Dequeue()
		if !ok {
			break
		}
		aux.Push(l)
	}
	for {
		l, ok := aux.Pop()
		if !ok {
			break
		}
		s.layers.Enqueue(l)
	}
}

// Len returns the number of layers currently held.
func (s *Additive) Len() int { return s.layers.Len() }
