package store

import "github.com/danieljhkim/paintbox/internal/layer"

// Exclusive holds at most one layer plus an invert flag. All operations
// run in constant time.
type Exclusive struct {
	held   layer.Layer
	invert bool
}

// NewExclusive creates an empty, non-inverted store.
func NewExclusive() *Exclusive { return &Exclusive{} }

// Add replaces the held layer unless l is already the one held.
func (s *Exclusive) Add(l layer.Layer) bool {
	if layer.Same(l, s.held) {
		return false
	}
	s.held = l
	return true
}

// Erase empties the slot regardless of which layer is passed. Reports
// whether a layer was present.
func (s *Exclusive) Erase(layer.Layer) bool {
	had := s.held != nil
	s.held = nil
	return had
}

// Color applies the held layer, if any, then the inversion. The invert
// flag applies even when the slot is empty.
func (s *Exclusive) Color(start layer.Color, t float64, x, y int) layer.Color {
	c := start
	if s.held != nil {
		c = s.held.Apply(start, t, x, y)
	}
	if s.invert {
		c = layer.Invert(c)
	}
	return c
}

// Special toggles the invert flag.
func (s *Exclusive) Special() { s.invert = !s.invert }
