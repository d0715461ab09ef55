package store

import (
	"github.com/danieljhkim/paintbox/internal/containers"
	"github.com/danieljhkim/paintbox/internal/layer"
)

// Toggled keeps at most one active instance of each registered layer
// kind. Composition walks the registry in ascending index order, so the
// order layers were toggled on is irrelevant to the result.
//
// Alongside the active set, the store maintains a name-ordered index of
// the active layers so the median removal in Special needs no sort.
type Toggled struct {
	reg    layer.Registry
	active *containers.BitSet
	byName *containers.SortedSequence[layer.Layer]
}

// NewToggled creates an empty store over the given layer universe.
func NewToggled(reg layer.Registry) *Toggled {
	return &Toggled{
		reg:    reg,
		active: containers.NewBitSet(len(reg)),
		byName: containers.NewSortedSequence[layer.Layer](len(reg), func(a, b layer.Layer) bool {
			if a.Name() != b.Name() {
				return a.Name() < b.Name()
			}
			return a.Index() < b.Index()
		}),
	}
}

// Add toggles l's kind on. Returns false when l is nil, outside the
// registry, or already active.
func (s *Toggled) Add(l layer.Layer) bool {
	if l == nil {
		return false
	}
	i := l.Index()
	if i < 0 || i >= s.active.Size() || s.active.Test(i) {
		return false
	}
	s.active.Set(i)
	s.byName.Insert(s.reg[i])
	return true
}

// Erase toggles l's kind off. Returns false when l is nil, outside the
// registry, or not active.
func (s *Toggled) Erase(l layer.Layer) bool {
	if l == nil {
		return false
	}
	i := l.Index()
	if i < 0 || i >= s.active.Size() || !s.active.Test(i) {
		return false
	}
	s.active.Clear(i)
	s.byName.Remove(func(v layer.Layer) bool { return v.Index() == i })
	return true
}

// Color applies every active layer in ascending registry-index order,
// threading each result into the next layer.
func (s *Toggled) Color(start layer.Color, t float64, x, y int) layer.Color {
	c := start
	for i := range s.reg {
		if s.active.Test(i) {
			c = s.reg[i].Apply(c, t, x, y)
		}
	}
	return c
}

// Special removes the active layer whose name is the median in ascending
// lexicographic order. With an even active count the lower median is
// removed. No-op on an empty active set.
func (s *Toggled) Special() {
	n := s.byName.Len()
	if n == 0 {
		return
	}
	s.Erase(s.byName.At((n - 1) / 2))
}

// Active returns the number of active layer kinds.
func (s *Toggled) Active() int { return s.active.Count() }
