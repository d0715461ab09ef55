// Package layer defines the color transform consumed by the stores.
//
// A layer is an immutable named transform over RGB colors. The stores
// never own a layer's lifetime; they only reference which layers are
// currently in play. The concrete transform catalog lives with the
// caller (tooling, tests), not here.
package layer

import (
	"errors"
	"fmt"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Invert returns the component-wise inverse of c.
func Invert(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Layer is an immutable named color transform.
//
// Implementations must be pure: Apply may not mutate state or depend on
// anything besides its arguments.
type Layer interface {
	// Apply transforms start for the cell at (x, y), t seconds into the
	// session.
	Apply(start Color, t float64, x, y int) Color

	// Index is the layer's stable identity, 0-based. Two layers are the
	// same layer iff their indices are equal.
	Index() int

	// Name is the layer's display name, used for lexicographic ordering.
	Name() string
}

// Same reports whether a and b are the same layer, by index. Either side
// may be nil.
func Same(a, b Layer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Index() == b.Index()
}

// Func is a Layer backed by a plain transform function.
type Func struct {
	index int
	name  string
	fn    func(Color, float64, int, int) Color
}

// NewFunc builds a layer from a transform function.
func NewFunc(index int, name string, fn func(start Color, t float64, x, y int) Color) *Func {
	return &Func{index: index, name: name, fn: fn}
}

// Apply invokes the wrapped transform.
func (f *Func) Apply(start Color, t float64, x, y int) Color {
	return f.fn(start, t, x, y)
}

// Index returns the layer's stable identity.
func (f *Func) Index() int { return f.index }

// Name returns the layer's display name.
func (f *Func) Name() string { return f.name }

// ErrBadRegistry reports a registry whose layers are not densely indexed.
var ErrBadRegistry = errors.New("registry indices must match positions")

// Registry is the ordered universe of known layers, indexable by Index.
// It is shared, read-only, and stable for the process lifetime.
type Registry []Layer

// NewRegistry validates that each layer sits at the position named by its
// index.
func NewRegistry(layers ...Layer) (Registry, error) {
	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("%w: nil layer at %d", ErrBadRegistry, i)
		}
		if l.Index() != i {
			return nil, fmt.Errorf("%w: layer %q has index %d at position %d", ErrBadRegistry, l.Name(), l.Index(), i)
		}
	}
	return Registry(layers), nil
}

// ByName returns the first layer with the given name, or nil.
func (r Registry) ByName(name string) Layer {
	for _, l := range r {
		if l.Name() == name {
			return l
		}
	}
	return nil
}
