// Package store implements the per-cell layer composition strategies.
//
// A Store decides which layers are in play for one canvas cell and in
// what order they compose. Three strategies exist:
//
//   - Exclusive: at most one layer, with an invertible output.
//   - Additive: an ordered, bounded sequence composed oldest first.
//   - Toggled: a set of registered layer kinds composed in index order.
//
// Stores are plain mutable values with no cross-cell state. Composing a
// color never changes which layers are held or their order.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danieljhkim/paintbox/internal/layer"
)

// Store composes layers into a final color for one canvas cell.
type Store interface {
	// Add makes l part of the composition. Reports whether the store
	// changed.
	Add(l layer.Layer) bool

	// Erase removes a layer according to the variant's policy. Reports
	// whether the store changed.
	Erase(l layer.Layer) bool

	// Color composes the held layers over start for the cell at (x, y),
	// t seconds into the session.
	Color(start layer.Color, t float64, x, y int) layer.Color

	// Special applies the variant's special effect.
	Special()
}

// Style selects a Store variant.
type Style uint8

const (
	// StyleExclusive stores hold a single invertible layer.
	StyleExclusive Style = iota

	// StyleAdditive stores compose an ordered bounded sequence.
	StyleAdditive

	// StyleToggled stores toggle registered layer kinds on and off.
	StyleToggled
)

// ErrUnknownStyle reports an unrecognized store style.
var ErrUnknownStyle = errors.New("unknown store style")

// String returns the style's config name.
func (s Style) String() string {
	switch s {
	case StyleExclusive:
		return "exclusive"
	case StyleAdditive:
		return "additive"
	case StyleToggled:
		return "toggled"
	default:
		return "unknown"
	}
}

// ParseStyle maps config text to a Style. Accepted names are the String
// forms plus the legacy aliases "set", "add", and "sequence".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "exclusive", "set":
		return StyleExclusive, nil
	case "additive", "add":
		return StyleAdditive, nil
	case "toggled", "sequence":
		return StyleToggled, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

// DefaultAdditiveCapacity bounds an additive store when no explicit
// capacity is configured.
const DefaultAdditiveCapacity = 100

// New builds a store of the given style. reg is the layer universe for
// StyleToggled and is ignored otherwise. additiveCap bounds a
// StyleAdditive store; a non-positive value means
// DefaultAdditiveCapacity.
func New(style Style, reg layer.Registry, additiveCap int) (Store, error) {
	switch style {
	case StyleExclusive:
		return NewExclusive(), nil
	case StyleAdditive:
		return NewAdditive(additiveCap), nil
	case StyleToggled:
		return NewToggled(reg), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, style)
	}
}
