// Package canvas provides the paint grid: a fixed 2D array of layer
// stores plus the brush state.
package canvas

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/paintbox/internal/layer"
	"github.com/danieljhkim/paintbox/internal/store"
)

// Brush size bounds. The brush saturates at the bounds rather than
// wrapping or erroring.
const (
	DefaultBrushSize = 2
	MinBrushSize     = 0
	MaxBrushSize     = 5
)

// ErrInvalidSize reports non-positive grid dimensions.
var ErrInvalidSize = errors.New("invalid grid size")

// Config controls grid construction.
type Config struct {
	// Style selects the store variant used on every cell.
	Style store.Style

	// Registry is the layer universe, required for store.StyleToggled.
	Registry layer.Registry

	// Width and Height are the grid dimensions. Both must be positive.
	Width, Height int

	// AdditiveCapacity bounds each additive store; zero means
	// store.DefaultAdditiveCapacity.
	AdditiveCapacity int
}

// Grid is a Width x Height array of layer stores. The grid exclusively
// owns its stores; cells are only mutated through the store operations.
type Grid struct {
	style  store.Style
	width  int
	height int
	cells  [][]store.Store
	brush  int
}

// New builds a grid with one store of the configured style per cell and
// the brush at DefaultBrushSize.
func New(cfg Config) (*Grid, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	cells := make([][]store.Store, cfg.Width)
	for x := range cells {
		cells[x] = make([]store.Store, cfg.Height)
		for y := range cells[x] {
			st, err := store.New(cfg.Style, cfg.Registry, cfg.AdditiveCapacity)
			if err != nil {
				return nil, err
			}
			cells[x][y] = st
		}
	}
	return &Grid{
		style:  cfg.Style,
		width:  cfg.Width,
		height: cfg.Height,
		cells:  cells,
		brush:  DefaultBrushSize,
	}, nil
}

// Cell returns the store at (x, y). Out-of-range coordinates are a
// caller bug and panic.
func (g *Grid) Cell(x, y int) store.Store {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("canvas: cell (%d, %d) out of range %dx%d", x, y, g.width, g.height))
	}
	return g.cells[x][y]
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Width returns the horizontal cell count.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical cell count.
func (g *Grid) Height() int { return g.height }

// Style returns the store style the grid was built with.
func (g *Grid) Style() store.Style { return g.style }

// BrushSize returns the current brush radius in cells.
func (g *Grid) BrushSize() int { return g.brush }

// GrowBrush increases the brush size by one, saturating at MaxBrushSize.
func (g *Grid) GrowBrush() {
	if g.brush < MaxBrushSize {
		g.brush++
	}
}

// ShrinkBrush decreases the brush size by one, saturating at
// MinBrushSize.
func (g *Grid) ShrinkBrush() {
	if g.brush > MinBrushSize {
		g.brush--
	}
}

// SpecialAll applies every cell's special effect. Cells are visited row
// by row; no cross-cell ordering is guaranteed beyond that.
func (g *Grid) SpecialAll() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.cells[x][y].Special()
		}
	}
}

// ColorAt composes the cell's layers over start.
func (g *Grid) ColorAt(start layer.Color, t float64, x, y int) layer.Color {
	return g.Cell(x, y).Color(start, t, x, y)
}
