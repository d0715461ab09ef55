// Package history provides reversible paint actions and the undo/redo
// and replay trackers that re-apply them against a grid.
package history

import (
	"github.com/danieljhkim/paintbox/internal/canvas"
	"github.com/danieljhkim/paintbox/internal/layer"
)

// Action is one reversible edit batch against a grid. Forward and
// Backward must be deterministic given the grid's current state and may
// only invoke the public grid and store operations.
type Action interface {
	// Forward applies the action.
	Forward(g *canvas.Grid)

	// Backward reverses a prior Forward.
	Backward(g *canvas.Grid)
}

// PaintStep records one layer touching one cell.
type PaintStep struct {
	X, Y  int
	Layer layer.Layer
}

// PaintAction adds a batch of layers to the grid, optionally followed by
// a grid-wide special effect.
type PaintAction struct {
	Steps   []PaintStep
	Special bool
}

// Forward adds each step's layer at its cell, then triggers the special
// effect if set.
func (a *PaintAction) Forward(g *canvas.Grid) {
	for _, s := range a.Steps {
		g.Cell(s.X, s.Y).Add(s.Layer)
	}
	if a.Special {
		g.SpecialAll()
	}
}

// Backward replays the special effect, then erases the steps newest
// first.
func (a *PaintAction) Backward(g *canvas.Grid) {
	if a.Special {
		g.SpecialAll()
	}
	for i := len(a.Steps) - 1; i >= 0; i-- {
		s := a.Steps[i]
		g.Cell(s.X, s.Y).Erase(s.Layer)
	}
}

// EraseAction removes a batch of layers from the grid.
type EraseAction struct {
	Steps []PaintStep
}

// Forward erases each step's layer at its cell.
func (a *EraseAction) Forward(g *canvas.Grid) {
	for _, s := range a.Steps {
		g.Cell(s.X, s.Y).Erase(s.Layer)
	}
}

// Backward re-adds the steps newest first.
func (a *EraseAction) Backward(g *canvas.Grid) {
	for i := len(a.Steps) - 1; i >= 0; i-- {
		s := a.Steps[i]
		g.Cell(s.X, s.Y).Add(s.Layer)
	}
}
