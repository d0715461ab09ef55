package history

import (
	"github.com/danieljhkim/paintbox/internal/canvas"
	"github.com/danieljhkim/paintbox/internal/containers"
)

// DefaultUndoDepth bounds each history stack when no explicit depth is
// configured.
const DefaultUndoDepth = 10000

// UndoTracker keeps bounded undo and redo stacks of paint actions for
// one editing session.
type UndoTracker struct {
	undo *containers.BoundedStack[Action]
	redo *containers.BoundedStack[Action]
}

// NewUndoTracker creates a tracker whose stacks hold at most depth
// actions each. A non-positive depth means DefaultUndoDepth.
func NewUndoTracker(depth int) *UndoTracker {
	if depth <= 0 {
		depth = DefaultUndoDepth
	}
	return &UndoTracker{
		undo: containers.NewBoundedStack[Action](depth),
		redo: containers.NewBoundedStack[Action](depth),
	}
}

// Record pushes a freshly applied forward action. When the stack is full
// the action is silently dropped and Record returns false.
//
// Recording does not clear the redo stack: pending redos stay poppable
// until consumed. Callers that want fresh actions to supersede redo
// history must manage that themselves.
func (t *UndoTracker) Record(a Action) bool {
	return t.undo.Push(a)
}

// Undo reverses the most recent action against g and moves it to the
// redo stack. Returns nil when there is nothing to undo.
func (t *UndoTracker) Undo(g *canvas.Grid) Action {
	a, ok := t.undo.Pop()
	if !ok {
		return nil
	}
	a.Backward(g)
	t.redo.Push(a)
	return a
}

// Redo re-applies the most recently undone action against g. The action
// is not pushed back onto the undo stack. Returns nil when there is
// nothing to redo.
func (t *UndoTracker) Redo(g *canvas.Grid) Action {
	a, ok := t.redo.Pop()
	if !ok {
		return nil
	}
	a.Forward(g)
	return a
}

// CanUndo reports whether an action is available to undo.
func (t *UndoTracker) CanUndo() bool { return !t.undo.IsEmpty() }

// CanRedo reports whether an action is available to redo.
func (t *UndoTracker) CanRedo() bool { return !t.redo.IsEmpty() }
