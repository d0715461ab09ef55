package history

import (
	"github.com/danieljhkim/paintbox/internal/canvas"
	"github.com/danieljhkim/paintbox/internal/containers"
)

// DefaultReplayDepth bounds the record queue when no explicit depth is
// configured.
const DefaultReplayDepth = 1000

type replayEntry struct {
	action Action
	isUndo bool
}

// ReplayTracker records actions as they happen and later plays them back
// one step at a time, undos included. Unlike the undo tracker, playback
// re-executes exactly what was recorded in order rather than navigating
// history.
type ReplayTracker struct {
	record    *containers.BoundedQueue[replayEntry]
	replay    *containers.BoundedQueue[replayEntry]
	depth     int
	replaying bool
}

// NewReplayTracker creates a tracker whose queues hold at most depth
// entries each. A non-positive depth means DefaultReplayDepth.
func NewReplayTracker(depth int) *ReplayTracker {
	if depth <= 0 {
		depth = DefaultReplayDepth
	}
	return &ReplayTracker{
		record: containers.NewBoundedQueue[replayEntry](depth),
		replay: containers.NewBoundedQueue[replayEntry](depth),
		depth:  depth,
	}
}

// Record appends an action to the pending recording. isUndo marks
// actions that were an undo at record time; they play back through
// Backward. When the queue is full the entry is silently dropped and
// Record returns false.
func (t *ReplayTracker) Record(a Action, isUndo bool) bool {
	return t.record.Enqueue(replayEntry{action: a, isUndo: isUndo})
}

// StartReplay switches the tracker into playback mode. No entries move
// until the first Step.
func (t *ReplayTracker) StartReplay() { t.replaying = true }

// Replaying reports whether the tracker is in playback mode.
func (t *ReplayTracker) Replaying() bool { return t.replaying }

// Step plays one recorded action against g. It returns true when nothing
// happened: either playback is not active, or both queues were empty, in
// which case playback mode ends. Otherwise exactly one entry is played
// and Step returns false.
//
// When playback catches up with an exhausted replay queue, the whole
// record queue becomes the new replay queue and a fresh record queue
// takes its place, so recordings made during playback never intermix
// with what is being played.
func (t *ReplayTracker) Step(g *canvas.Grid) bool {
	if !t.replaying {
		return true
	}
	if t.replay.IsEmpty() && t.record.IsEmpty() {
		t.replaying = false
		return true
	}
	if t.replay.IsEmpty() {
		t.replay = t.record
		t.record = containers.NewBoundedQueue[replayEntry](t.depth)
	}
	e, ok := t.replay.Dequeue()
	if !ok {
		return true
	}
	if e.isUndo {
		e.action.Backward(g)
	} else {
		e.action.Forward(g)
	}
	return false
}
