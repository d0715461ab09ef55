// Package session coordinates a grid with its history trackers for one
// editing run.
//
// The session is an explicit context object: it owns the grid, the undo
// tracker, and the replay tracker, and every recorded action flows
// through it. Construction and teardown are tied to the editing run, so
// nothing here is process-global.
package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/paintbox/internal/canvas"
	"github.com/danieljhkim/paintbox/internal/clock"
	"github.com/danieljhkim/paintbox/internal/config"
	"github.com/danieljhkim/paintbox/internal/history"
	"github.com/danieljhkim/paintbox/internal/layer"
)

// DefaultBase is the background color an empty cell shows.
var DefaultBase = layer.Color{R: 255, G: 255, B: 255}

// Session owns one grid plus its history for an editing run.
type Session struct {
	grid     *canvas.Grid
	registry layer.Registry
	undo     *history.UndoTracker
	replay   *history.ReplayTracker
	clk      clock.Clock
	start    time.Time
	base     layer.Color
	logger   *zap.Logger
}

// New builds a session from the configuration. A nil clk means the
// system clock; a nil logger means no logging.
func New(cfg config.Config, reg layer.Registry, clk clock.Clock, logger *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clk == nil {
		clk = &clock.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	g, err := canvas.New(canvas.Config{
		Style:            cfg.ParsedStyle(),
		Registry:         reg,
		Width:            cfg.Width,
		Height:           cfg.Height,
		AdditiveCapacity: cfg.AdditiveCapacity,
	})
	if err != nil {
		return nil, err
	}
	return &Session{
		grid:     g,
		registry: reg,
		undo:     history.NewUndoTracker(cfg.UndoDepth),
		replay:   history.NewReplayTracker(cfg.ReplayDepth),
		clk:      clk,
		start:    clk.Now(),
		base:     DefaultBase,
		logger:   logger,
	}, nil
}

// Grid returns the session's grid.
func (s *Session) Grid() *canvas.Grid { return s.grid }

// Registry returns the layer universe the session was built with.
func (s *Session) Registry() layer.Registry { return s.registry }

// Base returns the background color.
func (s *Session) Base() layer.Color { return s.base }

// SetBase changes the background color for subsequent ColorAt calls.
func (s *Session) SetBase(c layer.Color) { s.base = c }

// Timestamp returns seconds elapsed since the session started.
func (s *Session) Timestamp() float64 {
	return clock.SecondsSince(s.clk, s.start)
}

// ColorAt composes the cell at (x, y) over the background color at the
// current timestamp.
func (s *Session) ColorAt(x, y int) layer.Color {
	return s.grid.ColorAt(s.base, s.Timestamp(), x, y)
}

// brushSteps collects the cells within brush-size manhattan distance of
// (cx, cy), clipped to the grid.
func (s *Session) brushSteps(cx, cy int, l layer.Layer) []history.PaintStep {
	b := s.grid.BrushSize()
	var steps []history.PaintStep
	for x := cx - b; x <= cx+b; x++ {
		for y := cy - b; y <= cy+b; y++ {
			if abs(x-cx)+abs(y-cy) > b {
				continue
			}
			if !s.grid.InBounds(x, y) {
				continue
			}
			steps = append(steps, history.PaintStep{X: x, Y: y, Layer: l})
		}
	}
	return steps
}

// Draw applies l to every cell within the brush neighborhood of (x, y)
// and records the action for undo and replay.
func (s *Session) Draw(x, y int, l layer.Layer) *history.PaintAction {
	a := &history.PaintAction{Steps: s.brushSteps(x, y, l)}
	a.Forward(s.grid)
	s.undo.Record(a)
	s.replay.Record(a, false)
	s.logger.Debug("draw",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.String("layer", l.Name()),
		zap.Int("cells", len(a.Steps)))
	return a
}

// Erase removes l from every cell within the brush neighborhood of
// (x, y) and records the action for undo and replay.
func (s *Session) Erase(x, y int, l layer.Layer) *history.EraseAction {
	a := &history.EraseAction{Steps: s.brushSteps(x, y, l)}
	a.Forward(s.grid)
	s.undo.Record(a)
	s.replay.Record(a, false)
	s.logger.Debug("erase",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.String("layer", l.Name()),
		zap.Int("cells", len(a.Steps)))
	return a
}

// Special triggers every cell's special effect as a recorded action.
func (s *Session) Special() *history.PaintAction {
	a := &history.PaintAction{Special: true}
	a.Forward(s.grid)
	s.undo.Record(a)
	s.replay.Record(a, false)
	s.logger.Debug("special")
	return a
}

// Undo reverses the last action and records the undo for replay.
// Returns nil when there is nothing to undo.
func (s *Session) Undo() history.Action {
	a := s.undo.Undo(s.grid)
	if a == nil {
		s.logger.Debug("undo: nothing to undo")
		return nil
	}
	s.replay.Record(a, true)
	s.logger.Debug("undo")
	return a
}

// Redo re-applies the last undone action and records it for replay as a
// forward action. Returns nil when there is nothing to redo.
func (s *Session) Redo() history.Action {
	a := s.undo.Redo(s.grid)
	if a == nil {
		s.logger.Debug("redo: nothing to redo")
		return nil
	}
	s.replay.Record(a, false)
	s.logger.Debug("redo")
	return a
}

// BrushBigger grows the brush, saturating at the maximum.
func (s *Session) BrushBigger() {
	s.grid.GrowBrush()
	s.logger.Debug("brush", zap.Int("size", s.grid.BrushSize()))
}

// BrushSmaller shrinks the brush, saturating at the minimum.
func (s *Session) BrushSmaller() {
	s.grid.ShrinkBrush()
	s.logger.Debug("brush", zap.Int("size", s.grid.BrushSize()))
}

// StartReplay switches the replay tracker into playback mode.
func (s *Session) StartReplay() {
	s.replay.StartReplay()
	s.logger.Debug("replay: start")
}

// StepReplay plays one recorded action. Returns true when nothing
// happened and playback is over.
func (s *Session) StepReplay() bool {
	done := s.replay.Step(s.grid)
	if done {
		s.logger.Debug("replay: finished")
	}
	return done
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
