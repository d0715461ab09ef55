package session

import (
	"testing"
	"time"

	"github.com/danieljhkim/paintbox/internal/canvas"
	"github.com/danieljhkim/paintbox/internal/clock"
	"github.com/danieljhkim/paintbox/internal/config"
	"github.com/danieljhkim/paintbox/internal/layer"
)

func testRegistry(t *testing.T) layer.Registry {
	t.Helper()
	flat := func(c layer.Color) func(layer.Color, float64, int, int) layer.Color {
		return func(layer.Color, float64, int, int) layer.Color { return c }
	}
	reg, err := layer.NewRegistry(
		layer.NewFunc(0, "red", flat(layer.Color{R: 255})),
		layer.NewFunc(1, "blue", flat(layer.Color{B: 255})),
		layer.NewFunc(2, "clockface", func(_ layer.Color, ts float64, _, _ int) layer.Color {
			return layer.Color{R: uint8(int(ts) % 256)}
		}),
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg
}

func newTestSession(t *testing.T, style string) (*Session, *clock.FakeClock) {
	t.Helper()
	cfg := config.Default()
	cfg.Style = style
	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s, err := New(cfg, testRegistry(t), clk, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s, clk
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Style = "fresco"
	if _, err := New(cfg, testRegistry(t), nil, nil); err == nil {
		t.Error("New with a bad style should fail")
	}
}

func TestSession_DrawBrush(t *testing.T) {
	s, _ := newTestSession(t, "exclusive")
	red := s.Registry().ByName("red")

	a := s.Draw(5, 5, red)

	// Manhattan radius 2, fully inside the grid: 13 cells.
	if len(a.Steps) != 13 {
		t.Errorf("painted %d cells, want 13", len(a.Steps))
	}
	if got := s.ColorAt(5, 5); got != (layer.Color{R: 255}) {
		t.Errorf("ColorAt(5,5) = %v, want red", got)
	}
	if got := s.ColorAt(5, 7); got != (layer.Color{R: 255}) {
		t.Errorf("ColorAt(5,7) = %v, want red (distance 2)", got)
	}
	if got := s.ColorAt(5, 8); got != DefaultBase {
		t.Errorf("ColorAt(5,8) = %v, want base (distance 3)", got)
	}
}

func TestSession_DrawClipsToGrid(t *testing.T) {
	s, _ := newTestSession(t, "exclusive")
	red := s.Registry().ByName("red")

	a := s.Draw(0, 0, red)

	// Corner brush: only the in-bounds sextant remains.
	if len(a.Steps) != 6 {
		t.Errorf("painted %d cells, want 6", len(a.Steps))
	}
}

func TestSession_BrushSizing(t *testing.T) {
	s, _ := newTestSession(t, "exclusive")

	for i := 0; i < 10; i++ {
		s.BrushBigger()
	}
	if got := s.Grid().BrushSize(); got != canvas.MaxBrushSize {
		t.Errorf("BrushSize() = %d, want %d", got, canvas.MaxBrushSize)
	}
	for i := 0; i < 10; i++ {
		s.BrushSmaller()
	}
	if got := s.Grid().BrushSize(); got != canvas.MinBrushSize {
		t.Errorf("BrushSize() = %d, want %d", got, canvas.MinBrushSize)
	}

	// A zero brush paints exactly one cell.
	a := s.Draw(4, 4, s.Registry().ByName("blue"))
	if len(a.Steps) != 1 {
		t.Errorf("painted %d cells with zero brush, want 1", len(a.Steps))
	}
}

func TestSession_UndoRedo(t *testing.T) {
	s, _ := newTestSession(t, "exclusive")
	red := s.Registry().ByName("red")

	s.Draw(3, 3, red)
	if a := s.Undo(); a == nil {
		t.Fatal("Undo() should return the undone action")
	}
	if got := s.ColorAt(3, 3); got != DefaultBase {
		t.Errorf("ColorAt(3,3) after undo = %v, want base", got)
	}

	if a := s.Redo(); a == nil {
		t.Fatal("Redo() should return the redone action")
	}
	if got := s.ColorAt(3, 3); got != (layer.Color{R: 255}) {
		t.Errorf("ColorAt(3,3) after redo = %v, want red", got)
	}

	if a := s.Redo(); a != nil {
		t.Errorf("Redo() with empty stack = %v, want nil", a)
	}
}

func TestSession_UndoEmpty(t *testing.T) {
	s, _ := newTestSession(t, "exclusive")
	if a := s.Undo(); a != nil {
		t.Errorf("Undo() on fresh session = %v, want nil", a)
	}
}

func TestSession_SpecialInverts(t *testing.T) {
	s, _ := newTestSession(t, "exclusive")

	s.Special()
	if got := s.ColorAt(0, 0); got != layer.Invert(DefaultBase) {
		t.Errorf("ColorAt(0,0) after special = %v, want inverted base", got)
	}

	s.Undo()
	if got := s.ColorAt(0, 0); got != DefaultBase {
		t.Errorf("ColorAt(0,0) after undoing special = %v, want base", got)
	}
}

func TestSession_ReplayIncludesUndo(t *testing.T) {
	s, _ := newTestSession(t, "exclusive")
	red := s.Registry().ByName("red")

	s.Draw(2, 2, red)
	s.Undo()

	s.StartReplay()
	if s.StepReplay() {
		t.Fatal("step 1 should play the draw")
	}
	if got := s.ColorAt(2, 2); got != (layer.Color{R: 255}) {
		t.Errorf("ColorAt(2,2) mid-replay = %v, want red", got)
	}
	if s.StepReplay() {
		t.Fatal("step 2 should play the undo")
	}
	if got := s.ColorAt(2, 2); got != DefaultBase {
		t.Errorf("ColorAt(2,2) after replayed undo = %v, want base", got)
	}
	if !s.StepReplay() {
		t.Error("step 3 should report nothing happened")
	}
}

func TestSession_Timestamp(t *testing.T) {
	s, clk := newTestSession(t, "exclusive")

	clk.Advance(42 * time.Second)
	if got := s.Timestamp(); got != 42 {
		t.Errorf("Timestamp() = %v, want 42", got)
	}

	// The timestamp reaches the layer transform.
	s.Draw(1, 1, s.Registry().ByName("clockface"))
	if got := s.ColorAt(1, 1); got != (layer.Color{R: 42}) {
		t.Errorf("ColorAt(1,1) = %v, want R=42", got)
	}
}

func TestSession_SetBase(t *testing.T) {
	s, _ := newTestSession(t, "exclusive")
	s.SetBase(layer.Color{R: 1, G: 2, B: 3})
	if got := s.ColorAt(0, 0); got != (layer.Color{R: 1, G: 2, B: 3}) {
		t.Errorf("ColorAt(0,0) = %v, want the new base", got)
	}
}
