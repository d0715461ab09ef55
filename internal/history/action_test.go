package history

import (
	"testing"

	"github.com/danieljhkim/paintbox/internal/canvas"
	"github.com/danieljhkim/paintbox/internal/layer"
	"github.com/danieljhkim/paintbox/internal/store"
)

// addRed adds n to the red channel without wrapping.
func addRed(index int, name string, n int) layer.Layer {
	return layer.NewFunc(index, name, func(start layer.Color, _ float64, _, _ int) layer.Color {
		v := int(start.R) + n
		if v > 255 {
			v = 255
		}
		start.R = uint8(v)
		return start
	})
}

func additiveGrid(t *testing.T, reg layer.Registry) *canvas.Grid {
	t.Helper()
	g, err := canvas.New(canvas.Config{Style: store.StyleAdditive, Registry: reg, Width: 3, Height: 3})
	if err != nil {
		t.Fatalf("canvas.New() error = %v", err)
	}
	return g
}

func TestPaintAction_ForwardBackward(t *testing.T) {
	reg := layer.Registry{addRed(0, "r", 10), addRed(1, "s", 20)}
	g := additiveGrid(t, reg)

	a := &PaintAction{Steps: []PaintStep{
		{X: 0, Y: 0, Layer: reg[0]},
		{X: 0, Y: 0, Layer: reg[1]},
		{X: 2, Y: 1, Layer: reg[0]},
	}}
	a.Forward(g)

	if got := g.ColorAt(layer.Color{}, 0, 0, 0); got.R != 30 {
		t.Errorf("ColorAt(0,0).R = %d, want 30", got.R)
	}
	if got := g.ColorAt(layer.Color{}, 0, 2, 1); got.R != 10 {
		t.Errorf("ColorAt(2,1).R = %d, want 10", got.R)
	}

	a.Backward(g)
	for _, cell := range [][2]int{{0, 0}, {2, 1}} {
		if got := g.ColorAt(layer.Color{}, 0, cell[0], cell[1]); got.R != 0 {
			t.Errorf("ColorAt(%d,%d).R = %d after backward, want 0", cell[0], cell[1], got.R)
		}
	}
}

func TestPaintAction_SpecialRoundTrip(t *testing.T) {
	g, err := canvas.New(canvas.Config{Style: store.StyleExclusive, Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("canvas.New() error = %v", err)
	}
	start := layer.Color{R: 1, G: 2, B: 3}
	before := g.ColorAt(start, 0, 0, 0)

	a := &PaintAction{Special: true}
	a.Forward(g)
	if got := g.ColorAt(start, 0, 0, 0); got != layer.Invert(before) {
		t.Errorf("ColorAt() after special = %v, want inverted", got)
	}

	a.Backward(g)
	if got := g.ColorAt(start, 0, 0, 0); got != before {
		t.Errorf("ColorAt() after backward = %v, want %v", got, before)
	}
}

func TestEraseAction_ForwardBackward(t *testing.T) {
	reg := layer.Registry{addRed(0, "r", 10)}
	g := additiveGrid(t, reg)

	g.Cell(1, 1).Add(reg[0])
	g.Cell(1, 1).Add(reg[0])

	e := &EraseAction{Steps: []PaintStep{{X: 1, Y: 1, Layer: reg[0]}}}
	e.Forward(g)
	if got := g.ColorAt(layer.Color{}, 0, 1, 1); got.R != 10 {
		t.Errorf("ColorAt().R after erase = %d, want 10", got.R)
	}

	e.Backward(g)
	if got := g.ColorAt(layer.Color{}, 0, 1, 1); got.R != 20 {
		t.Errorf("ColorAt().R after backward = %d, want 20", got.R)
	}
}
