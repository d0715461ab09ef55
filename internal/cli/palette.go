package cli

import (
	"math"

	"github.com/danieljhkim/paintbox/internal/layer"
)

// demoRegistry is the built-in layer universe scripts can reference by
// name. It is bootstrap material for the CLI; the engine itself has no
// layer catalog.
func demoRegistry() layer.Registry {
	flat := func(c layer.Color) func(layer.Color, float64, int, int) layer.Color {
		return func(layer.Color, float64, int, int) layer.Color { return c }
	}
	reg, err := layer.NewRegistry(
		layer.NewFunc(0, "black", flat(layer.Color{})),
		layer.NewFunc(1, "red", flat(layer.Color{R: 255})),
		layer.NewFunc(2, "green", flat(layer.Color{G: 255})),
		layer.NewFunc(3, "blue", flat(layer.Color{B: 255})),
		layer.NewFunc(4, "invert", func(start layer.Color, _ float64, _, _ int) layer.Color {
			return layer.Invert(start)
		}),
		layer.NewFunc(5, "darken", func(start layer.Color, _ float64, _, _ int) layer.Color {
			return layer.Color{R: start.R / 2, G: start.G / 2, B: start.B / 2}
		}),
		layer.NewFunc(6, "pulse", func(start layer.Color, t float64, _, _ int) layer.Color {
			f := (math.Sin(t) + 1) / 2
			return layer.Color{
				R: uint8(float64(start.R) * f),
				G: uint8(float64(start.G) * f),
				B: uint8(float64(start.B) * f),
			}
		}),
	)
	if err != nil {
		panic(err) // indices above are literal and dense
	}
	return reg
}
