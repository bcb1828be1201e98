// Package palette generates default slice colors for callers that don't
// assign their own.
package palette

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Default returns n visually distinct colors with hues evenly spaced
// around the HCL color wheel at fixed chroma and luminance. The output is
// deterministic: the same n always yields the same colors.
func Default(n int) []tcell.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]tcell.Color, n)
	for i := range colors {
		hue := float64(i) * 360 / float64(n)
		c := colorful.Hcl(hue, 0.5, 0.6).Clamped()
		r, g, b := c.RGB255()
		colors[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return colors
}
