package render

import (
	"math"

	"tuipie/canvas"
	"tuipie/core"
	"tuipie/geometry"
)

// paintStandard scan-fills the disc one glyph per cell. Terminal cells
// are roughly twice as tall as wide, so the vertical distance is doubled
// before the radius test and the radius is taken against min(cx, cy*2);
// without this the disc renders as an egg.
func paintStandard(c canvas.Canvas, pie core.Rect, slices core.SliceSet, glyph rune) {
	centerX := pie.Width / 2
	centerY := pie.Height / 2
	radius := geometry.Max(0, geometry.Min(centerX, centerY*2)-1)
	if radius == 0 {
		return
	}

	scanW := radius + 1
	scanH := radius/2 + 1

	cumulative := 0.0
	for i, sl := range slices {
		percent := slices.Percentage(i)
		if percent <= 0 {
			cumulative += percent
			continue
		}
		start, end := geometry.SliceAngles(cumulative, percent)
		cumulative += percent

		for dy := -scanH; dy <= scanH; dy++ {
			for dx := -scanW; dx <= scanW; dx++ {
				x := pie.X + centerX + dx
				y := pie.Y + centerY + dy
				if x < pie.X || x >= pie.Right() || y < pie.Y || y >= pie.Bottom() {
					continue
				}

				// Aspect-ratio correction: a cell step down covers
				// twice the distance of a cell step right.
				ax := float64(dx)
				ay := float64(dy * 2)
				if math.Sqrt(ax*ax+ay*ay) > float64(radius) {
					continue
				}
				if geometry.AngleInSlice(math.Atan2(ay, ax), start, end) {
					c.Set(core.Point{X: x, Y: y}, glyph, sl.Color)
				}
			}
		}
	}
}
