package render

import (
	"math"

	"tuipie/canvas"
	"tuipie/core"
	"tuipie/geometry"
	"tuipie/symbols"
)

// paintBraille scan-fills the disc at 8x the cell resolution. Each cell
// is a 2x4 grid of dots; because cells are twice as tall as wide, dot
// spacing comes out physically uniform and no aspect-ratio correction is
// needed. Dots are first assigned to owning slices in a transient grid,
// then packed per cell into a braille codepoint colored by the slice
// owning the most dots in that cell.
func paintBraille(c canvas.Canvas, pie core.Rect, slices core.SliceSet) {
	dotsW := pie.Width * symbols.BrailleCellWidth
	dotsH := pie.Height * symbols.BrailleCellHeight
	if dotsW <= 0 || dotsH <= 0 {
		return
	}

	centerX := pie.Width / 2 * symbols.BrailleCellWidth
	centerY := pie.Height / 2 * symbols.BrailleCellHeight
	radius := geometry.Min(centerX, centerY) - 2
	if radius <= 0 {
		return
	}

	// owner[dy][dx] is the index of the slice that claimed the dot, or -1.
	owner := make([][]int, dotsH)
	for dy := range owner {
		owner[dy] = make([]int, dotsW)
		for dx := range owner[dy] {
			owner[dy][dx] = -1
		}
	}

	cumulative := 0.0
	for i := range slices {
		percent := slices.Percentage(i)
		if percent <= 0 {
			cumulative += percent
			continue
		}
		start, end := geometry.SliceAngles(cumulative, percent)
		cumulative += percent

		for dy := 0; dy < dotsH; dy++ {
			for dx := 0; dx < dotsW; dx++ {
				fx := float64(dx - centerX)
				fy := float64(dy - centerY)
				if math.Sqrt(fx*fx+fy*fy) > float64(radius) {
					continue
				}
				if geometry.AngleInSlice(math.Atan2(fy, fx), start, end) {
					owner[dy][dx] = i
				}
			}
		}
	}

	counts := make([]int, len(slices))
	for cellY := 0; cellY < pie.Height; cellY++ {
		for cellX := 0; cellX < pie.Width; cellX++ {
			pattern := 0
			for i := range counts {
				counts[i] = 0
			}
			for row := 0; row < symbols.BrailleCellHeight; row++ {
				for col := 0; col < symbols.BrailleCellWidth; col++ {
					o := owner[cellY*symbols.BrailleCellHeight+row][cellX*symbols.BrailleCellWidth+col]
					if o < 0 {
						continue
					}
					pattern |= symbols.BrailleDotBits[row][col]
					counts[o]++
				}
			}
			if pattern == 0 {
				continue
			}

			// Color the cell by the slice owning the most dots; a tie
			// goes to the earlier slice in draw order.
			best := -1
			for i, n := range counts {
				if n > 0 && (best < 0 || n > counts[best]) {
					best = i
				}
			}

			c.Set(core.Point{X: pie.X + cellX, Y: pie.Y + cellY},
				rune(symbols.BrailleBase+pattern), slices[best].Color)
		}
	}
}
