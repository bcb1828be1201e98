package layout

import (
	"fmt"

	"tuipie/core"
	"tuipie/geometry"

	"github.com/mattn/go-runewidth"
)

// Usability floors: below these outer dimensions a legend only crowds the
// disc, so it is suppressed and the pie takes the whole area.
const (
	minOuterWidth  = 20
	minOuterHeight = 10
)

const (
	minVerticalLegendWidth = 20
	horizontalStripHeight  = 3
	legendSpacing          = 1 // gap between pie and legend strip
	legendPadding          = 2 // measurement padding for vertical items
)

// Options carries the configuration the layout engine needs. Marker and
// ShowPercentages matter because legend width depends on the rendered
// item text.
type Options struct {
	ShowLegend      bool
	ShowPercentages bool
	Marker          string
	Position        LegendPosition
	Layout          LegendLayout
	Alignment       LegendAlignment
}

// ItemText formats one legend entry the way the legend renderer will draw
// it. The layout engine measures exactly this text.
func ItemText(marker, label string, percent float64, showPercent bool) string {
	if showPercent {
		return fmt.Sprintf("%s %s %.1f%%", marker, label, percent)
	}
	return fmt.Sprintf("%s %s", marker, label)
}

// itemWidth is the display width of one entry plus the two trailing
// spaces that separate entries in a horizontal row.
func itemWidth(opts Options, slices core.SliceSet, i int) int {
	text := ItemText(opts.Marker, slices[i].Label, slices.Percentage(i), opts.ShowPercentages)
	return runewidth.StringWidth(text) + 2
}

// measureVertical returns the column width needed for stacked items: the
// widest entry plus padding.
func measureVertical(opts Options, slices core.SliceSet) int {
	widest := 0
	for i := range slices {
		widest = geometry.Max(widest, itemWidth(opts, slices, i))
	}
	return widest + legendPadding
}

// measureHorizontal returns the row width needed for items laid out
// left-to-right: the sum of all entries.
func measureHorizontal(opts Options, slices core.SliceSet) int {
	sum := 0
	for i := range slices {
		sum += itemWidth(opts, slices, i)
	}
	return sum
}

// GridFit returns the column count and column width for vertical items
// flowed into a top or bottom strip of the given interior width. Two
// columns are used when two fit side by side. The legend renderer calls
// this with the same width the strip was sized with, so sizing and
// painting always agree.
func GridFit(opts Options, slices core.SliceSet, width int) (cols, colWidth int) {
	colWidth = measureVertical(opts, slices)
	cols = 1
	if colWidth*2+legendPadding <= width {
		cols = 2
	}
	return cols, colWidth
}

// Compute splits the outer rectangle into a pie rectangle and a legend
// rectangle. ok is false when no legend is placed, in which case the pie
// occupies the whole outer rectangle.
//
// Only two of the eight position x layout combinations are natural
// (Right/Left+Vertical and Top/Bottom+Horizontal); the mismatched
// combinations get deliberate fallbacks instead of silent misbehavior:
// a side strip sized from the single-row width, or a top/bottom strip
// sized from a 1-or-2-column item grid. Whenever the space left for the
// pie would vanish, the legend is dropped entirely — the layout never
// produces a degenerate pie rectangle.
func Compute(outer core.Rect, opts Options, slices core.SliceSet) (pie, legend core.Rect, ok bool) {
	if !opts.ShowLegend || outer.Width < minOuterWidth || outer.Height < minOuterHeight {
		return outer, core.Rect{}, false
	}

	sideways := opts.Position == LegendRight || opts.Position == LegendLeft

	var legendWidth, legendHeight int
	if sideways {
		if opts.Layout == LegendVertical {
			legendWidth = geometry.Clamp(measureVertical(opts, slices),
				minVerticalLegendWidth, outer.Width/3)
		} else {
			// Layout/position mismatch: a single row on a side strip.
			maxWidth := geometry.Min(outer.Width*4/5, 60)
			legendWidth = geometry.Min(measureHorizontal(opts, slices), maxWidth)
		}
		legendHeight = outer.Height
	} else {
		if opts.Layout == LegendHorizontal {
			legendHeight = horizontalStripHeight
		} else {
			// Layout/position mismatch: the items flow into a grid of one
			// or two columns and the strip takes the grid's height, within
			// reason. The strip interior is two cells narrower than outer.
			cols, _ := GridFit(opts, slices, outer.Width-2)
			rows := (len(slices) + cols - 1) / cols
			legendHeight = geometry.Clamp(rows*2, 4, 9)
		}
		legendWidth = outer.Width
	}

	var strip core.Rect
	switch opts.Position {
	case LegendRight:
		pieWidth := outer.Width - legendWidth - legendSpacing
		if pieWidth <= 0 {
			return outer, core.Rect{}, false
		}
		pie = core.Rect{X: outer.X, Y: outer.Y, Width: pieWidth, Height: outer.Height}
		strip = core.Rect{X: outer.X + pieWidth + legendSpacing, Y: outer.Y,
			Width: legendWidth, Height: outer.Height}
		legend = core.Rect{X: strip.X, Y: strip.Y + 1,
			Width: strip.Width - 1, Height: strip.Height - 2}

	case LegendLeft:
		pieWidth := outer.Width - legendWidth - legendSpacing
		if pieWidth <= 0 {
			return outer, core.Rect{}, false
		}
		pie = core.Rect{X: outer.X + legendWidth + legendSpacing, Y: outer.Y,
			Width: pieWidth, Height: outer.Height}
		strip = core.Rect{X: outer.X, Y: outer.Y, Width: legendWidth, Height: outer.Height}
		legend = core.Rect{X: strip.X + 1, Y: strip.Y + 1,
			Width: strip.Width - 1, Height: strip.Height - 2}

	case LegendTop:
		pieHeight := outer.Height - legendHeight - legendSpacing
		if pieHeight <= 0 {
			return outer, core.Rect{}, false
		}
		pie = core.Rect{X: outer.X, Y: outer.Y + legendHeight + legendSpacing,
			Width: outer.Width, Height: pieHeight}
		strip = core.Rect{X: outer.X, Y: outer.Y, Width: outer.Width, Height: legendHeight}
		legend = core.Rect{X: strip.X + 1, Y: strip.Y + 1,
			Width: strip.Width - 2, Height: strip.Height - 1}

	case LegendBottom:
		pieHeight := outer.Height - legendHeight - legendSpacing
		if pieHeight <= 0 {
			return outer, core.Rect{}, false
		}
		pie = core.Rect{X: outer.X, Y: outer.Y, Width: outer.Width, Height: pieHeight}
		strip = core.Rect{X: outer.X, Y: outer.Y + pieHeight + legendSpacing,
			Width: outer.Width, Height: legendHeight}
		legend = core.Rect{X: strip.X + 1, Y: strip.Y,
			Width: strip.Width - 2, Height: strip.Height - 1}

	default:
		return outer, core.Rect{}, false
	}

	if legend.Empty() {
		return outer, core.Rect{}, false
	}
	return pie, legend, true
}
