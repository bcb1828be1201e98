package render

import (
	"tuipie/canvas"
	"tuipie/core"
	"tuipie/layout"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// paintLegend draws one entry per slice inside the legend rectangle.
// Vertical layout stacks entries two rows apart (a blank row between for
// readability); on a top or bottom strip the stack flows into the one-
// or two-column grid the strip was sized for. Horizontal layout puts
// everything on the first row. Entries that don't fit are dropped, never
// clipped mid-glyph outside the rectangle.
func paintLegend(c canvas.Canvas, legend core.Rect, slices core.SliceSet, cfg Config) {
	if legend.Empty() {
		return
	}

	switch {
	case cfg.LegendLayout == layout.LegendHorizontal:
		paintLegendRow(c, legend, slices, cfg)
	case cfg.LegendPosition == layout.LegendTop || cfg.LegendPosition == layout.LegendBottom:
		paintLegendGrid(c, legend, slices, cfg)
	default:
		paintLegendColumn(c, legend, slices, cfg)
	}
}

func paintLegendColumn(c canvas.Canvas, legend core.Rect, slices core.SliceSet, cfg Config) {
	for i, sl := range slices {
		y := legend.Y + i*2
		if y >= legend.Bottom() {
			break
		}
		text := layout.ItemText(cfg.LegendMarker, sl.Label, slices.Percentage(i), cfg.ShowPercentages)
		x := alignedX(legend, runewidth.StringWidth(text), cfg.LegendAlignment)
		drawClipped(c, legend, x, y, text, sl.Color)
	}
}

// paintLegendGrid fills a top or bottom strip column by column, row
// major, using the same column fit the strip height was computed from.
func paintLegendGrid(c canvas.Canvas, legend core.Rect, slices core.SliceSet, cfg Config) {
	opts := layout.Options{ShowPercentages: cfg.ShowPercentages, Marker: cfg.LegendMarker}
	cols, colWidth := layout.GridFit(opts, slices, legend.Width)

	startX := alignedX(legend, cols*colWidth, cfg.LegendAlignment)
	for i, sl := range slices {
		y := legend.Y + (i/cols)*2
		if y >= legend.Bottom() {
			break
		}
		text := layout.ItemText(cfg.LegendMarker, sl.Label, slices.Percentage(i), cfg.ShowPercentages)
		drawClipped(c, legend, startX+(i%cols)*colWidth, y, text, sl.Color)
	}
}

func paintLegendRow(c canvas.Canvas, legend core.Rect, slices core.SliceSet, cfg Config) {
	// Entries carry two trailing spaces as separator; the whole row is
	// aligned as one unit from its combined width.
	texts := make([]string, len(slices))
	total := 0
	for i, sl := range slices {
		texts[i] = layout.ItemText(cfg.LegendMarker, sl.Label, slices.Percentage(i), cfg.ShowPercentages) + "  "
		total += runewidth.StringWidth(texts[i])
	}

	x := alignedX(legend, total, cfg.LegendAlignment)
	for i, text := range texts {
		if x >= legend.Right() {
			break
		}
		drawClipped(c, legend, x, legend.Y, text, slices[i].Color)
		x += runewidth.StringWidth(text)
	}
}

// alignedX returns the starting column for content of the given width.
func alignedX(legend core.Rect, textWidth int, align layout.LegendAlignment) int {
	switch align {
	case layout.AlignCenter:
		return legend.X + (legend.Width-textWidth)/2
	case layout.AlignRight:
		return legend.X + legend.Width - textWidth
	default:
		return legend.X
	}
}

// drawClipped writes text cell by cell, dropping anything outside the
// legend rectangle. Wide runes advance two columns and are skipped
// entirely when their second column would fall outside.
func drawClipped(c canvas.Canvas, bounds core.Rect, x, y int, text string, color tcell.Color) {
	if y < bounds.Y || y >= bounds.Bottom() {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= bounds.Right() {
			break
		}
		if x >= bounds.X && x+w <= bounds.Right() {
			c.Set(core.Point{X: x, Y: y}, r, color)
		}
		x += w
	}
}
