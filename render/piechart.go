package render

import (
	"tuipie/canvas"
	"tuipie/core"
	"tuipie/layout"
	"tuipie/palette"

	"github.com/gdamore/tcell/v2"
)

// PieChart renders a slice set as a proportionally-sized disc with an
// optional legend. A PieChart holds no render state: every call to Render
// is a pure function of the slices, the config and the target area, and
// nothing is retained afterwards.
type PieChart struct {
	Slices core.SliceSet
	Config Config
}

// New creates a PieChart over the given slices with the default config.
// Slices left at the zero color are assigned distinct palette colors.
func New(slices core.SliceSet) PieChart {
	return PieChart{Slices: withDefaultColors(slices), Config: DefaultConfig()}
}

func withDefaultColors(slices core.SliceSet) core.SliceSet {
	missing := false
	for _, s := range slices {
		if s.Color == tcell.ColorDefault {
			missing = true
			break
		}
	}
	if !missing {
		return slices
	}

	defaults := palette.Default(len(slices))
	out := make(core.SliceSet, len(slices))
	copy(out, slices)
	for i := range out {
		if out[i].Color == tcell.ColorDefault {
			out[i].Color = defaults[i]
		}
	}
	return out
}

// Render draws the chart into the given area of the canvas. Degenerate
// inputs (empty area, no slices, non-positive total) draw less rather
// than fail: a zero total still renders the legend, an empty area renders
// nothing at all. No cell outside area is ever written.
func (p PieChart) Render(c canvas.Canvas, area core.Rect) {
	if area.Empty() || len(p.Slices) == 0 {
		return
	}

	opts := layout.Options{
		ShowLegend:      p.Config.ShowLegend,
		ShowPercentages: p.Config.ShowPercentages,
		Marker:          p.Config.LegendMarker,
		Position:        p.Config.LegendPosition,
		Layout:          p.Config.LegendLayout,
		Alignment:       p.Config.LegendAlignment,
	}
	pie, legend, hasLegend := layout.Compute(area, opts, p.Slices)

	if p.Slices.Total() > 0 {
		switch p.Config.Resolution {
		case Braille:
			paintBraille(c, pie, p.Slices)
		default:
			paintStandard(c, pie, p.Slices, p.Config.PieGlyph)
		}
	}

	if hasLegend {
		paintLegend(c, legend, p.Slices, p.Config)
	}
}
