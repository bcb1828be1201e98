// Package render rasterizes a SliceSet into terminal cells at standard
// (one glyph per cell) or braille (8 sub-cell dots per cell) resolution,
// and draws the accompanying legend.
package render

import (
	"tuipie/layout"
	"tuipie/symbols"
)

// Resolution selects the rasterizer.
type Resolution int

const (
	// Standard draws one configured glyph per cell (default).
	Standard Resolution = iota
	// Braille packs 8 sub-cell dots per cell into braille codepoints
	// for a much smoother disc.
	Braille
)

// String returns the string representation of a Resolution.
func (r Resolution) String() string {
	switch r {
	case Standard:
		return "Standard"
	case Braille:
		return "Braille"
	default:
		return "Unknown"
	}
}

// Config holds every option for one render call. It is plain data with
// named fields; construct it once (usually from DefaultConfig) and pass
// it by value. Nothing in a render call mutates it.
type Config struct {
	// Resolution selects standard or braille rasterization.
	Resolution Resolution

	// ShowLegend draws the legend when the target area is large enough.
	ShowLegend bool

	// ShowPercentages appends each slice's percentage to its legend entry.
	ShowPercentages bool

	// PieGlyph is the character drawn for disc cells in standard
	// resolution. Braille resolution computes its own codepoints.
	PieGlyph rune

	// LegendMarker prefixes each legend entry. Any string works,
	// including multi-character markers.
	LegendMarker string

	LegendPosition  layout.LegendPosition
	LegendLayout    layout.LegendLayout
	LegendAlignment layout.LegendAlignment
}

// DefaultConfig returns the documented defaults: standard resolution,
// legend and percentages on, ● disc glyph, ■ legend marker, legend on the
// right in a left-aligned vertical column.
func DefaultConfig() Config {
	return Config{
		Resolution:      Standard,
		ShowLegend:      true,
		ShowPercentages: true,
		PieGlyph:        symbols.PieChar,
		LegendMarker:    symbols.LegendMarker,
		LegendPosition:  layout.LegendRight,
		LegendLayout:    layout.LegendVertical,
		LegendAlignment: layout.AlignLeft,
	}
}
