// Package layout partitions a target rectangle between the pie disc and
// an optional legend, under every combination of legend position, layout
// and alignment.
package layout

// LegendPosition is the side of the pie the legend occupies.
type LegendPosition int

const (
	// LegendRight places the legend to the right of the pie (default).
	LegendRight LegendPosition = iota
	// LegendLeft places the legend to the left of the pie.
	LegendLeft
	// LegendTop places the legend above the pie.
	LegendTop
	// LegendBottom places the legend below the pie.
	LegendBottom
)

// String returns the string representation of a LegendPosition.
func (p LegendPosition) String() string {
	switch p {
	case LegendRight:
		return "Right"
	case LegendLeft:
		return "Left"
	case LegendTop:
		return "Top"
	case LegendBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// LegendLayout is how legend items are arranged within the legend area.
type LegendLayout int

const (
	// LegendVertical stacks items in a column, one per line (default).
	LegendVertical LegendLayout = iota
	// LegendHorizontal lays items out left-to-right in a single row.
	LegendHorizontal
)

// String returns the string representation of a LegendLayout.
func (l LegendLayout) String() string {
	switch l {
	case LegendVertical:
		return "Vertical"
	case LegendHorizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// LegendAlignment is how legend items align within their allocated space:
// vertical items within their column, the horizontal row within its strip.
type LegendAlignment int

const (
	// AlignLeft starts items at the left edge (default).
	AlignLeft LegendAlignment = iota
	// AlignCenter centers items within the legend area.
	AlignCenter
	// AlignRight aligns items to the right edge.
	AlignRight
)

// String returns the string representation of a LegendAlignment.
func (a LegendAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}
