// Package style provides decorative borders and title styling for a chart
// area. The renderer itself never draws borders; callers wrap the target
// rectangle in a Block and hand the chart its inner rectangle.
package style

// BoxStyle defines the characters used to draw a border.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// BorderStyle selects one of the predefined border character sets.
//
// Unicode has no true rounded double-line or rounded thick-line corners,
// so the mixed styles combine rounded single-line corners with double or
// thick edges.
type BorderStyle int

const (
	// BorderStandard is a single-line box (default).
	BorderStandard BorderStyle = iota
	// BorderRounded uses rounded corners with single lines.
	BorderRounded
	// BorderDashed uses dashed lines throughout.
	BorderDashed
	// BorderRoundedDashed combines rounded corners with dashed lines.
	BorderRoundedDashed
	// BorderCornerGapped leaves gaps at the corners.
	BorderCornerGapped
	// BorderRoundedCornerGapped leaves gaps at the corners of an
	// otherwise rounded box.
	BorderRoundedCornerGapped
	// BorderDoubleLine uses double lines throughout.
	BorderDoubleLine
	// BorderDoubleLineRounded mixes rounded corners with double edges.
	BorderDoubleLineRounded
	// BorderThick uses heavy lines throughout.
	BorderThick
	// BorderThickRounded mixes rounded corners with heavy edges.
	BorderThickRounded
	// BorderThickDashed uses heavy dashed lines.
	BorderThickDashed
	// BorderThickCornerGapped leaves gaps at the corners of a heavy box.
	BorderThickCornerGapped
)

var borderSets = map[BorderStyle]BoxStyle{
	BorderStandard:            {'┌', '┐', '└', '┘', '─', '│'},
	BorderRounded:             {'╭', '╮', '╰', '╯', '─', '│'},
	BorderDashed:              {'┌', '┐', '└', '┘', '┄', '┊'},
	BorderRoundedDashed:       {'╭', '╮', '╰', '╯', '┄', '┊'},
	BorderCornerGapped:        {' ', ' ', ' ', ' ', '─', '│'},
	BorderRoundedCornerGapped: {' ', ' ', ' ', ' ', '─', '│'},
	BorderDoubleLine:          {'╔', '╗', '╚', '╝', '═', '║'},
	BorderDoubleLineRounded:   {'╭', '╮', '╰', '╯', '═', '║'},
	BorderThick:               {'┏', '┓', '┗', '┛', '━', '┃'},
	BorderThickRounded:        {'╭', '╮', '╰', '╯', '━', '┃'},
	BorderThickDashed:         {'┏', '┓', '┗', '┛', '┅', '┇'},
	BorderThickCornerGapped:   {' ', ' ', ' ', ' ', '━', '┃'},
}

// Box returns the border character set for the style. Unknown styles fall
// back to the standard single-line box.
func (b BorderStyle) Box() BoxStyle {
	if set, ok := borderSets[b]; ok {
		return set
	}
	return borderSets[BorderStandard]
}
