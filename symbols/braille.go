package symbols

// The Unicode braille block treats each character cell as a 2-wide by
// 4-tall grid of dots. A cell's codepoint is BrailleBase plus the OR of
// the bits for every raised dot.

// BrailleBase is the first codepoint of the braille pattern block (the
// blank pattern U+2800).
const BrailleBase = 0x2800

// BrailleCellWidth and BrailleCellHeight are the dot dimensions of one
// character cell.
const (
	BrailleCellWidth  = 2
	BrailleCellHeight = 4
)

// BrailleDotBits maps a dot position within a cell to its pattern bit,
// indexed [row][column]. The braille block numbers dots column-major for
// the first six and appends the bottom row, which is why the bottom-row
// bits jump to 0x40/0x80.
var BrailleDotBits = [BrailleCellHeight][BrailleCellWidth]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}
