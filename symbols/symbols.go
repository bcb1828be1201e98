// Package symbols provides predefined glyphs for pie chart discs and
// legend markers, plus the braille dot tables used by the high-resolution
// rasterizer. This is pure lookup data; the renderer only ever consumes a
// configured glyph or marker value.
package symbols

// Pie chart glyphs (standard resolution draws one glyph per cell).
const (
	// PieChar is the default glyph used to draw pie chart slices.
	PieChar = '●'

	PieCharBlock         = '█'
	PieCharShade         = '▒'
	PieCharLightShade    = '░'
	PieCharDarkShade     = '▓'
	PieCharCircle        = '◉'
	PieCharSquare        = '■'
	PieCharDiamond       = '◆'
	PieCharSmallCircle   = '•'
	PieCharWhiteCircle   = '○'
	PieCharDoubleCircle  = '◎'
	PieCharSmallSquare   = '▪'
	PieCharWhiteSquare   = '□'
	PieCharWhiteDiamond  = '◇'
	PieCharStar          = '★'
	PieCharWhiteStar     = '☆'
	PieCharTriangleUp    = '▲'
	PieCharTriangleDown  = '▼'
	PieCharTriangleRight = '▶'
	PieCharTriangleLeft  = '◀'
	PieCharPlus          = '✚'
	PieCharCross         = '✖'
	PieCharHeart         = '♥'
	PieCharWhiteHeart    = '♡'
	PieCharSpade         = '♠'
	PieCharClub          = '♣'
	PieCharDot           = '·'
	PieCharHexagon       = '⬢'
	PieCharSquareBox     = '▣'
	PieCharAsterism      = '※'
	PieCharHorizontalBar = '▰'
)

// Legend markers. Markers are strings so multi-character markers like
// "-->" work as well.
const (
	// LegendMarker is the default marker for legend items.
	LegendMarker = "■"

	LegendMarkerCircle        = "●"
	LegendMarkerSquare        = "▪"
	LegendMarkerArrow         = "▶"
	LegendMarkerDiamond       = "◆"
	LegendMarkerStar          = "★"
	LegendMarkerWhiteStar     = "☆"
	LegendMarkerSmallCircle   = "•"
	LegendMarkerWhiteCircle   = "○"
	LegendMarkerTriangle      = "▲"
	LegendMarkerHeart         = "♥"
	LegendMarkerWhiteHeart    = "♡"
	LegendMarkerPlus          = "✚"
	LegendMarkerCross         = "✖"
	LegendMarkerCheck         = "✓"
	LegendMarkerRightArrow    = "→"
	LegendMarkerDoubleRight   = "»"
	LegendMarkerDash          = "–"
	LegendMarkerDot           = "·"
	LegendMarkerHexagon       = "⬡"
	LegendMarkerBullseye      = "◉"
	LegendMarkerSquareBox     = "▢"
	LegendMarkerAsterism      = "⁂"
	LegendMarkerHorizontalBar = "▱"
)
