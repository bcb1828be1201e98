// Package canvas provides the cell-buffer abstraction the pie chart
// renderer draws into, plus an in-memory implementation for testing and
// ANSI string export.
package canvas

import (
	"tuipie/core"

	"github.com/gdamore/tcell/v2"
)

// Canvas is the only surface the renderer needs: a mutable 2D grid of
// character cells with foreground colors. Implementations must treat
// out-of-bounds writes as no-ops; the renderer additionally clips every
// write against the rectangle it was given.
type Canvas interface {
	// Set places a glyph with a foreground color at the given position.
	// Writes outside the canvas are ignored.
	Set(p core.Point, glyph rune, color tcell.Color)

	// Size returns the width and height of the canvas in cells.
	Size() (width, height int)
}
