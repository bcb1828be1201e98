// Package terminal adapts a tcell screen to the renderer's canvas
// interface.
package terminal

import (
	"tuipie/core"

	"github.com/gdamore/tcell/v2"
)

// ScreenCanvas exposes a tcell.Screen as a canvas.Canvas. tcell performs
// its own bounds checking, so out-of-range writes are already no-ops.
type ScreenCanvas struct {
	screen tcell.Screen
}

// NewScreenCanvas wraps the given screen.
func NewScreenCanvas(screen tcell.Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: screen}
}

// Set places a glyph with a foreground color on the screen.
func (s *ScreenCanvas) Set(p core.Point, glyph rune, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	s.screen.SetContent(p.X, p.Y, glyph, nil, style)
}

// Size returns the screen dimensions in cells.
func (s *ScreenCanvas) Size() (width, height int) {
	return s.screen.Size()
}
