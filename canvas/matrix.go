package canvas

import (
	"errors"
	"fmt"
	"strings"

	"tuipie/core"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrInvalidSize reports a non-positive canvas dimension.
var ErrInvalidSize = errors.New("invalid canvas size")

// MatrixCanvas implements Canvas on top of a rune matrix with a parallel
// color matrix.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - All coordinates are in character cells
//
// MatrixCanvas is NOT thread-safe for writes; synchronize externally if
// drawing from multiple goroutines. Reads are safe while no writes are in
// flight.
type MatrixCanvas struct {
	cells  [][]rune
	colors [][]tcell.Color
	width  int
	height int
}

// NewMatrixCanvas creates a canvas of the given size with every cell set
// to a space and the default color. Returns ErrInvalidSize for
// non-positive sizes.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	cells := make([][]rune, height)
	colors := make([][]tcell.Color, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]rune, width)
		colors[y] = make([]tcell.Color, width)
		for x := 0; x < width; x++ {
			cells[y][x] = ' '
			colors[y][x] = tcell.ColorDefault
		}
	}

	return &MatrixCanvas{
		cells:  cells,
		colors: colors,
		width:  width,
		height: height,
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Set places a glyph with a foreground color. Out-of-bounds writes are
// silently dropped; last write wins.
func (c *MatrixCanvas) Set(p core.Point, glyph rune, color tcell.Color) {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return
	}
	c.cells[p.Y][p.X] = glyph
	c.colors[p.Y][p.X] = color
}

// Get returns the glyph at the given position, or ' ' when out of bounds.
func (c *MatrixCanvas) Get(p core.Point) rune {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return ' '
	}
	return c.cells[p.Y][p.X]
}

// ColorAt returns the foreground color at the given position, or the
// default color when out of bounds.
func (c *MatrixCanvas) ColorAt(p core.Point) tcell.Color {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return tcell.ColorDefault
	}
	return c.colors[p.Y][p.X]
}

// Clear resets every cell to a space with the default color.
func (c *MatrixCanvas) Clear() {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.cells[y][x] = ' '
			c.colors[y][x] = tcell.ColorDefault
		}
	}
}

// DrawText renders text starting at (x, y), advancing by display width so
// wide characters occupy two cells. The cell after a wide character is
// marked with a null rune as a continuation marker. Characters outside the
// canvas are dropped.
func (c *MatrixCanvas) DrawText(x, y int, text string, color tcell.Color) {
	if y < 0 || y >= c.height {
		return
	}

	currentX := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if currentX >= c.width {
			break
		}
		if currentX >= 0 {
			if w == 2 && currentX+1 >= c.width {
				// Wide character doesn't fully fit.
				break
			}
			c.cells[y][currentX] = r
			c.colors[y][currentX] = color
			if w == 2 {
				c.cells[y][currentX+1] = '\x00'
				c.colors[y][currentX+1] = color
			}
		}
		currentX += w
	}
}

// String returns the canvas as plain text with newlines between rows.
// Continuation cells of wide characters render as nothing and null cells
// as spaces.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r := c.cells[y][x]
			if r == '\x00' {
				continue
			}
			sb.WriteRune(r)
		}
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// ColoredString returns the canvas as a string with ANSI truecolor escape
// sequences, suitable for printing straight to a terminal.
func (c *MatrixCanvas) ColoredString() string {
	const reset = "\x1b[0m"

	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		current := tcell.ColorDefault
		for x := 0; x < c.width; x++ {
			r := c.cells[y][x]
			if r == '\x00' {
				continue
			}
			color := c.colors[y][x]
			if color != current {
				if current != tcell.ColorDefault {
					sb.WriteString(reset)
				}
				if color != tcell.ColorDefault {
					sb.WriteString(ansiForeground(color))
				}
				current = color
			}
			sb.WriteRune(r)
		}
		if current != tcell.ColorDefault {
			sb.WriteString(reset)
		}
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// ansiForeground converts a tcell color to a 24-bit foreground escape.
func ansiForeground(color tcell.Color) string {
	r, g, b := color.TrueColor().RGB()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
