package canvas

import (
	"errors"
	"strings"
	"testing"

	"tuipie/core"

	"github.com/gdamore/tcell/v2"
)

func mustCanvas(t *testing.T, width, height int) *MatrixCanvas {
	t.Helper()
	c, err := NewMatrixCanvas(width, height)
	if err != nil {
		t.Fatalf("NewMatrixCanvas(%d, %d): %v", width, height, err)
	}
	return c
}

func TestNewMatrixCanvas(t *testing.T) {
	c, err := NewMatrixCanvas(10, 5)
	if err != nil {
		t.Fatalf("NewMatrixCanvas(10, 5): %v", err)
	}
	w, h := c.Size()
	if w != 10 || h != 5 {
		t.Errorf("Size() = (%d, %d), want (10, 5)", w, h)
	}
}

func TestNewMatrixCanvasInvalidSize(t *testing.T) {
	for _, size := range []struct{ w, h int }{{0, 5}, {5, -1}, {-2, 0}} {
		c, err := NewMatrixCanvas(size.w, size.h)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewMatrixCanvas(%d, %d) err = %v, want ErrInvalidSize", size.w, size.h, err)
		}
		if c != nil {
			t.Errorf("NewMatrixCanvas(%d, %d) returned a canvas with the error", size.w, size.h)
		}
	}
}

func TestSetAndGet(t *testing.T) {
	c := mustCanvas(t, 10, 5)
	p := core.Point{X: 3, Y: 2}

	c.Set(p, '●', tcell.ColorRed)

	if got := c.Get(p); got != '●' {
		t.Errorf("Get(%+v) = %q, want '●'", p, got)
	}
	if got := c.ColorAt(p); got != tcell.ColorRed {
		t.Errorf("ColorAt(%+v) = %v, want red", p, got)
	}
}

func TestSetOutOfBoundsIsNoOp(t *testing.T) {
	c := mustCanvas(t, 4, 4)
	outside := []core.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 100, Y: 100}}
	for _, p := range outside {
		c.Set(p, 'x', tcell.ColorRed)
	}
	if got := c.String(); strings.ContainsRune(got, 'x') {
		t.Errorf("out-of-bounds writes leaked into the canvas:\n%s", got)
	}
}

func TestGetOutOfBounds(t *testing.T) {
	c := mustCanvas(t, 4, 4)
	if got := c.Get(core.Point{X: -1, Y: 0}); got != ' ' {
		t.Errorf("Get out of bounds = %q, want ' '", got)
	}
	if got := c.ColorAt(core.Point{X: 10, Y: 10}); got != tcell.ColorDefault {
		t.Errorf("ColorAt out of bounds = %v, want default", got)
	}
}

func TestClear(t *testing.T) {
	c := mustCanvas(t, 4, 4)
	c.Set(core.Point{X: 1, Y: 1}, '●', tcell.ColorRed)

	c.Clear()

	if got := c.Get(core.Point{X: 1, Y: 1}); got != ' ' {
		t.Errorf("after Clear, Get = %q, want ' '", got)
	}
	if got := c.ColorAt(core.Point{X: 1, Y: 1}); got != tcell.ColorDefault {
		t.Errorf("after Clear, ColorAt = %v, want default", got)
	}
}

func TestString(t *testing.T) {
	c := mustCanvas(t, 3, 2)
	c.Set(core.Point{X: 0, Y: 0}, 'a', tcell.ColorDefault)
	c.Set(core.Point{X: 2, Y: 1}, 'b', tcell.ColorDefault)

	want := "a  \n  b"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDrawText(t *testing.T) {
	c := mustCanvas(t, 10, 2)
	c.DrawText(1, 0, "hi", tcell.ColorGreen)

	if got := c.Get(core.Point{X: 1, Y: 0}); got != 'h' {
		t.Errorf("cell (1,0) = %q, want 'h'", got)
	}
	if got := c.Get(core.Point{X: 2, Y: 0}); got != 'i' {
		t.Errorf("cell (2,0) = %q, want 'i'", got)
	}
	if got := c.ColorAt(core.Point{X: 1, Y: 0}); got != tcell.ColorGreen {
		t.Errorf("cell (1,0) color = %v, want green", got)
	}
}

func TestDrawTextClipsAtEdge(t *testing.T) {
	c := mustCanvas(t, 4, 1)
	c.DrawText(2, 0, "abcdef", tcell.ColorDefault)

	want := "  ab"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDrawTextWideCharacter(t *testing.T) {
	c := mustCanvas(t, 6, 1)
	c.DrawText(0, 0, "日x", tcell.ColorDefault)

	if got := c.Get(core.Point{X: 0, Y: 0}); got != '日' {
		t.Errorf("cell (0,0) = %q, want '日'", got)
	}
	// Wide characters mark a continuation cell and push what follows.
	if got := c.Get(core.Point{X: 1, Y: 0}); got != '\x00' {
		t.Errorf("cell (1,0) = %q, want continuation marker", got)
	}
	if got := c.Get(core.Point{X: 2, Y: 0}); got != 'x' {
		t.Errorf("cell (2,0) = %q, want 'x'", got)
	}
}

func TestColoredStringContainsEscapes(t *testing.T) {
	c := mustCanvas(t, 3, 1)
	c.Set(core.Point{X: 0, Y: 0}, '●', tcell.ColorRed)

	got := c.ColoredString()
	if !strings.Contains(got, "\x1b[38;2;") {
		t.Errorf("ColoredString() missing truecolor escape: %q", got)
	}
	if !strings.Contains(got, "\x1b[0m") {
		t.Errorf("ColoredString() missing reset: %q", got)
	}
	if !strings.ContainsRune(got, '●') {
		t.Errorf("ColoredString() missing glyph: %q", got)
	}
}

func TestColoredStringNoColor(t *testing.T) {
	c := mustCanvas(t, 3, 1)
	if got := c.ColoredString(); strings.Contains(got, "\x1b[") {
		t.Errorf("uncolored canvas should emit no escapes: %q", got)
	}
}
