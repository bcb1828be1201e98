package style

import (
	"tuipie/canvas"
	"tuipie/core"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Block is an optional decorative border with a title. It consumes one
// cell on every side; render the chart into Inner(area) after Draw.
type Block struct {
	Title          string
	TitleStyle     TitleStyle
	TitleAlignment TitleAlignment
	TitlePosition  TitlePosition
	Border         BorderStyle
	Color          tcell.Color
}

// Inner returns the area left for content inside the border. Areas too
// small to hold a border yield an empty rectangle.
func (b Block) Inner(area core.Rect) core.Rect {
	if area.Width < 2 || area.Height < 2 {
		return core.Rect{X: area.X, Y: area.Y}
	}
	return core.Rect{
		X:      area.X + 1,
		Y:      area.Y + 1,
		Width:  area.Width - 2,
		Height: area.Height - 2,
	}
}

// Draw renders the border and title around the area's edge.
func (b Block) Draw(c canvas.Canvas, area core.Rect) {
	if area.Width < 2 || area.Height < 2 {
		return
	}

	box := b.Border.Box()
	top := area.Y
	bottom := area.Bottom() - 1
	left := area.X
	right := area.Right() - 1

	for x := left + 1; x < right; x++ {
		c.Set(core.Point{X: x, Y: top}, box.Horizontal, b.Color)
		c.Set(core.Point{X: x, Y: bottom}, box.Horizontal, b.Color)
	}
	for y := top + 1; y < bottom; y++ {
		c.Set(core.Point{X: left, Y: y}, box.Vertical, b.Color)
		c.Set(core.Point{X: right, Y: y}, box.Vertical, b.Color)
	}
	c.Set(core.Point{X: left, Y: top}, box.TopLeft, b.Color)
	c.Set(core.Point{X: right, Y: top}, box.TopRight, b.Color)
	c.Set(core.Point{X: left, Y: bottom}, box.BottomLeft, b.Color)
	c.Set(core.Point{X: right, Y: bottom}, box.BottomRight, b.Color)

	if b.Title != "" {
		b.drawTitle(c, area)
	}
}

func (b Block) drawTitle(c canvas.Canvas, area core.Rect) {
	text := b.TitleStyle.Apply(b.Title)
	width := runewidth.StringWidth(text)

	// The title sits inside the corner cells of the border row.
	avail := area.Width - 2
	if avail <= 0 {
		return
	}

	var x int
	switch b.TitleAlignment {
	case TitleStart:
		x = area.X + 1
	case TitleEnd:
		x = area.Right() - 1 - width
	default:
		x = area.X + 1 + (avail-width)/2
	}
	if x < area.X+1 {
		x = area.X + 1
	}

	y := area.Y
	if b.TitlePosition == TitleBottom {
		y = area.Bottom() - 1
	}

	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > area.Right()-1 {
			break
		}
		c.Set(core.Point{X: x, Y: y}, r, b.Color)
		x += w
	}
}
