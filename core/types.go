// Package core contains the fundamental types used throughout the tuipie
// pie chart renderer.
package core

import "github.com/gdamore/tcell/v2"

// Point represents a 2D coordinate in character cells.
type Point struct {
	X, Y int
}

// Rect represents a rectangular region of character cells.
// All layout and rasterization operate in this coordinate space.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Slice is one wedge of a pie chart: a label, a raw value, and the color
// used for every cell the wedge occupies. Values are converted to
// percentages of the set total at render time. Negative values are accepted
// without validation; they produce a reversed angular span.
type Slice struct {
	Label string
	Value float64
	Color tcell.Color
}

// SliceSet is an ordered sequence of slices. Order is draw order,
// cumulative-angle order and legend order all at once.
type SliceSet []Slice

// Total returns the sum of all slice values.
func (s SliceSet) Total() float64 {
	total := 0.0
	for _, sl := range s {
		total += sl.Value
	}
	return total
}

// Percentage returns the percentage of the set total contributed by
// slice i. Returns 0 when the total is zero or negative, never NaN.
func (s SliceSet) Percentage(i int) float64 {
	if i < 0 || i >= len(s) {
		return 0
	}
	total := s.Total()
	if total <= 0 {
		return 0
	}
	return s[i].Value / total * 100
}
