package render

import (
	"strings"
	"testing"

	"tuipie/canvas"
	"tuipie/core"
	"tuipie/layout"

	"github.com/gdamore/tcell/v2"
)

// legendConfig uses an ASCII marker so expected columns don't depend on
// ambiguous-width handling.
func legendConfig() Config {
	cfg := DefaultConfig()
	cfg.LegendMarker = "*"
	return cfg
}

func singleSlice() core.SliceSet {
	return core.SliceSet{{Label: "A", Value: 10, Color: tcell.ColorRed}}
}

func row(c *canvas.MatrixCanvas, y int) string {
	return strings.Split(c.String(), "\n")[y]
}

func TestLegendVerticalSpacing(t *testing.T) {
	c := newCanvas(t, 30, 10)
	legend := core.Rect{Width: 30, Height: 10}
	slices := core.SliceSet{
		{Label: "A", Value: 50, Color: tcell.ColorRed},
		{Label: "B", Value: 50, Color: tcell.ColorBlue},
	}

	paintLegend(c, legend, slices, legendConfig())

	// One entry per line, spaced two rows apart.
	if got := row(c, 0); !strings.HasPrefix(got, "* A 50.0%") {
		t.Errorf("row 0 = %q", got)
	}
	if got := row(c, 1); strings.TrimSpace(got) != "" {
		t.Errorf("row 1 should be blank, got %q", got)
	}
	if got := row(c, 2); !strings.HasPrefix(got, "* B 50.0%") {
		t.Errorf("row 2 = %q", got)
	}
}

func TestLegendVerticalTruncates(t *testing.T) {
	c := newCanvas(t, 30, 10)
	legend := core.Rect{Width: 30, Height: 3}
	slices := core.SliceSet{
		{Label: "A", Value: 25, Color: tcell.ColorRed},
		{Label: "B", Value: 25, Color: tcell.ColorRed},
		{Label: "C", Value: 25, Color: tcell.ColorRed},
		{Label: "D", Value: 25, Color: tcell.ColorRed},
	}

	paintLegend(c, legend, slices, legendConfig())

	out := c.String()
	if !strings.Contains(out, "A") || !strings.Contains(out, "B") {
		t.Errorf("first entries missing:\n%s", out)
	}
	// Rows 4 and 6 fall outside the 3-row legend.
	if strings.Contains(out, "C") || strings.Contains(out, "D") {
		t.Errorf("entries beyond the legend height were drawn:\n%s", out)
	}
}

func TestLegendVerticalAlignment(t *testing.T) {
	// "* A 100.0%" is 10 cells wide in a 20-cell legend.
	tests := []struct {
		align layout.LegendAlignment
		wantX int
	}{
		{layout.AlignLeft, 0},
		{layout.AlignCenter, 5},
		{layout.AlignRight, 10},
	}

	for _, tt := range tests {
		c := newCanvas(t, 20, 3)
		legend := core.Rect{Width: 20, Height: 3}
		cfg := legendConfig()
		cfg.LegendAlignment = tt.align

		paintLegend(c, legend, singleSlice(), cfg)

		if got := c.Get(core.Point{X: tt.wantX, Y: 0}); got != '*' {
			t.Errorf("%v: marker at column %d = %q, want '*'\n%s",
				tt.align, tt.wantX, got, c.String())
		}
	}
}

func TestLegendGridTwoColumns(t *testing.T) {
	// Vertical entries in a top strip flow into the two columns the
	// strip was sized for: third entry wraps to the second row instead
	// of falling off the bottom.
	c := newCanvas(t, 30, 4)
	legend := core.Rect{Width: 30, Height: 4}
	slices := core.SliceSet{
		{Label: "A", Value: 1, Color: tcell.ColorRed},
		{Label: "B", Value: 1, Color: tcell.ColorBlue},
		{Label: "C", Value: 1, Color: tcell.ColorGreen},
	}
	cfg := legendConfig()
	cfg.LegendPosition = layout.LegendTop

	paintLegend(c, legend, slices, cfg)

	// Column width 13: A and B share row 0, C starts column one row 2.
	markers := []core.Point{{X: 0, Y: 0}, {X: 13, Y: 0}, {X: 0, Y: 2}}
	for _, p := range markers {
		if got := c.Get(p); got != '*' {
			t.Errorf("marker at %+v = %q, want '*':\n%s", p, got, c.String())
		}
	}
	if out := row(c, 0); !strings.Contains(out, "A 33.3%") || !strings.Contains(out, "B 33.3%") {
		t.Errorf("row 0 = %q, want the first two entries", out)
	}
	if out := row(c, 2); !strings.Contains(out, "C 33.3%") {
		t.Errorf("row 2 = %q, want the third entry", out)
	}
}

func TestLegendHorizontalSingleRow(t *testing.T) {
	c := newCanvas(t, 40, 5)
	legend := core.Rect{Width: 40, Height: 5}
	slices := core.SliceSet{
		{Label: "A", Value: 50, Color: tcell.ColorRed},
		{Label: "B", Value: 50, Color: tcell.ColorBlue},
	}
	cfg := legendConfig()
	cfg.LegendLayout = layout.LegendHorizontal

	paintLegend(c, legend, slices, cfg)

	if got := row(c, 0); !strings.Contains(got, "* A 50.0%") || !strings.Contains(got, "* B 50.0%") {
		t.Errorf("row 0 = %q, want both entries", got)
	}
	for y := 1; y < 5; y++ {
		if got := strings.TrimSpace(row(c, y)); got != "" {
			t.Errorf("row %d should be empty, got %q", y, got)
		}
	}
}

func TestLegendHorizontalSkipsOverflow(t *testing.T) {
	c := newCanvas(t, 40, 2)
	legend := core.Rect{Width: 14, Height: 2}
	slices := core.SliceSet{
		{Label: "First", Value: 50, Color: tcell.ColorRed},
		{Label: "Second", Value: 50, Color: tcell.ColorBlue},
	}
	cfg := legendConfig()
	cfg.LegendLayout = layout.LegendHorizontal

	paintLegend(c, legend, slices, cfg)

	out := row(c, 0)
	if !strings.Contains(out, "First") {
		t.Errorf("first entry missing: %q", out)
	}
	// The second entry would start past the legend width.
	if strings.Contains(out, "Second") {
		t.Errorf("overflowing entry drawn: %q", out)
	}
}

func TestLegendEntryColors(t *testing.T) {
	c := newCanvas(t, 30, 5)
	legend := core.Rect{Width: 30, Height: 5}
	slices := core.SliceSet{
		{Label: "A", Value: 50, Color: tcell.ColorRed},
		{Label: "B", Value: 50, Color: tcell.ColorBlue},
	}

	paintLegend(c, legend, slices, legendConfig())

	// Marker and text share the slice color.
	if got := c.ColorAt(core.Point{X: 0, Y: 0}); got != tcell.ColorRed {
		t.Errorf("first entry color = %v, want red", got)
	}
	if got := c.ColorAt(core.Point{X: 2, Y: 0}); got != tcell.ColorRed {
		t.Errorf("first entry label color = %v, want red", got)
	}
	if got := c.ColorAt(core.Point{X: 0, Y: 2}); got != tcell.ColorBlue {
		t.Errorf("second entry color = %v, want blue", got)
	}
}

func TestLegendWithoutPercentages(t *testing.T) {
	c := newCanvas(t, 30, 3)
	legend := core.Rect{Width: 30, Height: 3}
	cfg := legendConfig()
	cfg.ShowPercentages = false

	paintLegend(c, legend, singleSlice(), cfg)

	out := row(c, 0)
	if !strings.HasPrefix(out, "* A") {
		t.Errorf("row 0 = %q", out)
	}
	if strings.Contains(out, "%") {
		t.Errorf("percentage drawn despite ShowPercentages=false: %q", out)
	}
}

func TestLegendEmptyRectIsNoOp(t *testing.T) {
	c := newCanvas(t, 10, 10)

	paintLegend(c, core.Rect{}, singleSlice(), legendConfig())

	if got := strings.TrimSpace(c.String()); got != "" {
		t.Errorf("empty legend rect produced output:\n%s", got)
	}
}
