// Package geometry provides the angular math shared by the pie chart
// rasterizers, plus small integer helpers.
package geometry

import "math"

// SliceAngles maps a slice's cumulative start percentage and its own
// percentage to a pair of angles in radians. 0% starts at twelve o'clock
// (-π/2) and percentages sweep clockwise, so 25% is at the three o'clock
// position.
func SliceAngles(cumulativePercent, percent float64) (start, end float64) {
	start = cumulativePercent/100*2*math.Pi - math.Pi/2
	end = (cumulativePercent+percent)/100*2*math.Pi - math.Pi/2
	return start, end
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// AngleInSlice reports whether angle lies within the angular range
// [start, end]. All three are normalized first. A range whose normalized
// start exceeds its normalized end wraps past the 0/2π seam, and
// membership becomes "after start or before end" — the last slice of a
// full pie always crosses the seam, so this branch is load-bearing.
func AngleInSlice(angle, start, end float64) bool {
	a := NormalizeAngle(angle)
	s := NormalizeAngle(start)
	e := NormalizeAngle(end)

	if s <= e {
		return a >= s && a <= e
	}
	return a >= s || a <= e
}
