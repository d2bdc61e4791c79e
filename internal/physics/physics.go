// Package physics provides vector math and overlap tests.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// BoxesOverlap reports whether two centered axis-aligned boxes overlap.
// Each box is given by its center and full width/height. Touching edges
// do not count as overlap.
func BoxesOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return math.Abs(x1-x2)*2 < w1+w2 && math.Abs(y1-y2)*2 < h1+h2
}

// Clamp limits v to [lo, hi]. When lo > hi the midpoint is returned,
// which keeps oversized objects centered instead of jittering between bounds.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
