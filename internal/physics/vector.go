package physics

import "math"

// Vector2 is a 2D vector in logical canvas units. Values are copied freely;
// every operation returns a new vector.
type Vector2 struct {
	X, Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing along v.
// The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	l := v.Len()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// DistanceTo returns the distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}
