package object

import "github.com/tomz197/skyraid/internal/physics"

// GameObject is the positioned, sized part shared by every collidable entity.
// Pos is the center of the bounding box.
type GameObject struct {
	Pos    Vector2
	Width  float64
	Height float64
	Image  string
}

// Collides reports whether the two bounding boxes overlap. It is symmetric.
func (g GameObject) Collides(other GameObject) bool {
	return physics.BoxesOverlap(g.Pos.X, g.Pos.Y, g.Width, g.Height, other.Pos.X, other.Pos.Y, other.Width, other.Height)
}

// clampInto keeps the box fully inside b.
func (g *GameObject) clampInto(b Bounds) {
	g.Pos.X = physics.Clamp(g.Pos.X, g.Width/2, b.Width-g.Width/2)
	g.Pos.Y = physics.Clamp(g.Pos.Y, g.Height/2, b.Height-g.Height/2)
}
