package object

import (
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// Owner says which side fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet is a straight-flying projectile.
type Bullet struct {
	GameObject
	Damage float64
	Speed  float64
	Dir    Vector2 // unit vector
	Owner  Owner
	Alive  bool
}

// NewBullet creates a live bullet from t at pos flying along dir.
// speedScale multiplies the template speed.
func NewBullet(t config.BulletTemplate, pos, dir Vector2, speedScale float64, owner Owner) Bullet {
	return Bullet{
		GameObject: GameObject{Pos: pos, Width: t.Width, Height: t.Height, Image: t.Image},
		Damage:     t.Damage,
		Speed:      t.Speed * speedScale,
		Dir:        dir.Normalize(),
		Owner:      owner,
		Alive:      true,
	}
}

// Update moves the bullet along its direction.
func (b *Bullet) Update(ctx UpdateContext) {
	b.Pos = b.Pos.Add(b.Dir.Scale(b.Speed * ctx.dt()))
}

// OffScreen reports whether the bullet has left bounds by more than its own size.
func (b *Bullet) OffScreen(bounds Bounds) bool {
	m := max(b.Width, b.Height)
	return b.Pos.X < -m || b.Pos.X > bounds.Width+m || b.Pos.Y < -m || b.Pos.Y > bounds.Height+m
}

// aimAt returns the unit direction from from to to, straight down when they coincide.
func aimAt(from, to Vector2) Vector2 {
	d := to.Sub(from)
	if d.Len() == 0 {
		return physics.Vec(0, 1)
	}
	return d.Normalize()
}
