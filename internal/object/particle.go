package object

import (
	"math"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/rng"
)

// explosionColors is the fire palette particles are drawn from.
var explosionColors = []assets.Color{226, 220, 214, 208, 202, 196}

// fadedColor is used once a particle is nearly spent.
const fadedColor assets.Color = 240

// Particle is a short-lived visual effect. It never collides.
type Particle struct {
	Pos     Vector2
	Vel     Vector2
	Life    float64 // seconds remaining
	MaxLife float64
	Size    float64
	Color   assets.Color
	Alive   bool
}

// Alpha returns the remaining fraction of the particle's life.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return p.Life / p.MaxLife
}

// DrawColor returns the color to draw with, dimmed near the end of life.
func (p *Particle) DrawColor() assets.Color {
	if p.Alpha() < 0.25 {
		return fadedColor
	}
	return p.Color
}

// Update integrates velocity and gravity and ages the particle.
func (p *Particle) Update(ctx UpdateContext) {
	dt := ctx.dt()
	p.Vel.Y += ctx.Gameplay.ParticleGravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= dt
	if p.Life <= 0 {
		p.Alive = false
	}
}

// SpawnExplosion creates count particles in a circular burst at pos.
// Speed and lifetime vary per particle using r.
func SpawnExplosion(pos Vector2, count int, speed, lifetime float64, r *rng.Rand, spawner Spawner) {
	if spawner == nil || r == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := r.Angle()
		spd := speed * (0.5 + r.Float64())
		life := lifetime * (0.5 + r.Float64()*0.5)

		spawner.SpawnParticle(Particle{
			Pos:     pos,
			Vel:     Vector2{X: math.Cos(angle) * spd, Y: math.Sin(angle) * spd},
			Life:    life,
			MaxLife: life,
			Size:    2 + r.Float64()*3,
			Color:   explosionColors[r.Intn(len(explosionColors))],
			Alive:   true,
		})
	}
}
