package object

import (
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/physics"
	"github.com/tomz197/skyraid/internal/rng"
)

// Enemy is a hostile ship. Bosses are enemies with Boss set.
type Enemy struct {
	GameObject
	Type       string
	Health     float64
	MaxHealth  float64
	Speed      float64
	FireRate   float64
	ScoreValue int
	Bullet     config.BulletTemplate
	Boss       *BossState
	Alive      bool

	fireCooldown float64
}

// NewEnemy creates a live enemy of type name at pos. r and jitter seed the
// first fire cooldown; r may be nil for no jitter.
func NewEnemy(name string, t config.EnemyTemplate, bullet config.BulletTemplate, pos Vector2, r *rng.Rand, jitter float64) *Enemy {
	e := &Enemy{
		GameObject: GameObject{Pos: pos, Width: t.Width, Height: t.Height, Image: t.Image},
		Type:       name,
		Health:     t.Health,
		MaxHealth:  t.Health,
		Speed:      t.Speed,
		FireRate:   t.FireRate,
		ScoreValue: t.Score,
		Bullet:     bullet,
		Alive:      true,
	}
	e.fireCooldown = e.nextCooldown(1, r, jitter)
	return e
}

// IsBoss reports whether the enemy carries boss state.
func (e *Enemy) IsBoss() bool {
	return e.Boss != nil
}

// nextCooldown returns 1/(rate*mult) plus up to jitter extra seconds.
func (e *Enemy) nextCooldown(mult float64, r *rng.Rand, jitter float64) float64 {
	rate := e.FireRate * mult
	if rate <= 0 {
		return 0
	}
	cd := 1 / rate
	if r != nil && jitter > 0 {
		cd += r.Float64() * jitter
	}
	return cd
}

// Update moves the enemy, fires at ctx.Target when its cooldown elapses and
// marks regular enemies dead once they pass the bottom edge.
func (e *Enemy) Update(ctx UpdateContext) {
	dt := ctx.dt()

	fireMult, speedMult := 1.0, 1.0
	if e.Boss != nil {
		e.updateBoss(ctx)
		ph := e.Boss.Phase()
		fireMult, speedMult = ph.FireRateMultiplier, ph.BulletSpeedMultiplier
	} else {
		e.Pos.Y += e.Speed * dt
	}

	if e.FireRate > 0 && e.Bullet.Speed > 0 {
		e.fireCooldown -= dt
		if e.fireCooldown <= 0 {
			muzzle := physics.Vec(e.Pos.X, e.Pos.Y+e.Height/2)
			if ctx.Spawner != nil {
				ctx.Spawner.SpawnBullet(NewBullet(e.Bullet, muzzle, aimAt(muzzle, ctx.Target), speedMult, OwnerEnemy))
			}
			e.fireCooldown = e.nextCooldown(fireMult, ctx.Rand, ctx.Gameplay.FireJitter)
		}
	}

	if e.Boss == nil && e.Pos.Y-e.Height/2 > ctx.Bounds.Height {
		e.Alive = false
	}
}

// TakeDamage subtracts amount and reports whether this hit is the one that
// brought health to zero or below. Defeat side effects belong to the caller.
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.Health <= 0 {
		return false
	}
	e.Health -= amount
	return e.Health <= 0
}
