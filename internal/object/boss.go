package object

import (
	"math"
	"time"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/physics"
	"github.com/tomz197/skyraid/internal/rng"
)

// Boss movement tuning.
const (
	hoverDrift     = 0.08 // fraction of canvas width
	hoverFreq      = 1.5  // rad/s
	zigzagFreq     = 0.9  // rad/s
	zigzagBob      = 30.0 // units above spawn height
	zigzagBobFreq  = 1.3  // rad/s
	bossTrackSpeed = 2.0  // horizontal tracking speed, multiple of Speed
)

// BossState is the phase cycle of a boss enemy.
type BossState struct {
	Phases      []config.PhaseTemplate
	PhaseIndex  int
	PhaseTimer  time.Duration
	Age         float64 // seconds since spawn
	SpawnHeight float64
}

// NewBoss creates a boss from t centered horizontally just above the canvas.
// spawnHeight is the y it descends to; the template's own value wins when set.
func NewBoss(name string, t config.BossTemplate, bullet config.BulletTemplate, bounds Bounds, spawnHeight float64, r *rng.Rand, jitter float64) *Enemy {
	pos := physics.Vec(bounds.Width/2, -t.Height/2)
	e := NewEnemy(name, t.EnemyTemplate, bullet, pos, r, jitter)
	if t.SpawnHeight > 0 {
		spawnHeight = t.SpawnHeight
	}
	e.Boss = &BossState{
		Phases:      t.Phases,
		SpawnHeight: spawnHeight,
	}
	return e
}

// Phase returns the active phase. A boss without phases behaves as a
// hover phase with unit multipliers.
func (b *BossState) Phase() config.PhaseTemplate {
	if len(b.Phases) == 0 {
		return config.PhaseTemplate{Movement: config.PatternHover, FireRateMultiplier: 1, BulletSpeedMultiplier: 1}
	}
	return b.Phases[b.PhaseIndex]
}

// Advance adds dt to the phase timer and moves to the next phase, wrapping
// around, once the active phase's duration is reached. It reports whether
// the phase changed.
func (b *BossState) Advance(dt time.Duration) bool {
	if len(b.Phases) == 0 {
		return false
	}
	b.PhaseTimer += dt
	d := b.Phases[b.PhaseIndex].PhaseDuration()
	if b.PhaseTimer < d {
		return false
	}
	// Keep the overshoot so the cycle does not drift with the frame time.
	b.PhaseTimer -= d
	b.PhaseIndex = (b.PhaseIndex + 1) % len(b.Phases)
	return true
}

func (e *Enemy) updateBoss(ctx UpdateContext) {
	b := e.Boss
	dt := ctx.dt()
	b.Age += dt
	b.Advance(ctx.Delta)

	w := ctx.Bounds.Width
	targetX := w / 2
	targetY := b.SpawnHeight
	switch b.Phase().Movement {
	case config.PatternZigzag:
		targetX += (w - e.Width) / 2 * math.Sin(b.Age*zigzagFreq)
		targetY -= zigzagBob * (0.5 - 0.5*math.Cos(b.Age*zigzagBobFreq))
	default:
		targetX += w * hoverDrift * math.Sin(b.Age*hoverFreq)
	}

	e.Pos.X = approach(e.Pos.X, targetX, e.Speed*bossTrackSpeed*dt)
	e.Pos.X = physics.Clamp(e.Pos.X, e.Width/2, w-e.Width/2)
	e.Pos.Y = approach(e.Pos.Y, targetY, e.Speed*dt)
	e.Pos.Y = min(e.Pos.Y, b.SpawnHeight)
}
