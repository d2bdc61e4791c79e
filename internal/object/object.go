// Package object holds the shooter's entities and the wave scheduler.
package object

import (
	"time"

	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/physics"
	"github.com/tomz197/skyraid/internal/rng"
)

// Vector2 is an alias for the physics package's vector type.
type Vector2 = physics.Vector2

// Spawner queues new entities during update. Queued entities join the
// world after the current pass so iteration never sees them.
type Spawner interface {
	SpawnBullet(b Bullet)
	SpawnEnemy(e *Enemy)
	SpawnParticle(p Particle)
}

// Bounds is the logical canvas size.
type Bounds struct {
	Width, Height float64
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta    time.Duration
	Input    input.State
	Bounds   Bounds
	Rand     *rng.Rand
	Spawner  Spawner
	Audio    audio.Player
	Target   Vector2 // player position, for aimed shots
	Gameplay config.Gameplay
}

func (ctx UpdateContext) dt() float64 {
	return ctx.Delta.Seconds()
}

func (ctx UpdateContext) keyDown(keys ...input.Key) bool {
	if ctx.Input == nil {
		return false
	}
	for _, k := range keys {
		if ctx.Input.IsKeyDown(k) {
			return true
		}
	}
	return false
}

func (ctx UpdateContext) play(name string) {
	if ctx.Audio != nil {
		ctx.Audio.PlayOneShot(name, ctx.Gameplay.SoundVolume)
	}
}

// ShouldRenderBlink returns true if an object with remaining protection/invincibility
// time should be rendered this frame (for blinking effect).
// Returns true always if remainingTime <= 0 (no protection).
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}

// approach moves cur toward target by at most maxDelta.
func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		return min(cur+maxDelta, target)
	}
	if cur > target {
		return max(cur-maxDelta, target)
	}
	return cur
}
