package object

import (
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/physics"
)

// hurtFlashSeconds is how long the ship blinks after taking damage.
const hurtFlashSeconds = 0.4

// Player is the player-controlled ship.
type Player struct {
	GameObject
	Health    float64
	MaxHealth float64
	Speed     float64 // units per second
	FireRate  float64 // shots per second
	Bullet    config.BulletTemplate

	SoundVolume float64

	fireCooldown float64 // seconds until the next shot is allowed
	hurtTime     float64
}

// NewPlayer creates a ship from t at pos.
func NewPlayer(t config.PlayerTemplate, bullet config.BulletTemplate, pos Vector2) *Player {
	return &Player{
		GameObject:  GameObject{Pos: pos, Width: t.Width, Height: t.Height, Image: t.Image},
		Health:      t.Health,
		MaxHealth:   t.Health,
		Speed:       t.Speed,
		FireRate:    t.FireRate,
		Bullet:      bullet,
		SoundVolume: 1,
	}
}

// Update handles movement, clamping and shooting.
func (p *Player) Update(ctx UpdateContext) {
	dt := ctx.dt()

	var dir Vector2
	if ctx.keyDown(input.KeyLeft, input.KeyA) {
		dir.X--
	}
	if ctx.keyDown(input.KeyRight, input.KeyD) {
		dir.X++
	}
	if ctx.keyDown(input.KeyUp, input.KeyW) {
		dir.Y--
	}
	if ctx.keyDown(input.KeyDown, input.KeyS) {
		dir.Y++
	}

	// Normalized so diagonals are not faster.
	p.Pos = p.Pos.Add(dir.Normalize().Scale(p.Speed * dt))
	p.clampInto(ctx.Bounds)

	if p.hurtTime > 0 {
		p.hurtTime -= dt
	}

	p.fireCooldown -= dt
	if ctx.keyDown(input.KeySpace) && p.fireCooldown <= 0 && p.FireRate > 0 && ctx.Spawner != nil {
		p.fireCooldown = 1 / p.FireRate
		nose := physics.Vec(p.Pos.X, p.Pos.Y-p.Height/2)
		ctx.Spawner.SpawnBullet(NewBullet(p.Bullet, nose, physics.Vec(0, -1), 1, OwnerPlayer))
		ctx.play(audio.SoundShoot)
	}
}

// TakeDamage lowers health, never below zero, and plays the hit sound.
// Death is left to the caller to observe.
func (p *Player) TakeDamage(amount float64, sfx audio.Player) {
	p.Health = physics.Clamp(p.Health-amount, 0, p.MaxHealth)
	p.hurtTime = hurtFlashSeconds
	if sfx != nil {
		sfx.PlayOneShot(audio.SoundHit, p.SoundVolume)
	}
}

// Dead reports whether health has run out.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Visible reports whether the ship should be drawn this frame; it blinks
// while the hurt flash is active.
func (p *Player) Visible() bool {
	return ShouldRenderBlink(p.hurtTime, 12)
}

// ResetPosition puts the ship back at its start position and clears timers.
func (p *Player) ResetPosition(pos Vector2) {
	p.Pos = pos
	p.fireCooldown = 0
	p.hurtTime = 0
}
