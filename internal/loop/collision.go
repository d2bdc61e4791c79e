package loop

import (
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
)

// defaultContactDamage applies when the game data leaves it unset.
const defaultContactDamage = 1.0

// resolveCollisions applies contact damage, bullet hits and off-screen
// pruning after everything has moved. Removals only set Alive flags; the
// caller compacts. It reports whether the boss was defeated this frame.
func (g *Game) resolveCollisions(sess *Session, ctx object.UpdateContext) bool {
	w := &sess.World
	p := sess.Player

	contact := g.data.Gameplay.ContactDamage
	if contact <= 0 {
		contact = defaultContactDamage
	}

	// Player vs enemies. Regular enemies die on contact, bosses survive.
	for _, e := range w.Enemies {
		if !e.Alive || !p.Collides(e.GameObject) {
			continue
		}
		p.TakeDamage(contact, g.audio)
		if !e.IsBoss() && e.TakeDamage(e.MaxHealth) {
			g.defeat(sess, e, ctx)
		}
	}

	bossDefeated := false

	// Player bullets vs enemies. Each enemy takes hits from its candidate
	// bullets in spawn order until one kills it.
	g.indexPlayerBullets(w, ctx.Bounds)
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		g.candidates = g.grid.Query(e.Pos.X, e.Pos.Y, g.candidates[:0])
		for _, i := range g.candidates {
			b := &w.Bullets[i]
			if !b.Alive || !b.Collides(e.GameObject) {
				continue
			}
			b.Alive = false
			if !e.TakeDamage(b.Damage) {
				continue
			}
			g.defeat(sess, e, ctx)
			if e.IsBoss() {
				sess.Boss = nil
				bossDefeated = true
			}
			break
		}
	}

	// Enemy bullets vs player.
	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Alive && b.Owner == object.OwnerEnemy && b.Collides(p.GameObject) {
			b.Alive = false
			p.TakeDamage(b.Damage, g.audio)
		}
	}

	for i := range w.Bullets {
		if w.Bullets[i].OffScreen(ctx.Bounds) {
			w.Bullets[i].Alive = false
		}
	}

	return bossDefeated
}

// indexPlayerBullets rebuilds the broad-phase grid from the live player
// bullets. The cell size covers the widest bullet against the widest enemy.
func (g *Game) indexPlayerBullets(w *World, b object.Bounds) {
	var bw, bh, ew, eh float64
	for i := range w.Bullets {
		if w.Bullets[i].Owner == object.OwnerPlayer {
			bw = max(bw, w.Bullets[i].Width)
			bh = max(bh, w.Bullets[i].Height)
		}
	}
	for _, e := range w.Enemies {
		ew = max(ew, e.Width)
		eh = max(eh, e.Height)
	}
	cell := max((bw+ew)/2, (bh+eh)/2, 1)

	if g.grid == nil {
		g.grid = physics.NewGrid(b.Width, b.Height, cell)
	} else {
		g.grid.Reset(b.Width, b.Height, cell)
	}
	for i := range w.Bullets {
		if w.Bullets[i].Alive && w.Bullets[i].Owner == object.OwnerPlayer {
			g.grid.Insert(w.Bullets[i].Pos.X, w.Bullets[i].Pos.Y, i)
		}
	}
}

// defeat applies the side effects of destroying e: score, explosion burst
// and explosion sound.
func (g *Game) defeat(sess *Session, e *object.Enemy, ctx object.UpdateContext) {
	e.Alive = false
	sess.Score += e.ScoreValue

	gp := g.data.Gameplay
	object.SpawnExplosion(e.Pos, gp.ExplosionParticles, gp.ExplosionSpeed, gp.ParticleLife, g.rand, ctx.Spawner)
	g.audio.PlayOneShot(audio.SoundExplosion, gp.SoundVolume)
	g.logger.Debug("enemy destroyed", "type", e.Type, "boss", e.IsBoss(), "score", sess.Score)
}
