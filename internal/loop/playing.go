package loop

import (
	"time"

	"github.com/tomz197/skyraid/internal/input"
)

// updatePlaying runs one frame of gameplay: death check, scheduler, entity
// updates, collisions, compaction, then any level transition.
func (g *Game) updatePlaying(sess *Session, dt time.Duration, keys input.Keys) {
	if sess.Player.Dead() {
		g.logger.Info("player destroyed", "score", sess.Score, "level", sess.LevelIndex)
		g.setState(gameOverState{score: sess.Score, level: sess.LevelIndex, reason: "ship destroyed"})
		return
	}

	ctx := g.updateContext(sess, dt, keys)
	w := &sess.World

	res := sess.Scheduler.Update(ctx, w.RegularAlive(), sess.BossActive())
	if res.Boss != nil {
		sess.Boss = res.Boss
		g.logger.Debug("boss incoming", "type", res.Boss.Type, "health", res.Boss.Health)
	}
	w.FlushSpawned()

	sess.Player.Update(ctx)
	ctx.Target = sess.Player.Pos

	for _, e := range w.Enemies {
		if e.Alive {
			e.Update(ctx)
		}
	}
	for i := range w.Bullets {
		if w.Bullets[i].Alive {
			w.Bullets[i].Update(ctx)
		}
	}
	for i := range w.Particles {
		if w.Particles[i].Alive {
			w.Particles[i].Update(ctx)
		}
	}
	w.FlushSpawned()

	bossDefeated := g.resolveCollisions(sess, ctx)
	w.FlushSpawned()
	w.Compact()

	switch {
	case bossDefeated:
		g.setState(levelClearState{sess})
	case res.BossUnavailable:
		g.logger.Warn("level has no usable boss, clearing", "level", sess.LevelIndex)
		g.setState(levelClearState{sess})
	}
}
