package object

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// SpawnResult reports what the scheduler did about the boss this frame.
type SpawnResult struct {
	Boss            *Enemy // spawned this frame
	BossUnavailable bool   // the level's boss type is not defined
}

// Scheduler releases a level's waves over time and finally its boss.
// The level configuration is never modified; pending groups are copies.
type Scheduler struct {
	data   *config.GameData
	level  config.Level
	logger *log.Logger

	levelTimer  time.Duration
	spawnTimer  time.Duration
	waveIndex   int
	pending     []config.Group
	bossSpawned bool
}

// NewScheduler creates a scheduler for data.Levels[levelIndex].
func NewScheduler(data *config.GameData, levelIndex int, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		data:   data,
		level:  data.Levels[levelIndex],
		logger: logger,
	}
}

// Update advances the level timer, triggers due waves, spawns at most one
// pending enemy and spawns the boss once every prerequisite holds.
// regularAlive is the number of living non-boss enemies and bossActive
// whether a boss is currently in play.
func (s *Scheduler) Update(ctx UpdateContext, regularAlive int, bossActive bool) SpawnResult {
	s.levelTimer += ctx.Delta

	for s.waveIndex < len(s.level.Waves) {
		w := s.level.Waves[s.waveIndex]
		if s.levelTimer < config.Seconds(w.Time) {
			break
		}
		s.pending = append(s.pending, w.Groups...)
		s.logger.Debug("wave triggered", "level", s.level.Name, "wave", s.waveIndex, "groups", len(w.Groups))
		s.waveIndex++
	}

	if len(s.pending) > 0 {
		s.spawnTimer += ctx.Delta
		g := &s.pending[0]
		if g.Count > 0 && s.spawnTimer >= config.Seconds(g.SpawnDelay) {
			if s.spawnEnemy(ctx, g.Type) {
				regularAlive++
			}
			g.Count--
			s.spawnTimer = 0
		}
		if g.Count <= 0 {
			s.pending = s.pending[1:]
			s.spawnTimer = 0
		}
	}

	if s.bossSpawned || bossActive || !s.bossReady(regularAlive) {
		return SpawnResult{}
	}
	s.bossSpawned = true

	t, ok := s.data.Boss(s.level.Boss)
	if !ok {
		s.logger.Error("unknown boss type", "level", s.level.Name, "type", s.level.Boss)
		return SpawnResult{BossUnavailable: true}
	}
	bullet, _ := s.data.Bullet(t.Bullet)
	boss := NewBoss(s.level.Boss, t, bullet, ctx.Bounds, ctx.Gameplay.BossSpawnHeight, ctx.Rand, ctx.Gameplay.FireJitter)
	if ctx.Spawner != nil {
		ctx.Spawner.SpawnEnemy(boss)
	}
	s.logger.Debug("boss spawned", "level", s.level.Name, "type", s.level.Boss)
	return SpawnResult{Boss: boss}
}

func (s *Scheduler) bossReady(regularAlive int) bool {
	return s.waveIndex >= len(s.level.Waves) &&
		len(s.pending) == 0 &&
		regularAlive == 0 &&
		s.levelTimer >= config.Seconds(s.level.Duration)
}

// spawnEnemy spawns one enemy of typ at a random x along the top edge,
// just above the canvas. It reports whether anything was spawned.
func (s *Scheduler) spawnEnemy(ctx UpdateContext, typ string) bool {
	t, ok := s.data.Enemy(typ)
	if !ok {
		s.logger.Error("unknown enemy type", "level", s.level.Name, "type", typ)
		return false
	}
	bullet, _ := s.data.Bullet(t.Bullet)

	x := ctx.Bounds.Width / 2
	if ctx.Rand != nil && ctx.Bounds.Width > t.Width {
		x = ctx.Rand.Range(t.Width/2, ctx.Bounds.Width-t.Width/2)
	}
	e := NewEnemy(typ, t, bullet, physics.Vec(x, -t.Height/2), ctx.Rand, ctx.Gameplay.FireJitter)
	if ctx.Spawner != nil {
		ctx.Spawner.SpawnEnemy(e)
	}
	s.logger.Debug("enemy spawned", "type", typ, "x", x)
	return true
}

// LevelTime returns the time elapsed in the level.
func (s *Scheduler) LevelTime() time.Duration {
	return s.levelTimer
}
