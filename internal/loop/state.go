package loop

import (
	"github.com/tomz197/skyraid/internal/object"
)

// StateKind names a game phase.
type StateKind int

const (
	StateLoading    StateKind = iota // Waiting for assets
	StateMenu                        // Title screen
	StateControls                    // Controls help, confirm starts a run
	StatePlaying                     // Active gameplay
	StateGameOver                    // Player died or data was unusable
	StateLevelClear                  // Boss defeated
	StatePaused                      // Reserved, never entered
)

var stateNames = [...]string{"loading", "menu", "controls", "playing", "game_over", "level_clear", "paused"}

func (k StateKind) String() string {
	if k >= 0 && int(k) < len(stateNames) {
		return stateNames[k]
	}
	return "unknown"
}

// state is one phase of the game together with the data only that phase needs.
type state interface {
	Kind() StateKind
}

type loadingState struct{}

type menuState struct{}

type controlsState struct{}

type playingState struct {
	*Session
}

type gameOverState struct {
	score  int
	level  int
	reason string
}

type levelClearState struct {
	*Session
}

func (loadingState) Kind() StateKind    { return StateLoading }
func (menuState) Kind() StateKind       { return StateMenu }
func (controlsState) Kind() StateKind   { return StateControls }
func (playingState) Kind() StateKind    { return StatePlaying }
func (gameOverState) Kind() StateKind   { return StateGameOver }
func (levelClearState) Kind() StateKind { return StateLevelClear }

// World holds the live entities of a level. Entities spawned during an
// update pass are queued and joined by FlushSpawned. Dead entities are
// flagged during the pass and removed by Compact.
type World struct {
	Enemies   []*object.Enemy
	Bullets   []object.Bullet
	Particles []object.Particle

	newEnemies   []*object.Enemy
	newBullets   []object.Bullet
	newParticles []object.Particle
}

// SpawnBullet queues a bullet. Implements object.Spawner.
func (w *World) SpawnBullet(b object.Bullet) {
	w.newBullets = append(w.newBullets, b)
}

// SpawnEnemy queues an enemy. Implements object.Spawner.
func (w *World) SpawnEnemy(e *object.Enemy) {
	w.newEnemies = append(w.newEnemies, e)
}

// SpawnParticle queues a particle. Implements object.Spawner.
func (w *World) SpawnParticle(p object.Particle) {
	w.newParticles = append(w.newParticles, p)
}

// FlushSpawned adds all queued entities to the world and clears the queues.
func (w *World) FlushSpawned() {
	w.Enemies = append(w.Enemies, w.newEnemies...)
	w.Bullets = append(w.Bullets, w.newBullets...)
	w.Particles = append(w.Particles, w.newParticles...)
	clear(w.newEnemies)
	w.newEnemies = w.newEnemies[:0]
	w.newBullets = w.newBullets[:0]
	w.newParticles = w.newParticles[:0]
}

// Compact removes every entity whose Alive flag is false.
func (w *World) Compact() {
	enemies := w.Enemies[:0] // reuse backing array
	for _, e := range w.Enemies {
		if e.Alive {
			enemies = append(enemies, e)
		}
	}
	clear(w.Enemies[len(enemies):])
	w.Enemies = enemies

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Alive {
			bullets = append(bullets, b)
		}
	}
	w.Bullets = bullets

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Alive {
			particles = append(particles, p)
		}
	}
	w.Particles = particles
}

// Reset drops every entity, queued ones included.
func (w *World) Reset() {
	*w = World{}
}

// RegularAlive counts living non-boss enemies.
func (w *World) RegularAlive() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive && !e.IsBoss() {
			n++
		}
	}
	return n
}

var _ object.Spawner = (*World)(nil)

// Session is one run: score, current level and everything living in it.
type Session struct {
	LevelIndex int
	Score      int
	Player     *object.Player
	World      World
	Scheduler  *object.Scheduler
	Boss       *object.Enemy // active boss, nil before it spawns and after defeat
}

// BossActive reports whether a boss is currently in play.
func (s *Session) BossActive() bool {
	return s.Boss != nil && s.Boss.Alive
}
