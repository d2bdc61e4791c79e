package object

import (
	"math"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/mocks"
	"github.com/tomz197/skyraid/internal/physics"
	"github.com/tomz197/skyraid/internal/rng"
)

type spawnRecorder struct {
	bullets   []Bullet
	enemies   []*Enemy
	particles []Particle
}

func (r *spawnRecorder) SpawnBullet(b Bullet)     { r.bullets = append(r.bullets, b) }
func (r *spawnRecorder) SpawnEnemy(e *Enemy)      { r.enemies = append(r.enemies, e) }
func (r *spawnRecorder) SpawnParticle(p Particle) { r.particles = append(r.particles, p) }

var (
	testBounds = Bounds{Width: 480, Height: 640}
	testBullet = config.BulletTemplate{Width: 4, Height: 12, Speed: 600, Damage: 10}
	testPlayer = config.PlayerTemplate{Width: 32, Height: 32, Health: 100, Speed: 200, FireRate: 8}
	testGrunt  = config.EnemyTemplate{Width: 32, Height: 28, Health: 10, Speed: 90, FireRate: 0.4, Score: 50}
)

func frameCtx(dt time.Duration, keys input.Keys, sp Spawner) UpdateContext {
	return UpdateContext{
		Delta:   dt,
		Input:   keys,
		Bounds:  testBounds,
		Rand:    rng.New(1),
		Spawner: sp,
		Gameplay: config.Gameplay{
			FireJitter:      0.5,
			ParticleGravity: 60,
		},
	}
}

func TestCollidesSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := func(label string) GameObject {
			return GameObject{
				Pos:    physics.Vec(rapid.Float64Range(-100, 600).Draw(t, label+"x"), rapid.Float64Range(-100, 700).Draw(t, label+"y")),
				Width:  rapid.Float64Range(0, 150).Draw(t, label+"w"),
				Height: rapid.Float64Range(0, 150).Draw(t, label+"h"),
			}
		}
		a, b := gen("a"), gen("b")
		if a.Collides(b) != b.Collides(a) {
			t.Fatalf("asymmetric: %+v %+v", a, b)
		}
	})
}

func TestPlayerHealthInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctrl := gomock.NewController(t)
		sfx := mocks.NewMockPlayer(ctrl)
		sfx.EXPECT().PlayOneShot(audio.SoundHit, gomock.Any()).AnyTimes()

		p := NewPlayer(testPlayer, testBullet, physics.Vec(240, 600))
		hits := rapid.SliceOf(rapid.Float64Range(-50, 500)).Draw(rt, "hits")
		for _, h := range hits {
			p.TakeDamage(h, sfx)
			if p.Health < 0 || p.Health > p.MaxHealth {
				rt.Fatalf("health %v outside [0, %v]", p.Health, p.MaxHealth)
			}
		}
	})
}

func TestPlayerTakeDamagePlaysHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	sfx := mocks.NewMockPlayer(ctrl)
	sfx.EXPECT().PlayOneShot(audio.SoundHit, 1.0).Times(1)

	p := NewPlayer(testPlayer, testBullet, physics.Vec(240, 600))
	p.TakeDamage(1, sfx)
	if p.Health != 99 {
		t.Errorf("health = %v, want 99", p.Health)
	}
}

func TestPlayerFireRate(t *testing.T) {
	tests := []struct {
		rate float64
		secs float64
	}{
		{8, 1},
		{3, 2},
		{10, 0.5},
	}
	for _, tt := range tests {
		p := NewPlayer(testPlayer, testBullet, physics.Vec(240, 600))
		p.FireRate = tt.rate
		rec := &spawnRecorder{}
		frames := int(math.Round(tt.secs * 60))
		for i := 0; i < frames; i++ {
			p.Update(frameCtx(time.Second/60, input.KeysOf(input.KeySpace), rec))
		}
		want := math.Floor(tt.secs * tt.rate)
		if got := float64(len(rec.bullets)); math.Abs(got-want) > 1 {
			t.Errorf("rate %v over %vs: %v shots, want %v±1", tt.rate, tt.secs, got, want)
		}
		for _, b := range rec.bullets {
			if b.Owner != OwnerPlayer || b.Dir != physics.Vec(0, -1) {
				t.Fatalf("bad bullet %+v", b)
			}
		}
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name string
		keys input.Keys
	}{
		{"arrows", input.KeysOf(input.KeyUp, input.KeyLeft)},
		{"wasd", input.KeysOf(input.KeyW, input.KeyA)},
		{"mixed", input.KeysOf(input.KeyUp, input.KeyA)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testPlayer, testBullet, physics.Vec(240, 320))
			p.Update(frameCtx(100*time.Millisecond, tt.keys, nil))
			moved := p.Pos.DistanceTo(physics.Vec(240, 320))
			if math.Abs(moved-20) > 1e-9 {
				t.Errorf("diagonal distance = %v, want 20", moved)
			}
			if p.Pos.X >= 240 || p.Pos.Y >= 320 {
				t.Errorf("moved the wrong way: %v", p.Pos)
			}
		})
	}
}

func TestPlayerClamped(t *testing.T) {
	p := NewPlayer(testPlayer, testBullet, physics.Vec(240, 320))
	for i := 0; i < 100; i++ {
		p.Update(frameCtx(100*time.Millisecond, input.KeysOf(input.KeyRight, input.KeyDown), nil))
	}
	if p.Pos != physics.Vec(480-16, 640-16) {
		t.Errorf("pos = %v, want bottom-right corner", p.Pos)
	}
}

func TestEnemyTakeDamage(t *testing.T) {
	e := NewEnemy("grunt", testGrunt, testBullet, physics.Vec(100, 100), nil, 0)
	if e.TakeDamage(4) {
		t.Fatal("defeated by a partial hit")
	}
	if !e.TakeDamage(6) {
		t.Fatal("not defeated when health reached 0")
	}
	if e.TakeDamage(10) {
		t.Fatal("defeated twice")
	}
}

func TestEnemyFiresAtTarget(t *testing.T) {
	e := NewEnemy("grunt", testGrunt, testBullet, physics.Vec(100, 100), nil, 0)
	if e.fireCooldown != 2.5 {
		t.Fatalf("initial cooldown = %v, want 2.5", e.fireCooldown)
	}
	rec := &spawnRecorder{}
	ctx := frameCtx(100*time.Millisecond, 0, rec)
	ctx.Target = physics.Vec(400, 500)

	for i := 0; i < 26; i++ {
		e.Update(ctx)
	}
	if len(rec.bullets) != 1 {
		t.Fatalf("fired %d shots, want 1", len(rec.bullets))
	}
	b := rec.bullets[0]
	want := ctx.Target.Sub(b.Pos).Normalize()
	if b.Owner != OwnerEnemy || math.Abs(b.Dir.X-want.X) > 1e-9 || math.Abs(b.Dir.Y-want.Y) > 1e-9 {
		t.Errorf("bullet %+v not aimed at target", b)
	}
	// 1/0.4 plus up to 0.5 jitter, possibly one frame already elapsed
	if e.fireCooldown < 2.4-1e-9 || e.fireCooldown > 3.0 {
		t.Errorf("cooldown %v outside [2.4, 3.0]", e.fireCooldown)
	}
}

func TestEnemyDespawnsBelowBottom(t *testing.T) {
	e := NewEnemy("grunt", testGrunt, testBullet, physics.Vec(100, 640), nil, 0)
	e.Update(frameCtx(100*time.Millisecond, 0, nil))
	if !e.Alive {
		t.Fatal("died before leaving the canvas")
	}
	e.Pos.Y = 640 + 15
	e.Update(frameCtx(10*time.Millisecond, 0, nil))
	if e.Alive {
		t.Fatal("still alive below the canvas")
	}
}

func testBossTemplate(durations ...float64) config.BossTemplate {
	t := config.BossTemplate{
		EnemyTemplate: config.EnemyTemplate{Width: 120, Height: 80, Health: 600, Speed: 60},
		SpawnHeight:   120,
	}
	for i, d := range durations {
		mp := config.PatternHover
		if i%2 == 1 {
			mp = config.PatternZigzag
		}
		t.Phases = append(t.Phases, config.PhaseTemplate{Duration: d, Movement: mp, FireRateMultiplier: 1, BulletSpeedMultiplier: 1})
	}
	return t
}

func TestBossPhaseCycling(t *testing.T) {
	boss := NewBoss("warden", testBossTemplate(3, 2), testBullet, testBounds, 100, nil, 0)
	step := 500 * time.Millisecond

	// index after each half second for 12 seconds
	var got []int
	for i := 0; i < 24; i++ {
		boss.Update(frameCtx(step, 0, nil))
		got = append(got, boss.Boss.PhaseIndex)
	}
	want := []int{
		0, 0, 0, 0, 0, 1, // 3s
		1, 1, 1, 0, // 2s
		0, 0, 0, 0, 0, 1,
		1, 1, 1, 0,
		0, 0, 0, 0,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after %v: phase %d, want %d (%v)", time.Duration(i+1)*step, got[i], want[i], got)
		}
	}
}

func TestBossPhaseCycleKeepsTime(t *testing.T) {
	boss := NewBoss("warden", testBossTemplate(3, 2), testBullet, testBounds, 100, nil, 0)
	b := boss.Boss
	step := 16 * time.Millisecond

	// 50s is exactly ten 3s+2s cycles and a whole number of frames.
	changes := 0
	for i := 0; i < 3125; i++ {
		if b.Advance(step) {
			changes++
		}
	}
	if changes != 20 {
		t.Errorf("%d phase changes in 50s, want 20", changes)
	}
	if b.PhaseIndex != 0 || b.PhaseTimer != 0 {
		t.Errorf("after 50s: phase %d timer %v, want phase 0 timer 0", b.PhaseIndex, b.PhaseTimer)
	}
}

func TestBossMovementBounds(t *testing.T) {
	boss := NewBoss("warden", testBossTemplate(1, 1), testBullet, testBounds, 100, nil, 0)
	if !boss.IsBoss() {
		t.Fatal("boss without boss state")
	}
	for i := 0; i < 600; i++ {
		boss.Update(frameCtx(time.Second/60, 0, nil))
		if boss.Pos.Y > boss.Boss.SpawnHeight {
			t.Fatalf("frame %d: y %v above spawn height %v", i, boss.Pos.Y, boss.Boss.SpawnHeight)
		}
		if boss.Pos.X < 60 || boss.Pos.X > 420 {
			t.Fatalf("frame %d: x %v outside canvas", i, boss.Pos.X)
		}
		if !boss.Alive {
			t.Fatal("boss despawned")
		}
	}
	if boss.Pos.Y < 0 {
		t.Errorf("boss never descended: y=%v", boss.Pos.Y)
	}
}

func TestSpawnExplosion(t *testing.T) {
	rec := &spawnRecorder{}
	at := physics.Vec(50, 60)
	SpawnExplosion(at, 20, 100, 0.5, rng.New(3), rec)
	if len(rec.particles) != 20 {
		t.Fatalf("spawned %d particles, want 20", len(rec.particles))
	}
	for _, p := range rec.particles {
		if p.Pos != at || !p.Alive || p.Alpha() != 1 {
			t.Fatalf("bad particle %+v", p)
		}
	}

	p := rec.particles[0]
	ctx := frameCtx(100*time.Millisecond, 0, nil)
	vy := p.Vel.Y
	p.Update(ctx)
	if math.Abs(p.Vel.Y-(vy+6)) > 1e-9 {
		t.Errorf("gravity not applied: %v -> %v", vy, p.Vel.Y)
	}
	for i := 0; i < 10 && p.Alive; i++ {
		p.Update(ctx)
	}
	if p.Alive {
		t.Error("particle outlived its life")
	}
}

func TestBulletOffScreen(t *testing.T) {
	tests := []struct {
		pos  Vector2
		want bool
	}{
		{physics.Vec(240, 320), false},
		{physics.Vec(240, -11), false},
		{physics.Vec(240, -13), true},
		{physics.Vec(-13, 320), true},
		{physics.Vec(240, 640+13), true},
		{physics.Vec(480+11, 320), false},
	}
	for _, tt := range tests {
		b := NewBullet(testBullet, tt.pos, physics.Vec(0, -1), 1, OwnerPlayer)
		if got := b.OffScreen(testBounds); got != tt.want {
			t.Errorf("OffScreen(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestBulletMoves(t *testing.T) {
	b := NewBullet(testBullet, physics.Vec(100, 100), physics.Vec(0, -5), 0.5, OwnerPlayer)
	b.Update(frameCtx(100*time.Millisecond, 0, nil))
	if b.Pos.DistanceTo(physics.Vec(100, 70)) > 1e-9 {
		t.Errorf("pos = %v, want (100, 70)", b.Pos)
	}
}
