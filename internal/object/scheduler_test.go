package object

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
)

func schedulerData(level config.Level) *config.GameData {
	return &config.GameData{
		Canvas:  config.Canvas{Width: 480, Height: 640},
		Bullets: map[string]config.BulletTemplate{"eb": testBullet},
		Enemies: map[string]config.EnemyTemplate{"grunt": testGrunt},
		Bosses:  map[string]config.BossTemplate{"warden": testBossTemplate(3, 2)},
		Levels:  []config.Level{level},
	}
}

func TestSchedulerWaves(t *testing.T) {
	level := config.Level{
		Name:     "test",
		Duration: 100,
		Boss:     "warden",
		Waves: []config.Wave{
			{Time: 1, Groups: []config.Group{{Type: "grunt", Count: 2, SpawnDelay: 0.5}}},
			{Time: 3, Groups: []config.Group{{Type: "grunt", Count: 1, SpawnDelay: 0}}},
		},
	}
	data := schedulerData(level)
	s := NewScheduler(data, 0, log.New(&bytes.Buffer{}))
	rec := &spawnRecorder{}

	spawnTimes := []time.Duration{}
	for i := 1; i <= 50; i++ {
		before := len(rec.enemies)
		s.Update(frameCtx(100*time.Millisecond, 0, rec), 0, false)
		if len(rec.enemies) > before {
			spawnTimes = append(spawnTimes, s.LevelTime())
		}
	}

	want := []time.Duration{1400 * time.Millisecond, 1900 * time.Millisecond, 3 * time.Second}
	if len(spawnTimes) != len(want) {
		t.Fatalf("spawned at %v, want %v", spawnTimes, want)
	}
	for i := range want {
		if spawnTimes[i] != want[i] {
			t.Errorf("spawn %d at %v, want %v", i, spawnTimes[i], want[i])
		}
	}
	for _, e := range rec.enemies {
		if e.Pos.Y != -e.Height/2 || e.Pos.X < e.Width/2 || e.Pos.X > 480-e.Width/2 {
			t.Errorf("enemy spawned at %v", e.Pos)
		}
	}
	if data.Levels[0].Waves[0].Groups[0].Count != 2 {
		t.Error("scheduler modified the level configuration")
	}
}

func TestSchedulerUnknownEnemyType(t *testing.T) {
	var buf bytes.Buffer
	level := config.Level{
		Name:     "test",
		Duration: 0,
		Boss:     "warden",
		Waves: []config.Wave{
			{Time: 0, Groups: []config.Group{
				{Type: "ghost", Count: 1, SpawnDelay: 0},
				{Type: "grunt", Count: 1, SpawnDelay: 0},
			}},
		},
	}
	s := NewScheduler(schedulerData(level), 0, log.New(&buf))
	rec := &spawnRecorder{}
	for i := 0; i < 5; i++ {
		s.Update(frameCtx(100*time.Millisecond, 0, rec), 0, false)
	}
	var regular []*Enemy
	for _, e := range rec.enemies {
		if !e.IsBoss() {
			regular = append(regular, e)
		}
	}
	if len(regular) != 1 || regular[0].Type != "grunt" {
		t.Fatalf("spawned %d regular enemies", len(regular))
	}
	if !strings.Contains(buf.String(), "ghost") {
		t.Error("unknown type not logged")
	}
}

// One wave of three grunts, one every second, level duration five seconds.
func TestSchedulerBossGating(t *testing.T) {
	level := config.Level{
		Name:     "gate",
		Duration: 5,
		Boss:     "warden",
		Waves: []config.Wave{
			{Time: 0, Groups: []config.Group{{Type: "grunt", Count: 3, SpawnDelay: 1}}},
		},
	}
	s := NewScheduler(schedulerData(level), 0, log.New(&bytes.Buffer{}))
	rec := &spawnRecorder{}

	var boss *Enemy
	alive := func() int {
		n := 0
		for _, e := range rec.enemies {
			if e.Alive && !e.IsBoss() {
				n++
			}
		}
		return n
	}
	for i := 1; i <= 49; i++ {
		res := s.Update(frameCtx(100*time.Millisecond, 0, rec), alive(), false)
		if res.Boss != nil {
			t.Fatalf("boss spawned at %v with %d grunts alive", s.LevelTime(), alive())
		}
	}
	if len(rec.enemies) != 3 {
		t.Fatalf("%d grunts spawned by 4.9s, want 3", len(rec.enemies))
	}

	// Still gated while a grunt lives past the duration.
	for i := 0; i < 5; i++ {
		if res := s.Update(frameCtx(100*time.Millisecond, 0, rec), alive(), false); res.Boss != nil {
			t.Fatal("boss spawned while a grunt is alive")
		}
	}

	for _, e := range rec.enemies {
		e.Alive = false
	}
	res := s.Update(frameCtx(100*time.Millisecond, 0, rec), alive(), false)
	boss = res.Boss
	if boss == nil || !boss.IsBoss() {
		t.Fatal("boss not spawned once every prerequisite held")
	}
	if boss.Pos.Y >= 0 {
		t.Errorf("boss spawned inside the canvas at %v", boss.Pos)
	}

	for i := 0; i < 20; i++ {
		if res := s.Update(frameCtx(100*time.Millisecond, 0, rec), 0, false); res.Boss != nil {
			t.Fatal("second boss spawned")
		}
	}
}

func TestSchedulerLastSpawnGatesBoss(t *testing.T) {
	level := config.Level{
		Name:     "late",
		Duration: 0,
		Boss:     "warden",
		Waves: []config.Wave{
			{Time: 0, Groups: []config.Group{{Type: "grunt", Count: 1, SpawnDelay: 0}}},
		},
	}
	s := NewScheduler(schedulerData(level), 0, log.New(&bytes.Buffer{}))
	rec := &spawnRecorder{}
	if res := s.Update(frameCtx(100*time.Millisecond, 0, rec), 0, false); res.Boss != nil {
		t.Fatal("boss spawned in the same frame as the last grunt")
	}
}

func TestSchedulerUnknownBoss(t *testing.T) {
	var buf bytes.Buffer
	level := config.Level{Name: "nobody", Duration: 1, Boss: "phantom"}
	s := NewScheduler(schedulerData(level), 0, log.New(&buf))

	var unavailable int
	for i := 0; i < 30; i++ {
		if s.Update(frameCtx(100*time.Millisecond, 0, nil), 0, false).BossUnavailable {
			unavailable++
		}
	}
	if unavailable != 1 {
		t.Errorf("reported missing boss %d times, want 1", unavailable)
	}
	if n := strings.Count(buf.String(), "phantom"); n != 1 {
		t.Errorf("logged %d times, want 1", n)
	}
}
