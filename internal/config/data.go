package config

import (
	"strings"
	"time"
)

// GameData is the immutable game definition: canvas, tunables, entity
// templates and the level list. It is decoded from YAML by Load.
type GameData struct {
	Canvas   Canvas                    `mapstructure:"canvas"`
	Gameplay Gameplay                  `mapstructure:"gameplay"`
	Player   PlayerTemplate            `mapstructure:"player"`
	Bullets  map[string]BulletTemplate `mapstructure:"bullets"`
	Enemies  map[string]EnemyTemplate  `mapstructure:"enemies"`
	Bosses   map[string]BossTemplate   `mapstructure:"bosses"`
	Levels   []Level                   `mapstructure:"levels"`
	Sprites  map[string]SpriteSpec     `mapstructure:"sprites"`
	Sounds   map[string]SoundSpec      `mapstructure:"sounds"`
	Snake    SnakeConfig               `mapstructure:"snake"`

	valid bool
}

// Canvas is the logical play field size. Entities live in these units and
// renderers scale them to whatever surface they draw on.
type Canvas struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// Gameplay holds global tunables.
type Gameplay struct {
	ContactDamage      float64 `mapstructure:"contact_damage"`
	ExplosionParticles int     `mapstructure:"explosion_particles"`
	ExplosionSpeed     float64 `mapstructure:"explosion_speed"`
	ParticleLife       float64 `mapstructure:"particle_life"`
	ParticleGravity    float64 `mapstructure:"particle_gravity"`
	FireJitter         float64 `mapstructure:"fire_jitter"` // max extra seconds added to enemy fire cooldowns
	BossSpawnHeight    float64 `mapstructure:"boss_spawn_height"`
	SoundVolume        float64 `mapstructure:"sound_volume"`
	MusicVolume        float64 `mapstructure:"music_volume"`
}

// PlayerTemplate describes the player ship.
type PlayerTemplate struct {
	Image    string  `mapstructure:"image"`
	Width    float64 `mapstructure:"width"`
	Height   float64 `mapstructure:"height"`
	Health   float64 `mapstructure:"health"`
	Speed    float64 `mapstructure:"speed"`
	FireRate float64 `mapstructure:"fire_rate"` // shots per second
	Bullet   string  `mapstructure:"bullet"`
}

// BulletTemplate describes a projectile type.
type BulletTemplate struct {
	Image  string  `mapstructure:"image"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Speed  float64 `mapstructure:"speed"`
	Damage float64 `mapstructure:"damage"`
}

// EnemyTemplate describes a regular enemy type.
type EnemyTemplate struct {
	Image    string  `mapstructure:"image"`
	Width    float64 `mapstructure:"width"`
	Height   float64 `mapstructure:"height"`
	Health   float64 `mapstructure:"health"`
	Speed    float64 `mapstructure:"speed"`
	FireRate float64 `mapstructure:"fire_rate"`
	Score    int     `mapstructure:"score"`
	Bullet   string  `mapstructure:"bullet"`
}

// BossTemplate is an enemy template plus its phase cycle.
type BossTemplate struct {
	EnemyTemplate `mapstructure:",squash"`
	SpawnHeight   float64         `mapstructure:"spawn_height"`
	Phases        []PhaseTemplate `mapstructure:"phases"`
}

// PhaseTemplate is one boss phase. Movement is resolved from Pattern by Validate.
type PhaseTemplate struct {
	Duration              float64 `mapstructure:"duration"`
	Pattern               string  `mapstructure:"pattern"`
	FireRateMultiplier    float64 `mapstructure:"fire_rate_multiplier"`
	BulletSpeedMultiplier float64 `mapstructure:"bullet_speed_multiplier"`

	Movement MovementPattern `mapstructure:"-"`
}

// PhaseDuration returns the phase length as a time.Duration.
func (p PhaseTemplate) PhaseDuration() time.Duration {
	return Seconds(p.Duration)
}

// Level is one stage: timed waves followed by a boss.
type Level struct {
	Name     string  `mapstructure:"name"`
	Duration float64 `mapstructure:"duration"`
	Music    string  `mapstructure:"music"`
	Boss     string  `mapstructure:"boss"`
	Waves    []Wave  `mapstructure:"waves"`
}

// Wave releases its groups once the level timer reaches Time.
type Wave struct {
	Time   float64 `mapstructure:"time"`
	Groups []Group `mapstructure:"groups"`
}

// Group spawns Count enemies of Type, one every SpawnDelay seconds.
type Group struct {
	Type       string  `mapstructure:"type"`
	Count      int     `mapstructure:"count"`
	SpawnDelay float64 `mapstructure:"spawn_delay"`
}

// SpriteSpec maps an image name to a solid color (ANSI 256 palette index).
type SpriteSpec struct {
	Color int `mapstructure:"color"`
}

// SoundSpec describes a procedurally generated sound. A spec with Notes is
// played as a sequence of Duration-long notes; otherwise it is a single tone
// that slides from Freq to EndFreq.
type SoundSpec struct {
	Wave     string    `mapstructure:"wave"`
	Freq     float64   `mapstructure:"freq"`
	EndFreq  float64   `mapstructure:"end_freq"`
	Duration float64   `mapstructure:"duration"`
	Volume   float64   `mapstructure:"volume"`
	Notes    []float64 `mapstructure:"notes"`
}

// SnakeConfig tunes the snake variant.
type SnakeConfig struct {
	Cols            int     `mapstructure:"cols"`
	Rows            int     `mapstructure:"rows"`
	StartLength     int     `mapstructure:"start_length"`
	StepInterval    float64 `mapstructure:"step_interval"`
	MinStepInterval float64 `mapstructure:"min_step_interval"`
	Speedup         float64 `mapstructure:"speedup"` // interval multiplier per food eaten
	FoodScore       int     `mapstructure:"food_score"`
	Wrap            bool    `mapstructure:"wrap"`
}

// Seconds converts a float number of seconds into a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Map keys are lowercased by the decoder, so lookups are too.

// Enemy returns the enemy template for name.
func (d *GameData) Enemy(name string) (EnemyTemplate, bool) {
	t, ok := d.Enemies[strings.ToLower(name)]
	return t, ok
}

// Boss returns the boss template for name.
func (d *GameData) Boss(name string) (BossTemplate, bool) {
	t, ok := d.Bosses[strings.ToLower(name)]
	return t, ok
}

// Bullet returns the bullet template for name.
func (d *GameData) Bullet(name string) (BulletTemplate, bool) {
	t, ok := d.Bullets[strings.ToLower(name)]
	return t, ok
}
