package loop

import "time"

// Game configuration constants.
// Data-driven tunables live in the game data file; these are the frame
// loop and screen layout values.

// Frame timing
const (
	TargetFPS       = 60
	targetFrameTime = time.Second / TargetFPS
	// MaxFrameDelta is the longest frame still simulated. Longer gaps
	// (debugger, suspended terminal) skip the update for that frame.
	MaxFrameDelta = 100 * time.Millisecond
)

// Canvas used for screens when no game data is available.
const (
	fallbackCanvasWidth  = 480.0
	fallbackCanvasHeight = 640.0
)

// playerStartY is where the ship starts, as a fraction of canvas height.
const playerStartY = 0.85

// HUD layout, in logical canvas units
const (
	hudMargin       = 12.0
	hudLineHeight   = 24.0
	textSize        = 16.0
	titleSize       = 32.0
	healthBarWidth  = 120.0
	healthBarHeight = 8.0
	bossBarHeight   = 10.0
)

// Sprite names for HUD elements.
const (
	spriteHealthBar     = "health_bar"
	spriteHealthBarBack = "health_bar_back"
	spriteBossBar       = "boss_bar"
)
