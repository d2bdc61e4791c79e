package loop

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
	"github.com/tomz197/skyraid/internal/rng"
)

var errNoData = errors.New("no game data")

// Options configures a Game. Only Data is required for play; everything
// else has a working default.
type Options struct {
	Data     *config.GameData
	Assets   assets.Library // default: registry built from Data.Sprites
	Audio    audio.Player   // default: audio.Silent
	Logger   *log.Logger    // default: log.Default()
	Seed     uint64         // RNG seed, 0 picks one from the clock
	Consumer input.Consumer // told about consumed confirm presses, may be nil
}

// Game is the shooter: the state machine plus the session it drives.
// A Game is single-threaded and shares nothing with other games.
type Game struct {
	id       uuid.UUID
	data     *config.GameData
	dataErr  error
	assets   assets.Library
	audio    audio.Player
	logger   *log.Logger
	consumer input.Consumer
	rand     *rng.Rand
	bounds   object.Bounds

	state       state
	running     bool
	confirmHeld bool       // a consumed confirm key is still down
	held        input.Keys // this frame's keys before filtering

	grid       *physics.Grid // player bullets, rebuilt every frame
	candidates []int
}

// NewGame creates a game in the loading state.
func NewGame(opts Options) *Game {
	g := &Game{
		id:       uuid.New(),
		data:     opts.Data,
		assets:   opts.Assets,
		audio:    opts.Audio,
		logger:   opts.Logger,
		consumer: opts.Consumer,
		state:    loadingState{},
		running:  true,
		bounds:   object.Bounds{Width: fallbackCanvasWidth, Height: fallbackCanvasHeight},
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	g.logger = g.logger.With("game", g.id.String()[:8])
	if g.audio == nil {
		g.audio = audio.Silent{}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g.rand = rng.New(seed)

	switch {
	case g.data == nil:
		g.dataErr = errNoData
	case !g.data.Valid():
		g.dataErr = g.data.Validate()
	}
	if g.dataErr == nil {
		g.bounds = object.Bounds{Width: g.data.Canvas.Width, Height: g.data.Canvas.Height}
	}
	if g.assets == nil {
		var specs map[string]config.SpriteSpec
		if g.data != nil {
			specs = g.data.Sprites
		}
		g.assets = assets.NewRegistry(specs, g.logger)
	}
	return g
}

// ID returns the game's unique id.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Running reports whether the game wants more frames.
func (g *Game) Running() bool {
	return g.running
}

// State returns the current phase.
func (g *Game) State() StateKind {
	return g.state.Kind()
}

// CanvasSize returns the logical size of the play field.
func (g *Game) CanvasSize() (w, h float64) {
	return g.bounds.Width, g.bounds.Height
}

// Session returns the active run while playing or on the level clear
// screen, nil otherwise.
func (g *Game) Session() *Session {
	switch s := g.state.(type) {
	case playingState:
		return s.Session
	case levelClearState:
		return s.Session
	}
	return nil
}

// Score returns the score of the active run or of the run that just ended.
func (g *Game) Score() int {
	if s, ok := g.state.(gameOverState); ok {
		return s.score
	}
	if sess := g.Session(); sess != nil {
		return sess.Score
	}
	return 0
}

// Update advances the game by one frame. A state change takes effect at
// the next call.
func (g *Game) Update(dt time.Duration, in input.State) {
	if !g.running {
		return
	}
	g.held = input.Snapshot(in)
	keys := g.filterConfirm(g.held)

	if keys.IsKeyDown(input.KeyQ) {
		g.quit("quit key")
		return
	}

	switch s := g.state.(type) {
	case loadingState:
		g.updateLoading()
	case menuState:
		g.updateMenu(keys)
	case controlsState:
		g.updateControls(keys)
	case playingState:
		g.updatePlaying(s.Session, dt, keys)
	case gameOverState:
		g.updateGameOver(keys)
	case levelClearState:
		g.updateLevelClear(s.Session, keys)
	}
}

// filterConfirm hides confirm keys that were consumed by a transition until
// they are released, so one press never cascades through several screens.
func (g *Game) filterConfirm(keys input.Keys) input.Keys {
	if !g.confirmHeld {
		return keys
	}
	if !confirmDown(keys) {
		g.confirmHeld = false
		return keys
	}
	return keys.Without(input.KeyEnter).Without(input.KeySpace)
}

func confirmDown(keys input.Keys) bool {
	return keys.IsKeyDown(input.KeyEnter) || keys.IsKeyDown(input.KeySpace)
}

// consumeConfirm latches the confirm keys and resets them at the source.
func (g *Game) consumeConfirm() {
	g.confirmHeld = true
	if g.consumer != nil {
		g.consumer.ResetKey(input.KeyEnter)
		g.consumer.ResetKey(input.KeySpace)
	}
	g.audio.PlayOneShot(audio.SoundMenuSelect, g.soundVolume())
}

func (g *Game) quit(reason string) {
	g.logger.Info("quit", "reason", reason, "state", g.state.Kind())
	g.audio.StopLoopingTrack()
	g.running = false
}

// setState switches phase and runs the entry actions of the new one.
func (g *Game) setState(next state) {
	prev := g.state.Kind()
	g.state = next
	g.logger.Info("state change", "from", prev, "to", next.Kind())

	// Fire shares Space with confirm, so an end screen reached with it held
	// waits for a fresh press.
	if k := next.Kind(); (k == StateGameOver || k == StateLevelClear) && confirmDown(g.held) {
		g.confirmHeld = true
	}

	switch s := next.(type) {
	case playingState:
		lvl := g.data.Levels[s.LevelIndex]
		if lvl.Music != "" {
			g.audio.PlayLoopingTrack(lvl.Music, g.data.Gameplay.MusicVolume)
		}
	case gameOverState:
		g.audio.StopLoopingTrack()
		if prev == StatePlaying {
			g.audio.PlayOneShot(audio.SoundGameOver, g.soundVolume())
		}
	case levelClearState:
		g.audio.StopLoopingTrack()
		g.audio.PlayOneShot(audio.SoundLevelClear, g.soundVolume())
	}
}

func (g *Game) soundVolume() float64 {
	if g.data == nil {
		return 0
	}
	return g.data.Gameplay.SoundVolume
}

// startSession begins a fresh run at the first level.
func (g *Game) startSession() {
	bullet, _ := g.data.Bullet(g.data.Player.Bullet)
	player := object.NewPlayer(g.data.Player, bullet, g.playerStart())
	player.SoundVolume = g.data.Gameplay.SoundVolume

	sess := &Session{Player: player}
	g.startLevel(sess, 0)
}

// startLevel resets the world for level index and enters play. The player
// and its health carry over between levels.
func (g *Game) startLevel(sess *Session, index int) {
	sess.LevelIndex = index
	sess.World.Reset()
	sess.Boss = nil
	sess.Scheduler = object.NewScheduler(g.data, index, g.logger)
	sess.Player.ResetPosition(g.playerStart())
	g.logger.Debug("level start", "level", index, "name", g.data.Levels[index].Name)
	g.setState(playingState{sess})
}

func (g *Game) playerStart() physics.Vector2 {
	return physics.Vec(g.bounds.Width/2, g.bounds.Height*playerStartY)
}

func (g *Game) updateContext(sess *Session, dt time.Duration, keys input.Keys) object.UpdateContext {
	return object.UpdateContext{
		Delta:    dt,
		Input:    keys,
		Bounds:   g.bounds,
		Rand:     g.rand,
		Spawner:  &sess.World,
		Audio:    g.audio,
		Target:   sess.Player.Pos,
		Gameplay: g.data.Gameplay,
	}
}
