package snake

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/rng"
)

// CellSize is the edge of one grid cell in logical canvas units.
const CellSize = 16.0

// Defaults for unset config values.
const (
	defaultCols         = 24
	defaultRows         = 32
	defaultStartLength  = 4
	defaultStepInterval = 0.15
	defaultSpeedup      = 0.95
	defaultFoodScore    = 10
)

// State is a phase of the snake game.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Options configures a Game.
type Options struct {
	Config   config.SnakeConfig
	Assets   assets.Library
	Audio    audio.Player
	Logger   *log.Logger
	Seed     uint64
	Consumer input.Consumer
	Volume   float64
}

// Game is a single-threaded Snake game.
type Game struct {
	id       uuid.UUID
	cfg      config.SnakeConfig
	assets   assets.Library
	audio    audio.Player
	logger   *log.Logger
	consumer input.Consumer
	rand     *rng.Rand
	volume   float64

	state       State
	running     bool
	confirmHeld bool
	held        input.Keys

	snake    *Snake
	food     Cell
	score    int
	interval time.Duration
	acc      time.Duration
	reason   string
}

// NewGame creates a game on the menu screen. Zero config values take defaults.
func NewGame(opts Options) *Game {
	cfg := opts.Config
	if cfg.Cols <= 0 {
		cfg.Cols = defaultCols
	}
	if cfg.Rows <= 0 {
		cfg.Rows = defaultRows
	}
	if cfg.StartLength <= 0 {
		cfg.StartLength = defaultStartLength
	}
	if cfg.StepInterval <= 0 {
		cfg.StepInterval = defaultStepInterval
	}
	if cfg.MinStepInterval <= 0 || cfg.MinStepInterval > cfg.StepInterval {
		cfg.MinStepInterval = cfg.StepInterval
	}
	if cfg.Speedup <= 0 || cfg.Speedup > 1 {
		cfg.Speedup = defaultSpeedup
	}
	if cfg.FoodScore <= 0 {
		cfg.FoodScore = defaultFoodScore
	}

	g := &Game{
		id:       uuid.New(),
		cfg:      cfg,
		assets:   opts.Assets,
		audio:    opts.Audio,
		logger:   opts.Logger,
		consumer: opts.Consumer,
		volume:   opts.Volume,
		running:  true,
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	g.logger = g.logger.With("game", g.id.String()[:8], "mode", "snake")
	if g.audio == nil {
		g.audio = audio.Silent{}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g.rand = rng.New(seed)
	return g
}

// ID returns the game's unique id.
func (g *Game) ID() uuid.UUID { return g.id }

// Running reports whether the game wants more frames.
func (g *Game) Running() bool { return g.running }

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Score returns the current or final score.
func (g *Game) Score() int { return g.score }

// CanvasSize returns the logical size of the play field.
func (g *Game) CanvasSize() (w, h float64) {
	return float64(g.cfg.Cols) * CellSize, float64(g.cfg.Rows) * CellSize
}

// Update advances the game by one frame.
func (g *Game) Update(dt time.Duration, in input.State) {
	if !g.running {
		return
	}
	keys := input.Snapshot(in)
	g.held = keys
	if g.confirmHeld {
		if confirmDown(keys) {
			keys = keys.Without(input.KeyEnter).Without(input.KeySpace)
		} else {
			g.confirmHeld = false
		}
	}
	if keys.IsKeyDown(input.KeyQ) {
		g.quit("quit key")
		return
	}

	switch g.state {
	case StateMenu:
		if keys.IsKeyDown(input.KeyEscape) {
			g.quit("escape on menu")
			return
		}
		if confirmDown(keys) {
			g.consumeConfirm()
			g.start()
		}
	case StatePlaying:
		g.steer(keys)
		g.acc += dt
		for g.acc >= g.interval && g.state == StatePlaying {
			g.acc -= g.interval
			g.step()
		}
	case StateGameOver:
		if confirmDown(keys) {
			g.consumeConfirm()
			g.setState(StateMenu)
		}
	}
}

func confirmDown(keys input.Keys) bool {
	return keys.IsKeyDown(input.KeyEnter) || keys.IsKeyDown(input.KeySpace)
}

func (g *Game) consumeConfirm() {
	g.confirmHeld = true
	if g.consumer != nil {
		g.consumer.ResetKey(input.KeyEnter)
		g.consumer.ResetKey(input.KeySpace)
	}
	g.audio.PlayOneShot(audio.SoundMenuSelect, g.volume)
}

func (g *Game) quit(reason string) {
	g.logger.Info("quit", "reason", reason, "state", g.state)
	g.running = false
}

func (g *Game) setState(s State) {
	g.logger.Info("state change", "from", g.state, "to", s)
	g.state = s
}

// start begins a fresh run.
func (g *Game) start() {
	head := Cell{g.cfg.Cols / 2, g.cfg.Rows / 2}
	length := min(g.cfg.StartLength, g.cfg.Rows-head.Y)
	g.snake = NewSnake(head, length, DirUp)
	g.score = 0
	g.acc = 0
	g.interval = config.Seconds(g.cfg.StepInterval)
	g.reason = ""
	g.placeFood()
	g.setState(StatePlaying)
}

func (g *Game) steer(keys input.Keys) {
	switch {
	case keys.IsKeyDown(input.KeyUp) || keys.IsKeyDown(input.KeyW):
		g.snake.Turn(DirUp)
	case keys.IsKeyDown(input.KeyDown) || keys.IsKeyDown(input.KeyS):
		g.snake.Turn(DirDown)
	case keys.IsKeyDown(input.KeyLeft) || keys.IsKeyDown(input.KeyA):
		g.snake.Turn(DirLeft)
	case keys.IsKeyDown(input.KeyRight) || keys.IsKeyDown(input.KeyD):
		g.snake.Turn(DirRight)
	}
}

// step moves the snake one cell and resolves walls, itself and food.
func (g *Game) step() {
	next := g.snake.NextHead()
	if !g.inside(next) {
		if !g.cfg.Wrap {
			g.die("hit the wall")
			return
		}
		next = Cell{(next.X + g.cfg.Cols) % g.cfg.Cols, (next.Y + g.cfg.Rows) % g.cfg.Rows}
	}

	eating := next == g.food
	if g.snake.Hits(next, !eating) {
		g.die("ran into itself")
		return
	}
	g.snake.Move(next, eating)
	if !eating {
		return
	}

	g.score += g.cfg.FoodScore
	minInterval := config.Seconds(g.cfg.MinStepInterval)
	g.interval = max(time.Duration(float64(g.interval)*g.cfg.Speedup), minInterval)
	g.audio.PlayOneShot(audio.SoundEat, g.volume)
	g.logger.Debug("food eaten", "score", g.score, "length", g.snake.Len(), "interval", g.interval)
	g.placeFood()
}

func (g *Game) inside(c Cell) bool {
	return c.X >= 0 && c.X < g.cfg.Cols && c.Y >= 0 && c.Y < g.cfg.Rows
}

// placeFood puts food on a random free cell. A full board ends the run.
func (g *Game) placeFood() {
	free := make([]Cell, 0, g.cfg.Cols*g.cfg.Rows-g.snake.Len())
	for y := 0; y < g.cfg.Rows; y++ {
		for x := 0; x < g.cfg.Cols; x++ {
			if c := (Cell{x, y}); !g.snake.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		g.die("board full")
		return
	}
	g.food = free[g.rand.Intn(len(free))]
}

func (g *Game) die(reason string) {
	g.reason = reason
	g.logger.Info("run over", "reason", reason, "score", g.score, "length", g.snake.Len())
	g.audio.PlayOneShot(audio.SoundGameOver, g.volume)
	if confirmDown(g.held) {
		g.confirmHeld = true
	}
	g.setState(StateGameOver)
}

// Draw renders the current phase. The caller presents the frame.
func (g *Game) Draw(r draw.Renderer) {
	r.Clear()
	w, h := g.CanvasSize()
	cx, cy := w/2, h/2

	switch g.state {
	case StateMenu:
		r.DrawText("S N A K E", cx, cy-48, assets.ColorGreen, 32, draw.AlignCenter)
		r.DrawText("Arrows or WASD to steer", cx, cy, assets.ColorWhite, 16, draw.AlignCenter)
		r.DrawText("Press ENTER to start, Q to quit", cx, cy+24, assets.ColorGray, 16, draw.AlignCenter)

	case StatePlaying:
		g.drawBoard(r)
		r.DrawText(fmt.Sprintf("SCORE %d", g.score), 8, 8, assets.ColorWhite, 16, draw.AlignLeft)

	case StateGameOver:
		g.drawBoard(r)
		r.DrawText("GAME OVER", cx, cy-48, assets.ColorRed, 32, draw.AlignCenter)
		r.DrawText(g.reason, cx, cy-16, assets.ColorGray, 16, draw.AlignCenter)
		r.DrawText(fmt.Sprintf("Score: %d", g.score), cx, cy+8, assets.ColorWhite, 16, draw.AlignCenter)
		r.DrawText("Press ENTER", cx, cy+40, assets.ColorWhite, 16, draw.AlignCenter)
	}
}

func (g *Game) drawBoard(r draw.Renderer) {
	g.drawCell(r, "food", g.food)
	for i, c := range g.snake.Body {
		name := "snake_body"
		if i == 0 {
			name = "snake_head"
		}
		g.drawCell(r, name, c)
	}
}

func (g *Game) drawCell(r draw.Renderer, sprite string, c Cell) {
	x := (float64(c.X) + 0.5) * CellSize
	y := (float64(c.Y) + 0.5) * CellSize
	r.DrawEntity(assets.Lookup(g.assets, sprite), x, y, CellSize, CellSize)
}
