package snake

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/mocks"
)

var testConfig = config.SnakeConfig{
	Cols:            10,
	Rows:            10,
	StartLength:     4,
	StepInterval:    0.1,
	MinStepInterval: 0.05,
	Speedup:         0.5,
	FoodScore:       10,
}

func newTestGame(cfg config.SnakeConfig, sfx audio.Player) *Game {
	return NewGame(Options{Config: cfg, Audio: sfx, Logger: log.New(io.Discard), Seed: 3, Volume: 1})
}

// started returns a game in play with the snake and food placed as given.
func started(t *testing.T, cfg config.SnakeConfig, s *Snake, food Cell) *Game {
	t.Helper()
	g := newTestGame(cfg, nil)
	g.Update(0, input.KeysOf(input.KeyEnter))
	if g.State() != StatePlaying {
		t.Fatalf("state %v, want playing", g.State())
	}
	g.Update(0, nil)
	g.snake = s
	g.food = food
	return g
}

func step(g *Game, keys ...input.Key) {
	g.Update(g.interval, input.KeysOf(keys...))
}

func TestTurnRejectsReversal(t *testing.T) {
	s := NewSnake(Cell{5, 5}, 3, DirUp)
	if s.Turn(DirDown) {
		t.Error("reversal accepted")
	}
	if !s.Turn(DirLeft) || s.Dir() != DirLeft {
		t.Error("left turn rejected")
	}
	// Still heading up until the next step, so down stays illegal.
	if s.Turn(DirDown) {
		t.Error("queued turn allowed a reversal")
	}
}

func TestNewSnakeTrails(t *testing.T) {
	s := NewSnake(Cell{5, 5}, 3, DirRight)
	want := []Cell{{5, 5}, {4, 5}, {3, 5}}
	for i, c := range want {
		if s.Body[i] != c {
			t.Fatalf("body %v, want %v", s.Body, want)
		}
	}
}

func TestMoveAndGrow(t *testing.T) {
	s := NewSnake(Cell{5, 5}, 3, DirUp)
	s.Move(s.NextHead(), false)
	if s.Len() != 3 || s.Head() != (Cell{5, 4}) || s.Body[2] != (Cell{5, 6}) {
		t.Errorf("after move: %v", s.Body)
	}
	s.Move(s.NextHead(), true)
	if s.Len() != 4 || s.Head() != (Cell{5, 3}) || s.Body[3] != (Cell{5, 6}) {
		t.Errorf("after grow: %v", s.Body)
	}
}

func TestWallEndsRun(t *testing.T) {
	g := started(t, testConfig, NewSnake(Cell{5, 1}, 3, DirUp), Cell{9, 9})
	step(g)
	if g.State() != StatePlaying || g.snake.Head() != (Cell{5, 0}) {
		t.Fatalf("state %v head %v", g.State(), g.snake.Head())
	}
	step(g)
	if g.State() != StateGameOver {
		t.Fatalf("state %v, want game over", g.State())
	}
}

func TestWrap(t *testing.T) {
	cfg := testConfig
	cfg.Wrap = true
	g := started(t, cfg, NewSnake(Cell{5, 0}, 3, DirUp), Cell{9, 9})
	step(g)
	if g.State() != StatePlaying || g.snake.Head() != (Cell{5, 9}) {
		t.Fatalf("state %v head %v, want wrapped to the bottom", g.State(), g.snake.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	g := started(t, testConfig, NewSnake(Cell{5, 5}, 5, DirUp), Cell{0, 0})
	step(g, input.KeyRight)
	step(g, input.KeyDown)
	step(g, input.KeyLeft)
	if g.State() != StateGameOver {
		t.Fatalf("state %v, want game over", g.State())
	}
}

func TestChasingTailIsAllowed(t *testing.T) {
	g := started(t, testConfig, NewSnake(Cell{5, 5}, 4, DirUp), Cell{0, 0})
	step(g, input.KeyRight)
	step(g, input.KeyDown)
	step(g, input.KeyLeft)
	if g.State() != StatePlaying {
		t.Fatalf("moving into the vacated tail cell ended the run")
	}
	if g.snake.Head() != (Cell{5, 6}) {
		t.Errorf("head %v", g.snake.Head())
	}
}

func TestEating(t *testing.T) {
	ctrl := gomock.NewController(t)
	sfx := mocks.NewMockPlayer(ctrl)
	sfx.EXPECT().PlayOneShot(audio.SoundMenuSelect, gomock.Any()).AnyTimes()
	sfx.EXPECT().PlayOneShot(audio.SoundEat, 1.0).Times(2)

	g := newTestGame(testConfig, sfx)
	g.Update(0, input.KeysOf(input.KeyEnter))
	g.Update(0, nil)
	g.snake = NewSnake(Cell{5, 5}, 3, DirUp)
	g.food = Cell{5, 4}

	step(g)
	if g.Score() != 10 || g.snake.Len() != 4 {
		t.Fatalf("score %d length %d", g.Score(), g.snake.Len())
	}
	if g.interval != 50*time.Millisecond {
		t.Errorf("interval %v, want 50ms", g.interval)
	}
	if g.snake.Occupies(g.food) {
		t.Error("food placed on the snake")
	}

	g.food = g.snake.NextHead()
	step(g)
	if g.interval != 50*time.Millisecond {
		t.Errorf("interval %v fell below the minimum", g.interval)
	}
}

func TestStepTiming(t *testing.T) {
	g := started(t, testConfig, NewSnake(Cell{5, 8}, 3, DirUp), Cell{0, 0})
	g.Update(60*time.Millisecond, nil)
	if g.snake.Head() != (Cell{5, 8}) {
		t.Fatal("stepped before the interval elapsed")
	}
	g.Update(60*time.Millisecond, nil)
	if g.snake.Head() != (Cell{5, 7}) {
		t.Fatalf("head %v after 120ms", g.snake.Head())
	}
	g.Update(200*time.Millisecond, nil)
	if g.snake.Head() != (Cell{5, 5}) {
		t.Fatalf("head %v, want two more steps", g.snake.Head())
	}
}

func TestConfirmAndQuit(t *testing.T) {
	g := newTestGame(testConfig, nil)
	g.Update(0, input.KeysOf(input.KeyEnter))
	g.snake = NewSnake(Cell{5, 0}, 2, DirUp)
	g.food = Cell{9, 9}
	step(g, input.KeyEnter) // dies on the wall with enter still held
	if g.State() != StateGameOver {
		t.Fatalf("state %v", g.State())
	}
	step(g, input.KeyEnter)
	if g.State() != StateGameOver {
		t.Fatal("held confirm skipped the game over screen")
	}
	step(g)
	step(g, input.KeyEnter)
	if g.State() != StateMenu {
		t.Fatalf("state %v, want menu", g.State())
	}
	step(g, input.KeyEscape)
	if g.Running() {
		t.Error("escape on the menu did not quit")
	}
}

func TestHeldKeyKeepsGameOver(t *testing.T) {
	g := started(t, testConfig, NewSnake(Cell{5, 0}, 2, DirUp), Cell{9, 9})
	step(g, input.KeySpace)
	if g.State() != StateGameOver {
		t.Fatalf("state %v, want game over", g.State())
	}
	step(g, input.KeySpace)
	if g.State() != StateGameOver {
		t.Fatal("a key held through the crash dismissed the game over screen")
	}
	step(g)
	step(g, input.KeySpace)
	if g.State() != StateMenu {
		t.Fatalf("state %v, want menu", g.State())
	}
}

func TestFoodOnFreeCell(t *testing.T) {
	cfg := testConfig
	cfg.Cols, cfg.Rows = 3, 3
	g := started(t, cfg, NewSnake(Cell{1, 1}, 2, DirUp), Cell{})
	for i := 0; i < 50; i++ {
		g.placeFood()
		if g.snake.Occupies(g.food) || !g.inside(g.food) {
			t.Fatalf("food at %v", g.food)
		}
	}
}

func TestNeverOverlapsItself(t *testing.T) {
	keys := []input.Key{input.KeyUp, input.KeyRight, input.KeyDown, input.KeyLeft}
	rapid.Check(t, func(t *rapid.T) {
		cfg := testConfig
		cfg.Wrap = rapid.Bool().Draw(t, "wrap")
		g := NewGame(Options{Config: cfg, Logger: log.New(io.Discard), Seed: rapid.Uint64Min(1).Draw(t, "seed")})
		g.Update(0, input.KeysOf(input.KeyEnter))
		g.Update(0, nil)

		moves := rapid.SliceOfN(rapid.IntRange(0, len(keys)), 1, 300).Draw(t, "moves")
		for _, m := range moves {
			var in input.Keys
			if m < len(keys) {
				in = input.KeysOf(keys[m])
			}
			prev := g.snake.Len()
			g.Update(g.interval, in)
			if g.State() != StatePlaying {
				return
			}
			if g.snake.Len() < prev {
				t.Fatalf("snake shrank from %d to %d", prev, g.snake.Len())
			}
			seen := make(map[Cell]bool, g.snake.Len())
			for _, c := range g.snake.Body {
				if seen[c] {
					t.Fatalf("body overlaps itself at %v: %v", c, g.snake.Body)
				}
				if !g.inside(c) {
					t.Fatalf("body cell %v outside the board", c)
				}
				seen[c] = true
			}
		}
	})
}
