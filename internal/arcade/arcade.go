// Package arcade builds the game a player asked for.
package arcade

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/snake"
)

// Mode selects a game.
type Mode string

const (
	ModeShooter Mode = "shooter"
	ModeSnake   Mode = "snake"
)

// ErrUnknownMode is returned by ParseMode for names it does not know.
var ErrUnknownMode = errors.New("unknown game mode")

// ParseMode parses a mode name, case-insensitively. Empty means the shooter.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModeShooter:
		return ModeShooter, nil
	case ModeSnake:
		return ModeSnake, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Game is a runnable game that knows its logical canvas size.
type Game interface {
	loop.Simulation
	CanvasSize() (w, h float64)
}

// Options are shared by every mode.
type Options struct {
	Mode     Mode
	Data     *config.GameData
	Audio    audio.Player
	Logger   *log.Logger
	Seed     uint64
	Consumer input.Consumer
}

// New creates the game for opts.Mode. The shooter accepts nil data and
// reports it on its game over screen; snake needs its board settings.
func New(opts Options) (Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	switch opts.Mode {
	case ModeShooter, "":
		return loop.NewGame(loop.Options{
			Data:     opts.Data,
			Audio:    opts.Audio,
			Logger:   opts.Logger,
			Seed:     opts.Seed,
			Consumer: opts.Consumer,
		}), nil
	case ModeSnake:
		if opts.Data == nil {
			return nil, errors.New("snake: no game data")
		}
		return snake.NewGame(snake.Options{
			Config:   opts.Data.Snake,
			Assets:   assets.NewRegistry(opts.Data.Sprites, opts.Logger),
			Audio:    opts.Audio,
			Logger:   opts.Logger,
			Seed:     opts.Seed,
			Consumer: opts.Consumer,
			Volume:   opts.Data.Gameplay.SoundVolume,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}
}
