package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/skyraid/internal/arcade"
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The terminal is the game, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("SKYRAID_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "skyraid"})
	if lvl, err := log.ParseLevel(config.GetEnv("SKYRAID_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}

	mode, err := arcade.ParseMode(config.GetEnv("SKYRAID_MODE", ""))
	if err != nil {
		return err
	}

	data, err := config.Load(config.GetEnv("SKYRAID_DATA", ""))
	if err != nil {
		// The shooter shows this on its game over screen.
		logger.Error("load game data", "err", err)
	}

	seed, _ := config.GetEnvUint64("SKYRAID_SEED")

	var sfx audio.Player = audio.Silent{}
	if data != nil && config.GetEnv("SKYRAID_AUDIO", "on") != "off" {
		bp := audio.NewBeepPlayer(data.Sounds, seed, logger)
		if err := bp.Start(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer bp.Close()
			sfx = bp
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	stream := input.StartStream(os.Stdin)
	game, err := arcade.New(arcade.Options{
		Mode:     mode,
		Data:     data,
		Audio:    sfx,
		Logger:   logger,
		Seed:     seed,
		Consumer: stream,
	})
	if err != nil {
		return err
	}

	w, h := game.CanvasSize()
	screen := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc, w, h)
	draw.HideCursor(os.Stdout)
	defer func() {
		draw.ClearScreen(os.Stdout)
		draw.ShowCursor(os.Stdout)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "mode", mode, "seed", seed)
	return loop.Run(ctx, game, loop.StreamSource{Stream: stream}, screen, loop.RunOptions{})
}
