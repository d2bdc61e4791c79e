package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/skyraid/internal/arcade"
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/session"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "skyraid-ssh"})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	mode, err := arcade.ParseMode(config.GetEnv("SKYRAID_MODE", ""))
	if err != nil {
		logger.Fatal("bad mode", "err", err)
	}

	// Loaded once; validated data is read-only and shared by every session.
	data, err := config.Load(config.GetEnv("SKYRAID_DATA", ""))
	if err != nil {
		logger.Error("load game data", "err", err)
	}

	hub := session.NewHub(logger)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(hub, mode, data),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port), "mode", mode)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Stop every running game and wait for the players' loops to exit.
	hubCtx, hubCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := hub.Shutdown(hubCtx); err != nil {
		logger.Warn("sessions still running", "active", hub.Len(), "err", err)
	}
	hubCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs one game per SSH session.
func gameMiddleware(hub *session.Hub, mode arcade.Mode, data *config.GameData) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			player, err := hub.Register(sess.Context(), sess.User())
			if err != nil {
				fmt.Fprintln(sess, "Server is shutting down, try again later.")
				return
			}
			defer hub.Unregister(player.ID)

			player.Logger.Info("New game session", "terminal", pty.Term,
				"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

			tracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					tracker.update(win.Width, win.Height)
				}
			}()

			stream := input.StartStream(sess)
			game, err := arcade.New(arcade.Options{
				Mode:     mode,
				Data:     data,
				Audio:    audio.Silent{}, // no sound over ssh
				Logger:   player.Logger,
				Consumer: stream,
			})
			if err != nil {
				player.Logger.Error("create game", "err", err)
				fmt.Fprintln(sess, "Error: game unavailable.")
				return
			}

			w, h := game.CanvasSize()
			screen := draw.NewTerminal(sess, tracker.getSize, w, h)
			draw.HideCursor(sess)
			err = loop.Run(player.Context(), game, loop.StreamSource{Stream: stream}, screen, loop.RunOptions{})
			draw.ClearScreen(sess)
			draw.ShowCursor(sess)
			if err != nil {
				player.Logger.Error("Game error", "err", err)
			}
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
