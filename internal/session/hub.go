// Package session tracks the games hosted for remote players so the server
// can stop them all on shutdown.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrShuttingDown is returned by Register once Shutdown has begun.
var ErrShuttingDown = errors.New("server shutting down")

// pollInterval is how often Shutdown checks for remaining sessions.
const pollInterval = 200 * time.Millisecond

// Session is one connected player. Its context is cancelled when the
// player leaves or the hub shuts down.
type Session struct {
	ID      uuid.UUID
	User    string
	Logger  *log.Logger
	Started time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// Context returns the session's context.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Hub holds every live session.
type Hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	closing  bool
	logger   *log.Logger
}

// NewHub creates an empty hub. A nil logger uses log.Default().
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		sessions: make(map[uuid.UUID]*Session),
		logger:   logger,
	}
}

// Register adds a session for user whose context derives from parent.
func (h *Hub) Register(parent context.Context, user string) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return nil, ErrShuttingDown
	}

	id := uuid.New()
	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		ID:      id,
		User:    user,
		Logger:  h.logger.With("session", id.String()[:8], "user", user),
		Started: time.Now(),
		ctx:     ctx,
		cancel:  cancel,
	}
	h.sessions[id] = s
	s.Logger.Info("session registered", "active", len(h.sessions))
	return s, nil
}

// Unregister removes a session and cancels its context. Unknown ids are ignored.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	active := len(h.sessions)
	h.mu.Unlock()

	if !ok {
		return
	}
	s.cancel()
	s.Logger.Info("session ended", "duration", time.Since(s.Started).Round(time.Second), "active", active)
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown refuses new sessions, cancels every live one and waits for them
// to unregister or for ctx to end.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closing = true
	for _, s := range h.sessions {
		s.cancel()
	}
	remaining := len(h.sessions)
	h.mu.Unlock()

	h.logger.Info("stopping sessions", "active", remaining)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for h.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
