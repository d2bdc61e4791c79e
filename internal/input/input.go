// Package input turns a raw terminal byte stream into a set of held keys.
package input

import (
	"bufio"
	"io"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses, so holds are approximated from key repeat.
const keyHoldDuration = 80 * time.Millisecond

// escapeTimeout is how long a trailing ESC or ESC [ waits for the rest of an
// arrow sequence before it counts as the Escape key.
const escapeTimeout = 50 * time.Millisecond

// Key is a physical key.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyEnter
	KeyEscape
	KeyQ
	keyCount
)

var keyNames = [keyCount]string{
	"up", "down", "left", "right", "w", "a", "s", "d", "space", "enter", "escape", "q",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// State is the set of keys held during a frame.
type State interface {
	IsKeyDown(key Key) bool
}

// Consumer can forget a key press at its source, so a held key is not
// reported again until it is pressed anew.
type Consumer interface {
	ResetKey(key Key)
}

// Keys is a bitset of held keys. The zero value has nothing held.
type Keys uint32

// KeysOf returns a set with the given keys held.
func KeysOf(keys ...Key) Keys {
	var k Keys
	for _, key := range keys {
		k = k.With(key)
	}
	return k
}

// IsKeyDown reports whether key is in the set.
func (k Keys) IsKeyDown(key Key) bool {
	return k&(1<<key) != 0
}

// With returns a copy of k with key held.
func (k Keys) With(key Key) Keys {
	return k | 1<<key
}

// Without returns a copy of k with key released.
func (k Keys) Without(key Key) Keys {
	return k &^ (1 << key)
}

// Snapshot copies the keys held in s into a Keys set.
func Snapshot(s State) Keys {
	switch v := s.(type) {
	case nil:
		return 0
	case Keys:
		return v
	}
	var k Keys
	for key := Key(0); key < keyCount; key++ {
		if s.IsKeyDown(key) {
			k = k.With(key)
		}
	}
	return k
}

// Stream delivers input bytes via a channel and tracks when each key was
// last seen so that simultaneous holds can be detected.
type Stream struct {
	ch     chan byte
	mu     sync.Mutex
	seen   [keyCount]time.Time
	closed bool
	now    func() time.Time

	pending   []byte // unfinished escape sequence from the last drain
	pendingAt time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the keys held as of now.
func ReadInput(s *Stream) Keys {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.mu.Lock()
				s.closed = true
				s.mu.Unlock()
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.apply(buf, now)
	return s.held(now)
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// ResetKey forgets the last press of key.
func (s *Stream) ResetKey(key Key) {
	if key >= keyCount {
		return
	}
	s.mu.Lock()
	s.seen[key] = time.Time{}
	s.mu.Unlock()
}

func (s *Stream) held(now time.Time) Keys {
	var k Keys
	for key := Key(0); key < keyCount; key++ {
		if !s.seen[key].IsZero() && now.Sub(s.seen[key]) < keyHoldDuration {
			k = k.With(key)
		}
	}
	return k
}

// apply parses buf and stamps every recognized key with now. A sequence cut
// off at the end of buf is kept for the next call.
func (s *Stream) apply(buf []byte, now time.Time) {
	since := now
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		since = s.pendingAt
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && partialCSI(buf[i:]) {
			at := now
			if i == 0 {
				at = since
			}
			if now.Sub(at) < escapeTimeout {
				s.pending = append([]byte(nil), buf[i:]...)
				s.pendingAt = at
				return
			}
		}

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if key, ok := arrowKey(buf[i+2]); ok {
				s.seen[key] = now
				i += 2
				continue
			}
		}

		if key, ok := byteKey(b); ok {
			s.seen[key] = now
		}
	}
}

// partialCSI reports whether b, which starts with ESC, may still grow into
// an arrow sequence.
func partialCSI(b []byte) bool {
	return len(b) == 1 || (len(b) == 2 && b[1] == '[')
}

func arrowKey(code byte) (Key, bool) {
	switch code {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'q', 'Q':
		return KeyQ, true
	case 'w', 'W':
		return KeyW, true
	case 'a', 'A':
		return KeyA, true
	case 's', 'S':
		return KeyS, true
	case 'd', 'D':
		return KeyD, true
	case ' ':
		return KeySpace, true
	case '\n', '\r':
		return KeyEnter, true
	case '\x1b':
		return KeyEscape, true
	}
	return 0, false
}

var (
	_ State    = Keys(0)
	_ Consumer = (*Stream)(nil)
)
