// Package assets resolves image names to drawable sprites.
package assets

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
)

// Color is an ANSI 256-color palette index.
type Color uint8

// Common palette entries.
const (
	ColorBlack   Color = 16
	ColorWhite   Color = 231
	ColorGray    Color = 245
	ColorRed     Color = 196
	ColorGreen   Color = 46
	ColorYellow  Color = 226
	ColorMagenta Color = 201
)

// Sprite is what a renderer needs to draw an image: a solid color.
type Sprite struct {
	Name  string
	Color Color
}

// Fallback is drawn in place of any image that cannot be found.
var Fallback = Sprite{Name: "missing", Color: ColorMagenta}

// Library looks up images by name.
type Library interface {
	Image(name string) (Sprite, bool)
	Ready() bool
}

// Registry is a Library built from game data sprite specs. Misses are
// logged once per name.
type Registry struct {
	sprites map[string]Sprite
	logger  *log.Logger

	mu     sync.Mutex
	warned map[string]struct{}
}

// NewRegistry builds a registry from the sprite table in data.
// A nil logger uses log.Default().
func NewRegistry(specs map[string]config.SpriteSpec, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	r := &Registry{
		sprites: make(map[string]Sprite, len(specs)),
		logger:  logger,
		warned:  make(map[string]struct{}),
	}
	for name, spec := range specs {
		name = strings.ToLower(name)
		r.sprites[name] = Sprite{Name: name, Color: Color(spec.Color)}
	}
	return r
}

// Image returns the sprite registered under name.
func (r *Registry) Image(name string) (Sprite, bool) {
	s, ok := r.sprites[strings.ToLower(name)]
	if !ok {
		r.warnOnce(name)
	}
	return s, ok
}

// Ready reports whether the registry can serve lookups. Sprites are built
// eagerly, so a constructed registry is always ready.
func (r *Registry) Ready() bool {
	return r != nil
}

func (r *Registry) warnOnce(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.warned[name]; ok {
		return
	}
	r.warned[name] = struct{}{}
	r.logger.Warn("missing image, using fallback", "image", name)
}

// Lookup returns the named sprite from lib, or Fallback when lib is nil or
// does not have it.
func Lookup(lib Library, name string) Sprite {
	if lib == nil {
		return Fallback
	}
	if s, ok := lib.Image(name); ok {
		return s
	}
	return Fallback
}
