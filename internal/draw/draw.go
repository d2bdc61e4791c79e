// Package draw renders sprites and text to terminals.
package draw

//go:generate mockgen -destination=../mocks/draw_renderer_mock.go -package=mocks . Renderer

import "github.com/tomz197/skyraid/internal/assets"

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Align controls how text is placed relative to its anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Renderer draws one frame at a time in logical canvas coordinates.
// Entity positions are centers; text is anchored at (x, y) per align.
type Renderer interface {
	Clear()
	DrawEntity(sprite assets.Sprite, x, y, w, h float64)
	DrawText(text string, x, y float64, color assets.Color, size float64, align Align)
	Present() error
}
