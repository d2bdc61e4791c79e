package draw

import (
	"io"
	"unicode/utf8"

	"github.com/tomz197/skyraid/internal/assets"
)

type cell struct {
	ch     rune
	fg, bg assets.Color
}

type textItem struct {
	text     string
	col, row int
	color    assets.Color
}

// Terminal is a Renderer that draws to an ANSI terminal. The logical canvas
// is fitted into the terminal keeping its aspect ratio and centered. Only
// cells that changed since the previous frame are written.
type Terminal struct {
	out    *ChunkWriter
	size   TermSizeFunc
	canvas *Canvas
	texts  []textItem

	logicalWidth  float64
	logicalHeight float64

	termW, termH int
	frame, prev  []cell
	full         bool
}

// NewTerminal creates a terminal renderer writing to w.
func NewTerminal(w io.Writer, size TermSizeFunc, logicalWidth, logicalHeight float64) *Terminal {
	if size == nil {
		size = DefaultTermSizeFunc
	}
	t := &Terminal{
		out:           NewChunkWriter(w, 0, 0),
		size:          size,
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		full:          true,
	}
	t.canvas = NewCanvas(1, 1, logicalWidth, logicalHeight)
	t.frame = make([]cell, 1)
	t.fit()
	return t
}

// fit re-reads the terminal size and recomputes the layout when it changed.
// Errors keep the previous layout.
func (t *Terminal) fit() {
	w, h, err := t.size()
	if err != nil || w <= 0 || h <= 0 || (w == t.termW && h == t.termH) {
		return
	}
	t.termW, t.termH = w, h

	// Half-block pixels are roughly square: one column wide, half a row tall.
	cols := w
	px := float64(h*2) * t.logicalWidth / t.logicalHeight
	if int(px) < cols {
		cols = max(int(px), 1)
	}
	rows := min(h, (int(float64(cols)*t.logicalHeight/t.logicalWidth)+1)/2)
	rows = max(rows, 1)

	t.canvas.Resize(cols, rows)
	t.out.SetOffset((w-cols)/2, (h-rows)/2)
	t.frame = make([]cell, cols*rows)
	t.prev = nil
	t.full = true
}

// Clear starts a new frame.
func (t *Terminal) Clear() {
	t.fit()
	t.canvas.Clear()
	t.texts = t.texts[:0]
}

// DrawEntity fills the entity's bounding box, centered at (x, y), with the sprite color.
func (t *Terminal) DrawEntity(sprite assets.Sprite, x, y, w, h float64) {
	t.canvas.FillRect(x-w/2, y-h/2, w, h, sprite.Color)
}

// DrawText queues text for the frame. Terminal cells have a single font
// size, so size is ignored.
func (t *Terminal) DrawText(text string, x, y float64, color assets.Color, _ float64, align Align) {
	col, row := t.canvas.LogicalToTerminal(x, y)
	n := utf8.RuneCountInString(text)
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	t.texts = append(t.texts, textItem{text: text, col: col, row: row, color: color})
}

// Present composes the frame and writes the changed cells.
func (t *Terminal) Present() error {
	cols := t.canvas.TerminalWidth()
	rows := t.canvas.TerminalHeight()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ch, fg, bg := t.canvas.Cell(col, row)
			t.frame[row*cols+col] = cell{ch: ch, fg: fg, bg: bg}
		}
	}
	for _, it := range t.texts {
		if it.row < 0 || it.row >= rows {
			continue
		}
		col := it.col
		for _, r := range it.text {
			if col >= 0 && col < cols {
				t.frame[it.row*cols+col] = cell{ch: r, fg: it.color}
			}
			col++
		}
	}

	if t.full {
		ClearScreen(t.out)
	}
	last := -2
	var fg, bg assets.Color
	styled := false
	for i, c := range t.frame {
		if !t.full && t.prev != nil && t.prev[i] == c {
			continue
		}
		if i != last+1 || i%cols == 0 {
			t.out.MoveCursor(i%cols+1, i/cols+1)
		}
		if !styled || c.fg != fg || c.bg != bg {
			t.out.SetColors(c.fg, c.bg)
			fg, bg, styled = c.fg, c.bg, true
		}
		t.out.WriteRune(c.ch)
		last = i
	}
	if styled {
		t.out.SetColors(0, 0)
	}

	if t.prev == nil {
		t.prev = make([]cell, len(t.frame))
	}
	copy(t.prev, t.frame)
	t.full = false
	return t.out.Flush()
}

var _ Renderer = (*Terminal)(nil)
