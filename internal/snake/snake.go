// Package snake is the grid Snake variant, driven by the same frame loop
// and renderer as the shooter.
package snake

// Dir is a heading on the grid.
type Dir int

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the reverse heading.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Delta returns the cell offset of one step in direction d.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return -1, 0
	}
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns c moved by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{c.X + dx, c.Y + dy}
}

// Snake is the body on the grid, head first.
type Snake struct {
	Body []Cell
	dir  Dir // heading of the last step
	next Dir // heading of the next step
}

// NewSnake creates a snake of length cells with its head at head, heading
// dir, the rest of the body trailing behind it.
func NewSnake(head Cell, length int, dir Dir) *Snake {
	length = max(length, 1)
	dx, dy := dir.Opposite().Delta()
	body := make([]Cell, length)
	for i := range body {
		body[i] = head.Add(dx*i, dy*i)
	}
	return &Snake{Body: body, dir: dir, next: dir}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.Body[0]
}

// Dir returns the heading the next step will take.
func (s *Snake) Dir() Dir {
	return s.next
}

// Turn queues a heading for the next step. Turning back onto the neck is
// rejected; it reports whether the turn was accepted.
func (s *Snake) Turn(d Dir) bool {
	if d == s.dir.Opposite() {
		return false
	}
	s.next = d
	return true
}

// NextHead returns where the head goes on the next step, before any wrapping.
func (s *Snake) NextHead() Cell {
	return s.Head().Add(s.next.Delta())
}

// Hits reports whether moving the head into c would hit the body. The tail
// cell does not count when tailMoves is set, as it is vacated by the same step.
func (s *Snake) Hits(c Cell, tailMoves bool) bool {
	body := s.Body
	if tailMoves {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == c {
			return true
		}
	}
	return false
}

// Occupies reports whether any body cell is c.
func (s *Snake) Occupies(c Cell) bool {
	return s.Hits(c, false)
}

// Move puts the head at c. The tail follows unless grow is set.
func (s *Snake) Move(c Cell, grow bool) {
	if grow {
		s.Body = append(s.Body, Cell{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = c
	s.dir = s.next
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.Body)
}
