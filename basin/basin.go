package basin

import (
	"slices"
	"strings"
)

// Snapshot is the full basin state at one tick. It is immutable once built;
// every method is safe for concurrent use.
//
// cells is row-major: cells[y*width+x].
type Snapshot struct {
	width, height int
	cells         []Cell
	start, end    Coord
}

// Width returns the number of columns, walls included.
func (s *Snapshot) Width() int { return s.width }

// Height returns the number of rows, walls included.
func (s *Snapshot) Height() int { return s.height }

// InteriorWidth returns the number of columns blizzards travel through.
func (s *Snapshot) InteriorWidth() int { return s.width - 2 }

// InteriorHeight returns the number of rows blizzards travel through.
func (s *Snapshot) InteriorHeight() int { return s.height - 2 }

// Start returns the opening in the top wall.
func (s *Snapshot) Start() Coord { return s.start }

// End returns the opening in the bottom wall.
func (s *Snapshot) End() Coord { return s.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (s *Snapshot) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// At returns the cell at c. Out-of-bounds coordinates read as Wall.
func (s *Snapshot) At(c Coord) Cell {
	if !s.InBounds(c) {
		return Wall
	}
	return s.cells[s.index(c)]
}

// IsOpen reports whether the agent may stand on c at this tick: c is in
// bounds and holds neither wall nor blizzard. Any occupancy blocks, however
// many blizzards share the cell.
func (s *Snapshot) IsOpen(c Coord) bool {
	return s.InBounds(c) && s.cells[s.index(c)].IsOpen()
}

// Neighbors returns the in-bounds orthogonal neighbours of c in the order
// up, down, left, right.
func (s *Snapshot) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(directions))
	for _, d := range directions {
		if n := c.Add(d.Offset()); s.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Particles returns the number of blizzards on the grid, counting each
// member of every overlapping set.
func (s *Snapshot) Particles() int {
	n := 0
	for _, c := range s.cells {
		n += c.Directions().Len()
	}
	return n
}

// Equal reports whether both snapshots have the same size and cells.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.width == o.width && s.height == o.height && slices.Equal(s.cells, o.cells)
}

// Key returns the cell bytes of s, usable as a map key to detect repeats.
func (s *Snapshot) Key() string {
	var b strings.Builder
	b.Grow(len(s.cells))
	for _, c := range s.cells {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// String renders s in the input format. Overlapping blizzards render as
// their count, which Parse does not accept.
func (s *Snapshot) String() string {
	var b strings.Builder
	b.Grow((s.width + 1) * s.height)
	for y := 0; y < s.height; y++ {
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			b.WriteRune(c.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// index maps c to its row-major position: y*width + x.
func (s *Snapshot) index(c Coord) int {
	return c.Y*s.width + c.X
}

// coordinate converts a row-major index back to a Coord.
func (s *Snapshot) coordinate(i int) Coord {
	return Coord{X: i % s.width, Y: i / s.width}
}
