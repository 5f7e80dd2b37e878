// Package basin defines the cell, direction and coordinate types of a
// blizzard basin together with the immutable Snapshot grid.
package basin

import "math/bits"

// Coord addresses a cell (X = column, Y = row). It doubles as a unit offset.
type Coord struct {
	X, Y int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction is one of the four cardinal directions a blizzard can travel.
type Direction uint8

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Down moves towards the last row.
	Down
	// Left moves towards column 0.
	Left
	// Right moves towards the last column.
	Right
)

// directions lists every Direction in DirSet bit order (high to low).
var directions = [4]Direction{Up, Down, Left, Right}

// Offset returns the unit step of d.
func (d Direction) Offset() Coord {
	switch d {
	case Up:
		return Coord{Y: -1}
	case Down:
		return Coord{Y: 1}
	case Left:
		return Coord{X: -1}
	default:
		return Coord{X: 1}
	}
}

// Bit returns the DirSet holding only d.
func (d Direction) Bit() DirSet {
	return DirSet(0b1000 >> d)
}

// Glyph returns the input character of a single blizzard moving in d.
func (d Direction) Glyph() rune {
	return [4]rune{'^', 'v', '<', '>'}[d]
}

func (d Direction) String() string {
	return [4]string{"up", "down", "left", "right"}[d]
}

// DirSet is the set of directions of the blizzards sharing one cell.
// Layout: up 0b1000, down 0b0100, left 0b0010, right 0b0001.
type DirSet uint8

const dirMask DirSet = 0b1111

// Has reports whether d is in s.
func (s DirSet) Has(d Direction) bool {
	return s&d.Bit() != 0
}

// Union merges two sets; merging is commutative and associative.
func (s DirSet) Union(o DirSet) DirSet {
	return (s | o) & dirMask
}

// Len returns the number of blizzards in s.
func (s DirSet) Len() int {
	return bits.OnesCount8(uint8(s & dirMask))
}

// Directions lists the members of s in the fixed order up, down, left, right.
func (s DirSet) Directions() []Direction {
	out := make([]Direction, 0, s.Len())
	for _, d := range directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Cell classifies one grid position. The zero value is Open.
// The low four bits carry the DirSet of the blizzards currently in the cell;
// wallFlag marks the immutable border.
type Cell uint8

const wallFlag Cell = 0b1_0000

const (
	// Open is a free cell.
	Open Cell = 0
	// Wall is a border cell; walls never change across ticks.
	Wall = wallFlag
)

// Occupied returns the cell holding the blizzards in s.
func Occupied(s DirSet) Cell {
	return Cell(s & dirMask)
}

// IsOpen reports whether nothing occupies the cell.
func (c Cell) IsOpen() bool { return c == Open }

// IsWall reports whether the cell is part of the wall ring.
func (c Cell) IsWall() bool { return c&wallFlag != 0 }

// Directions returns the blizzards in the cell; empty for Open and Wall.
func (c Cell) Directions() DirSet {
	if c.IsWall() {
		return 0
	}
	return DirSet(c) & dirMask
}

// Glyph renders the cell: '.', '#', the direction glyph of a single blizzard,
// or the blizzard count for overlapping ones.
func (c Cell) Glyph() rune {
	switch {
	case c.IsWall():
		return '#'
	case c.IsOpen():
		return '.'
	}
	set := c.Directions()
	if set.Len() == 1 {
		return set.Directions()[0].Glyph()
	}
	return rune('0' + set.Len())
}
