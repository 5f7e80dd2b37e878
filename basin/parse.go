package basin

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// basinLexer emits one token per cell glyph. Any other character fails
// lexing, which Parse reports as ErrUnknownCell.
var basinLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Wall", Pattern: `#`},
	{Name: "Open", Pattern: `\.`},
	{Name: "Blizzard", Pattern: `[\^v<>]`},
	{Name: "EOL", Pattern: `\r?\n`},
})

// gridText is the parse tree of a basin: rows of cell tokens separated by
// line breaks. Blank lines produce no row.
type gridText struct {
	Rows []*rowText `parser:"( @@ | EOL )*"`
}

type rowText struct {
	Pos   lexer.Position
	Cells []string `parser:"( @Wall | @Open | @Blizzard )+"`
}

var gridParser = participle.MustBuild[gridText](participle.Lexer(basinLexer))

// Parse builds the initial Snapshot from text, one character per cell:
// '.' open, '#' wall, and '^' 'v' '<' '>' a blizzard moving up, down, left
// or right. The border must be wall except one opening in the top row (the
// start) and one in the bottom row (the end).
//
// Every returned error matches ErrParse; no partial Snapshot is returned.
// Complexity: O(W×H).
func Parse(text string) (*Snapshot, error) {
	tree, err := gridParser.ParseString("", text)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w at %d:%d: %s", ErrUnknownCell,
				perr.Position().Line, perr.Position().Column, perr.Message())
		}
		return nil, fmt.Errorf("%w: %v", ErrUnknownCell, err)
	}
	if len(tree.Rows) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(tree.Rows), len(tree.Rows[0].Cells)
	cells := make([]Cell, 0, w*h)
	for _, row := range tree.Rows {
		if len(row.Cells) != w {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d",
				ErrNonRectangular, row.Pos.Line, len(row.Cells), w)
		}
		for _, glyph := range row.Cells {
			cells = append(cells, cellFromGlyph(glyph))
		}
	}
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, w, h)
	}

	s := &Snapshot{width: w, height: h, cells: cells}
	if err := s.validateRing(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) *Snapshot {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// cellFromGlyph maps a lexed token to its Cell. The lexer only emits the
// six known glyphs.
func cellFromGlyph(glyph string) Cell {
	switch glyph {
	case "#":
		return Wall
	case "^":
		return Occupied(Up.Bit())
	case "v":
		return Occupied(Down.Bit())
	case "<":
		return Occupied(Left.Bit())
	case ">":
		return Occupied(Right.Bit())
	default:
		return Open
	}
}

// validateRing checks the wall ring and records the start and end openings.
func (s *Snapshot) validateRing() error {
	for y := 0; y < s.height; y++ {
		for _, x := range []int{0, s.width - 1} {
			if !s.At(Coord{X: x, Y: y}).IsWall() {
				return fmt.Errorf("%w: cell (%d,%d)", ErrWallRing, x, y)
			}
		}
	}

	var err error
	if s.start, err = s.opening(0); err != nil {
		return fmt.Errorf("top row: %w", err)
	}
	if s.end, err = s.opening(s.height - 1); err != nil {
		return fmt.Errorf("bottom row: %w", err)
	}
	return nil
}

// opening returns the single open cell of border row y.
func (s *Snapshot) opening(y int) (Coord, error) {
	found := []Coord{}
	for x := 1; x < s.width-1; x++ {
		c := Coord{X: x, Y: y}
		switch cell := s.At(c); {
		case cell.IsOpen():
			found = append(found, c)
		case !cell.IsWall():
			return Coord{}, fmt.Errorf("%w: blizzard at (%d,%d)", ErrWallRing, x, y)
		}
	}
	if len(found) != 1 {
		return Coord{}, fmt.Errorf("%w: found %d", ErrOpening, len(found))
	}
	return found[0], nil
}
