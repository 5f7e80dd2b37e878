package basin

import (
	"errors"
	"fmt"
)

// ErrParse is the root of every error returned by Parse.
var ErrParse = errors.New("basin: parse error")

// Sentinel parse errors; each one matches ErrParse with errors.Is.
var (
	// ErrEmptyGrid indicates the input holds no rows.
	ErrEmptyGrid = fmt.Errorf("%w: input must have at least one row", ErrParse)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrParse)
	// ErrUnknownCell indicates a character outside ". # ^ v < >".
	ErrUnknownCell = fmt.Errorf("%w: unknown cell character", ErrParse)
	// ErrTooSmall indicates the grid has no interior cell.
	ErrTooSmall = fmt.Errorf("%w: grid must be at least 3x3", ErrParse)
	// ErrWallRing indicates a border cell that is neither wall nor an opening.
	ErrWallRing = fmt.Errorf("%w: border must be wall except the two openings", ErrParse)
	// ErrOpening indicates a missing or duplicate start/end opening.
	ErrOpening = fmt.Errorf("%w: need exactly one opening in the top and bottom rows", ErrParse)
)
