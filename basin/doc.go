// Package basin models a blizzard basin: a rectangular grid bounded by walls
// whose interior is crossed by blizzards that move one cell per tick and wrap
// around when they reach the wall.
//
// What:
//
//   - Snapshot holds the whole grid at one tick as row-major Cells.
//   - A Cell is Open, Wall, or Occupied by a DirSet: the directions of every
//     blizzard currently in that cell. Several blizzards may share a cell.
//   - Parse reads the text form ('.', '#', '^', 'v', '<', '>').
//   - Tick advances every blizzard one step and returns a new Snapshot.
//   - String renders a Snapshot back to text.
//
// Invariants:
//
//   - The outer ring is Wall except one opening in the top row (Start) and
//     one in the bottom row (End).
//   - Tick preserves the wall ring and the number of blizzards.
//   - IsOpen is false for any occupied cell, whatever the overlap count.
//
// Complexity:
//
//   - Parse, Tick, String, Equal: O(W×H) time and memory.
//   - IsOpen, At, InBounds: O(1).
//
// Errors (all match ErrParse):
//
//   - ErrEmptyGrid:      no rows.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownCell:    a character outside the six cell glyphs.
//   - ErrTooSmall:       fewer than 3 rows or columns.
//   - ErrWallRing:       border cell that is neither wall nor an opening.
//   - ErrOpening:        zero or several openings in the top or bottom row.
package basin
