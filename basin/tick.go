package basin

// Tick returns the basin one step later. Walls are copied unchanged and every
// blizzard moves one cell in its direction. A blizzard leaving the interior
// re-enters on the opposite interior edge; the wall ring and the two openings
// are never a wrapped destination. Blizzards landing on the same cell are
// merged with a bitwise OR, so the result does not depend on the order in
// which source cells are visited.
//
// Tick never mutates s and is deterministic.
// Complexity: O(W×H).
func (s *Snapshot) Tick() *Snapshot {
	next := &Snapshot{
		width:  s.width,
		height: s.height,
		cells:  make([]Cell, len(s.cells)),
		start:  s.start,
		end:    s.end,
	}
	for i, c := range s.cells {
		if c.IsWall() {
			next.cells[i] = Wall
		}
	}
	for i, c := range s.cells {
		set := c.Directions()
		if set == 0 {
			continue
		}
		from := s.coordinate(i)
		for _, d := range set.Directions() {
			to := s.wrap(from.Add(d.Offset()))
			j := next.index(to)
			next.cells[j] = Occupied(next.cells[j].Directions().Union(d.Bit()))
		}
	}
	return next
}

// wrap folds a coordinate that left the interior back onto the opposite
// interior edge: rows 1..h-2 and columns 1..w-2.
func (s *Snapshot) wrap(c Coord) Coord {
	switch {
	case c.X < 1:
		c.X = s.width - 2
	case c.X > s.width-2:
		c.X = 1
	}
	switch {
	case c.Y < 1:
		c.Y = s.height - 2
	case c.Y > s.height-2:
		c.Y = 1
	}
	return c
}
