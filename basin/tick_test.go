package basin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blizzard/basin"
)

// TestTick_SmallBasin follows both blizzards of smallBasin through a full
// cycle, including the overlap at tick 3 and the wraps at ticks 2 and 5.
func TestTick_SmallBasin(t *testing.T) {
	frames := []string{
		smallBasin,
		`#.#####
#.....#
#.>...#
#.....#
#.....#
#...v.#
#####.#
`,
		`#.#####
#...v.#
#..>..#
#.....#
#.....#
#.....#
#####.#
`,
		`#.#####
#.....#
#...2.#
#.....#
#.....#
#.....#
#####.#
`,
		`#.#####
#.....#
#....>#
#...v.#
#.....#
#.....#
#####.#
`,
		smallBasin,
	}

	s := basin.MustParse(smallBasin)
	for i, want := range frames {
		require.Equal(t, want, s.String(), "tick %d", i)
		s = s.Tick()
	}
}

func TestTick_FirstStep(t *testing.T) {
	s := basin.MustParse(smallBasin).Tick()
	assert.Equal(t, basin.Occupied(basin.Right.Bit()), s.At(basin.Coord{X: 2, Y: 2}))
	assert.Equal(t, basin.Occupied(basin.Down.Bit()), s.At(basin.Coord{X: 4, Y: 5}))
	assert.True(t, s.IsOpen(basin.Coord{X: 1, Y: 2}))
	assert.True(t, s.IsOpen(basin.Coord{X: 4, Y: 4}))
}

func TestTick_Deterministic(t *testing.T) {
	s := basin.MustParse(largeBasin)
	a, b := s.Tick(), s.Tick()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, largeBasin, s.String(), "Tick must not mutate its receiver")
}

// TestTick_Invariants checks that walls stay put, particles are conserved,
// and blizzards only ever occupy interior cells.
func TestTick_Invariants(t *testing.T) {
	initial := basin.MustParse(largeBasin)
	want := initial.Particles()

	s := initial
	for i := 0; i < 30; i++ {
		s = s.Tick()
		require.Equal(t, want, s.Particles(), "tick %d", i+1)
		require.Equal(t, initial.Start(), s.Start())
		require.Equal(t, initial.End(), s.End())
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				c := basin.Coord{X: x, Y: y}
				require.Equal(t, initial.At(c).IsWall(), s.At(c).IsWall(), "wall at %v tick %d", c, i+1)
				interior := x >= 1 && x <= s.InteriorWidth() && y >= 1 && y <= s.InteriorHeight()
				if !interior {
					require.Zero(t, s.At(c).Directions(), "blizzard outside interior at %v", c)
				}
			}
		}
	}
}

// TestTick_VerticalAtOpeningColumn ensures a blizzard sharing the column of
// an opening wraps inside the interior instead of entering the opening.
func TestTick_VerticalAtOpeningColumn(t *testing.T) {
	s := basin.MustParse("#.###\n#^..#\n#...#\n#.v.#\n###.#\n")
	s = s.Tick()
	assert.Equal(t, basin.Occupied(basin.Up.Bit()), s.At(basin.Coord{X: 1, Y: 3}))
	assert.Equal(t, basin.Occupied(basin.Down.Bit()), s.At(basin.Coord{X: 2, Y: 1}))
	assert.True(t, s.IsOpen(s.Start()))
	assert.True(t, s.IsOpen(s.End()))
}
