package basin_test

import (
	"fmt"

	"github.com/katalvlaran/blizzard/basin"
)

// ExampleParse reads a basin and reports its openings and interior size.
func ExampleParse() {
	s, err := basin.Parse("#.#####\n#.....#\n#>....#\n#.....#\n#...v.#\n#.....#\n#####.#\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start:", s.Start(), "end:", s.End())
	fmt.Printf("interior: %dx%d, blizzards: %d\n", s.InteriorWidth(), s.InteriorHeight(), s.Particles())
	// Output:
	// start: {1 0} end: {5 6}
	// interior: 5x5, blizzards: 2
}

// ExampleSnapshot_Tick advances two blizzards heading towards each other.
func ExampleSnapshot_Tick() {
	s := basin.MustParse("#.####\n#>..<#\n####.#\n")
	s = s.Tick()
	fmt.Print(s)
	// Output:
	// #.####
	// #.><.#
	// ####.#
}

// ExampleSnapshot_Tick_overlap lets two blizzards land on the same cell: the
// merged cell renders as the number of blizzards it holds.
func ExampleSnapshot_Tick_overlap() {
	s := basin.MustParse("#.###\n#>.<#\n###.#\n")
	s = s.Tick()
	fmt.Print(s)
	// Output:
	// #.###
	// #.2.#
	// ###.#
}
