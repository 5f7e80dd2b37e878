package bfs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/blizzard/basin"
	"github.com/katalvlaran/blizzard/bfs"
	"github.com/katalvlaran/blizzard/cycle"
)

// ExampleShortestTime crosses the 6×4 example basin.
func ExampleShortestTime() {
	grid := basin.MustParse(`#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#`)
	cache, err := cycle.Build(grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ticks, err := bfs.ShortestTime(cache, grid.Start(), grid.End())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("ticks:", ticks)
	// Output:
	// ticks: 18
}

// ExampleSearch_route prints the route through a basin without blizzards.
func ExampleSearch_route() {
	grid := basin.MustParse("#.###\n#...#\n###.#\n")
	cache, _ := cycle.Build(grid)

	res, err := bfs.Search(cache, grid.Start(), grid.End())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// [(1,0)@0 (1,1)@1 (2,1)@2 (3,1)@3 (3,2)@4]
}

// ExampleSearch_timeout shows a deadline guarding an interactive search.
func ExampleSearch_timeout() {
	grid := basin.MustParse("#.#####\n#.....#\n#>....#\n#.....#\n#...v.#\n#.....#\n#####.#\n")
	cache, _ := cycle.Build(grid)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res, err := bfs.Search(cache, grid.Start(), grid.End(), bfs.WithContext(ctx))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("elapsed:", res.Elapsed, "path states:", len(res.Path))
	// Output:
	// elapsed: 10 path states: 11
}
