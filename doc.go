// Package blizzard finds the fastest way through a blizzard basin: a walled
// grid crossed by blizzards that move one cell per tick and wrap around at
// the walls.
//
// What is in the box?
//
//	basin/  - grid model: cells, directions, Parse, Tick, rendering
//	cycle/  - precomputed cycle of every distinct basin snapshot
//	bfs/    - breadth-first search over (position, tick) states
//	blizzard (this package) - Solve, SolveTrips, Plan and SolveBatch
//
// Quick example:
//
//	ticks, err := blizzard.Solve("#.######\n#>>.<^<#\n#.<..<<#\n#>v.><>#\n#<^v^^>#\n######.#\n")
//	// ticks == 18
//
// Solve is a pure function: every call parses its own input, builds its own
// cache and searches it. Nothing is shared between calls, so concurrent calls
// are safe; SolveBatch runs many of them with a concurrency limit.
//
// The cmd/blizzard binary wraps the package as a CLI and as an HTTP server
// (internal/server) that answers POST /solve and streams solved routes over a
// websocket at /replay.
package blizzard
