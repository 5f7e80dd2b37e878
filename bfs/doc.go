// Package bfs provides breadth-first search through a blizzard basin whose
// blizzards move every tick, returning the fewest ticks from a start cell to
// a target cell together with the route taken.
//
// What
//
//   - Explore (position, tick) states in non-decreasing tick order.
//   - From (p, t) the agent may wait on p or step to one of its four
//     neighbours; the move is legal if the cell is open in the basin at
//     tick t+1, as reported by the cycle cache.
//   - Returns a Result containing:
//   - Time: absolute tick at which the target is reached
//   - Elapsed: ticks spent since StartTick
//   - Path: the route, one State per tick, start and target included
//   - Expanded: number of states dequeued
//   - Hooks observe the frontier: OnEnqueue as a state is added, OnDequeue
//     as it is taken, OnVisit before it is expanded (an error aborts).
//
// Visited states
//
//	States are deduplicated by (position, tick mod period) rather than by the
//	raw tick. The basin at tick t and t+period is identical, so a state and
//	its copy one period later have identical futures. BFS dequeues ticks in
//	non-decreasing order, so within one class only the first (smallest) tick
//	at which a position is reached can lead to an optimal answer. The state
//	space is therefore bounded by area × period and an unreachable target
//	ends the search with ErrUnreachable. Deduplicating by position alone would be wrong, since
//	waiting and returning later is often required.
//
// Complexity (A = grid area, P = cache period)
//
//   - Time:   O(A × P)
//   - Memory: O(A × P) for queue, visited set and parent links
//
// Usage
//
//	cache, _ := cycle.Build(grid)
//	ticks, err := bfs.ShortestTime(cache, grid.Start(), grid.End())
//
//	// Second leg, leaving when the first one arrived:
//	res, err := bfs.Search(cache, grid.End(), grid.Start(),
//	    bfs.WithStartTick(ticks),
//	    bfs.WithContext(ctx),
//	)
//
// Options
//
//   - DefaultOptions():    background Context, StartTick 0, no depth limit, no-op hooks.
//   - WithContext(ctx):    cancel between dequeues.
//   - WithStartTick(t):    start t ticks into the simulation (t ≥ 0).
//   - WithMaxDepth(d):     give up after d ticks (d > 0), 0 = no limit.
//   - WithOnEnqueue(fn), WithOnDequeue(fn), WithOnVisit(fn): hooks.
//
// Errors
//
//   - ErrNilCache         if the cache pointer is nil.
//   - ErrOutOfBounds      if the start or target lies outside the grid.
//   - ErrUnreachable      if the frontier empties (or MaxDepth is hit) first.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           on cancellation.
//   - the OnVisit error, wrapped with the state it failed on.
package bfs
