package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/blizzard/basin"
	"github.com/katalvlaran/blizzard/cycle"
)

// visitKey identifies a state up to the basin period. Two states with the
// same key see the same basin from the same cell, so they have the same
// future; BFS reaches the smaller tick first, making the later one useless.
type visitKey struct {
	pos  basin.Coord
	slot int
}

// walker carries the frontier and bookkeeping of one Search call.
type walker struct {
	cache   *cycle.Cache
	opts    BFSOptions
	ctx     context.Context
	from    basin.Coord
	target  basin.Coord
	queue   []State
	visited map[visitKey]bool
	parent  map[visitKey]State
	res     *Result
}

// Search runs breadth-first search over (position, tick) states from
// (from, StartTick) until the agent stands on to.
//
// From (p, t) the successors are p itself (wait) and its four neighbours at
// tick t+1, kept only if cache.At(t+1).IsOpen. Visited states are keyed by
// (position, cache.Slot(tick)), which bounds the explored states to
// area × period and guarantees termination.
//
// Returns ErrNilCache or ErrOutOfBounds for invalid input, ErrOptionViolation
// for bad options, ErrUnreachable when the frontier empties, the context
// error on cancellation, or a wrapped OnVisit error.
//
// Complexity: O(W×H×P) time and memory, P = cache period.
func Search(cache *cycle.Cache, from, to basin.Coord, opts ...Option) (*Result, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	grid := cache.Initial()
	for _, c := range []basin.Coord{from, to} {
		if !grid.InBounds(c) {
			return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, c.X, c.Y, grid.Width(), grid.Height())
		}
	}

	area := grid.Width() * grid.Height()
	w := &walker{
		cache:   cache,
		opts:    o,
		ctx:     o.Ctx,
		from:    from,
		target:  to,
		queue:   make([]State, 0, area),
		visited: make(map[visitKey]bool, area),
		parent:  make(map[visitKey]State, area),
		res:     &Result{},
	}

	start := State{Pos: from, Tick: o.StartTick}
	w.enqueue(start, nil)
	if from == to {
		return w.finish(start), nil
	}
	return w.loop()
}

// ShortestTime returns the fewest ticks needed to walk from from to to.
// It accepts the same options and errors as Search.
func ShortestTime(cache *cycle.Cache, from, to basin.Coord, opts ...Option) (int, error) {
	res, err := Search(cache, from, to, opts...)
	if err != nil {
		return 0, err
	}
	return res.Elapsed, nil
}

func (w *walker) key(s State) visitKey {
	return visitKey{pos: s.Pos, slot: w.cache.Slot(s.Tick)}
}

// enqueue marks s visited, records its parent and adds it to the queue.
func (w *walker) enqueue(s State, parent *State) {
	k := w.key(s)
	w.visited[k] = true
	if parent != nil {
		w.parent[k] = *parent
	}
	w.opts.OnEnqueue(s)
	w.queue = append(w.queue, s)
}

// loop processes the queue until the target is found, the queue is empty,
// a hook fails or the context is cancelled.
func (w *walker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		s := w.dequeue()
		if err := w.visit(s); err != nil {
			return nil, err
		}
		if found, ok := w.expand(s); ok {
			return w.finish(found), nil
		}
	}
	return nil, fmt.Errorf("%w: (%d,%d) from (%d,%d) after %d states",
		ErrUnreachable, w.target.X, w.target.Y, w.from.X, w.from.Y, w.res.Expanded)
}

// dequeue pops the first state and invokes OnDequeue.
func (w *walker) dequeue() State {
	s := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(s)
	return s
}

// visit counts the state and calls OnVisit.
func (w *walker) visit(s State) error {
	w.res.Expanded++
	if err := w.opts.OnVisit(s); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", s, err)
	}
	return nil
}

// expand enqueues every unseen successor of s. The target test runs on
// enqueue: successors of one state share a tick and BFS emits ticks in
// non-decreasing order, so the first hit is minimal.
func (w *walker) expand(s State) (State, bool) {
	next := s.Tick + 1
	if w.opts.MaxDepth > 0 && next-w.opts.StartTick > w.opts.MaxDepth {
		return State{}, false
	}
	grid := w.cache.At(next)
	candidates := append([]basin.Coord{s.Pos}, grid.Neighbors(s.Pos)...)
	for _, p := range candidates {
		if !grid.IsOpen(p) {
			continue
		}
		ns := State{Pos: p, Tick: next}
		if w.visited[w.key(ns)] {
			continue
		}
		w.enqueue(ns, &s)
		if p == w.target {
			return ns, true
		}
	}
	return State{}, false
}

// finish fills the result for the state that reached the target,
// rebuilding the path through the parent links.
func (w *walker) finish(end State) *Result {
	path := []State{}
	for cur := end; ; {
		path = append(path, cur)
		prev, ok := w.parent[w.key(cur)]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	w.res.Time = end.Tick
	w.res.Elapsed = end.Tick - w.opts.StartTick
	w.res.Path = path
	return w.res
}
