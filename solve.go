package blizzard

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/blizzard/basin"
	"github.com/katalvlaran/blizzard/bfs"
	"github.com/katalvlaran/blizzard/cycle"
)

// Route is a solved trip through one basin.
type Route struct {
	// Grid is the basin at tick 0.
	Grid *basin.Snapshot
	// Cache holds every distinct snapshot of Grid.
	Cache *cycle.Cache
	// Legs holds one search result per leg, alternating start→end and end→start.
	Legs []*bfs.Result
	// Minutes is the tick at which the last leg arrives.
	Minutes int
}

// Frame is the basin at one tick of a route with the agent's position.
type Frame struct {
	Tick int
	Pos  basin.Coord
	// Grid is the rendered basin with the agent drawn as 'E'.
	Grid string
}

// Solve returns the fewest ticks needed to cross the basin described by
// input from its top opening to its bottom opening.
//
// Parse errors match basin.ErrParse; an unreachable exit matches
// bfs.ErrUnreachable.
func Solve(input string) (int, error) {
	return SolveTrips(input, 1)
}

// SolveTrips returns the fewest ticks needed to cross the basin legs times:
// start→end, then end→start, and so on. Each leg leaves when the previous
// one arrives.
func SolveTrips(input string, legs int) (int, error) {
	r, err := Plan(input, legs)
	if err != nil {
		return 0, err
	}
	return r.Minutes, nil
}

// Plan parses input, precomputes its cycle cache and searches legs
// consecutive crossings, returning the full route.
func Plan(input string, legs int, opts ...Option) (*Route, error) {
	if legs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLegs, legs)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	grid, err := basin.Parse(input)
	if err != nil {
		return nil, err
	}
	cache, err := cycle.Build(grid, cycle.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	o.Logger.WithFields(log.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
		"period": cache.Period(),
	}).Debug("cycle cache built")

	r := &Route{Grid: grid, Cache: cache, Legs: make([]*bfs.Result, 0, legs)}
	from, to := grid.Start(), grid.End()
	for leg := 0; leg < legs; leg++ {
		res, err := bfs.Search(cache, from, to,
			bfs.WithContext(o.Ctx),
			bfs.WithStartTick(r.Minutes),
		)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", leg+1, err)
		}
		o.Logger.WithFields(log.Fields{
			"leg":      leg + 1,
			"elapsed":  res.Elapsed,
			"arrival":  res.Time,
			"expanded": res.Expanded,
		}).Debug("leg solved")

		r.Legs = append(r.Legs, res)
		r.Minutes = res.Time
		from, to = to, from
	}
	return r, nil
}

// Steps returns the agent's states across all legs, one per tick. The state
// joining two legs appears once.
func (r *Route) Steps() []bfs.State {
	var steps []bfs.State
	for i, leg := range r.Legs {
		path := leg.Path
		if i > 0 && len(path) > 0 {
			path = path[1:]
		}
		steps = append(steps, path...)
	}
	return steps
}

// Frames renders every step of the route.
func (r *Route) Frames() []Frame {
	steps := r.Steps()
	frames := make([]Frame, 0, len(steps))
	for _, s := range steps {
		frames = append(frames, Frame{
			Tick: s.Tick,
			Pos:  s.Pos,
			Grid: drawAgent(r.Cache.At(s.Tick), s.Pos),
		})
	}
	return frames
}

// drawAgent renders grid with 'E' at pos. Every glyph is a single byte.
func drawAgent(grid *basin.Snapshot, pos basin.Coord) string {
	text := []byte(grid.String())
	text[pos.Y*(grid.Width()+1)+pos.X] = 'E'
	return string(text)
}
