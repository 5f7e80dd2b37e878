package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/blizzard/basin"
)

// Errors returned by Search and ShortestTime.
var (
	// ErrNilCache is returned if a nil cycle cache is passed.
	ErrNilCache = errors.New("bfs: cycle cache is nil")

	// ErrOutOfBounds is returned when the start or target lies outside the grid.
	ErrOutOfBounds = errors.New("bfs: position out of bounds")

	// ErrUnreachable is returned when the frontier empties before the target
	// is reached.
	ErrUnreachable = errors.New("bfs: target unreachable")

	// ErrOptionViolation reports a rejected Option such as a negative tick.
	ErrOptionViolation = errors.New("bfs: option rejected")
)

// State is one search node: the agent's position after Tick elapsed ticks.
// Tick is never reduced modulo the period.
type State struct {
	Pos  basin.Coord
	Tick int
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)@%d", s.Pos.X, s.Pos.Y, s.Tick)
}

// Option adjusts a search. A rejected value is remembered and Search
// returns it wrapped in ErrOptionViolation before doing any work.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration of one search.
type BFSOptions struct {
	// Ctx allows cancellation; it is checked once per dequeued state.
	Ctx context.Context

	// StartTick is the elapsed tick at which the agent leaves the start.
	// Chained trips pass the arrival tick of the previous leg.
	StartTick int

	// MaxDepth, if > 0, stops exploring states more than MaxDepth ticks after
	// StartTick. A value of 0 disables the limit.
	MaxDepth int

	// OnEnqueue sees every state added to the frontier, the start included.
	OnEnqueue func(s State)

	// OnDequeue sees a state as it leaves the frontier.
	OnDequeue func(s State)

	// OnVisit runs before a state is expanded; a non-nil error ends the
	// search and is returned wrapped.
	OnVisit func(s State) error

	err error
}

// DefaultOptions starts at tick 0 with a background context, no depth limit
// and hooks that do nothing.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		StartTick: 0,
		MaxDepth:  0,
		OnEnqueue: func(State) {},
		OnDequeue: func(State) {},
		OnVisit:   func(State) error { return nil },
	}
}

// WithContext lets ctx abort the search. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStartTick leaves the start t ticks into the simulation. Negative t is
// rejected.
func WithStartTick(t int) Option {
	return func(o *BFSOptions) {
		if t < 0 {
			o.err = fmt.Errorf("%w: start tick %d < 0", ErrOptionViolation, t)
			return
		}
		o.StartTick = t
	}
}

// WithMaxDepth gives up on states more than d ticks after the start; 0 means
// unbounded and negative d is rejected. A search cut short by the limit
// reports ErrUnreachable.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: max depth %d < 0", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnEnqueue installs fn as the OnEnqueue hook.
func WithOnEnqueue(fn func(s State)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs fn as the OnDequeue hook.
func WithOnDequeue(fn func(s State)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs fn as the OnVisit hook.
func WithOnVisit(fn func(s State) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a successful search:
//   - Time: absolute tick at which the target is reached.
//   - Elapsed: Time minus the start tick; the answer to "how long".
//   - Path: every state from the start to the target, one per tick.
//   - Expanded: number of states dequeued.
type Result struct {
	Time     int
	Elapsed  int
	Path     []State
	Expanded int
}
