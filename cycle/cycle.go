package cycle

import (
	"fmt"

	"github.com/katalvlaran/blizzard/basin"
)

// Cache is the precomputed sequence of distinct snapshots of one basin.
// Snapshot i+1 is the Tick successor of snapshot i. The cache is immutable
// after Build and safe for concurrent use.
//
// When the first repeated snapshot is sequence[lead], the first lead snapshots
// form a lead-in that never recurs and the remaining ones form the cycle. For
// blizzard basins lead is always 0: Tick is invertible, so the initial
// snapshot is the first to recur.
type Cache struct {
	sequence []*basin.Snapshot
	lead     int
}

// Build ticks initial until a snapshot repeats and records every distinct
// snapshot seen before the repeat.
//
// Termination: a basin has finitely many distinct snapshots and Tick is a
// deterministic function of the snapshot, so some snapshot must recur.
// Returns ErrNilSnapshot, ErrOptionViolation, ErrPeriodLimit or the context
// error; without options Build never fails on a non-nil snapshot.
//
// Complexity: O(P×W×H) time and memory, P = period ≤ lcm(interior W, interior H).
func Build(initial *basin.Snapshot, opts ...Option) (*Cache, error) {
	if initial == nil {
		return nil, ErrNilSnapshot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seen := make(map[string]int)
	var sequence []*basin.Snapshot
	for s := initial; ; s = s.Tick() {
		if idx, ok := seen[s.Key()]; ok {
			return &Cache{sequence: sequence, lead: idx}, nil
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if o.MaxPeriod > 0 && len(sequence) == o.MaxPeriod {
			return nil, fmt.Errorf("%w: no repeat within %d snapshots", ErrPeriodLimit, o.MaxPeriod)
		}
		seen[s.Key()] = len(sequence)
		o.OnSnapshot(len(sequence))
		sequence = append(sequence, s)
	}
}

// Period returns the number of ticks after which the basin repeats.
func (c *Cache) Period() int {
	return len(c.sequence) - c.lead
}

// Len returns the number of stored snapshots, lead-in included.
func (c *Cache) Len() int {
	return len(c.sequence)
}

// Slot maps an elapsed tick to its index in the stored sequence. Ticks with
// the same slot see the same basin. Negative ticks are treated as 0.
// Complexity: O(1).
func (c *Cache) Slot(tick int) int {
	if tick < c.lead {
		if tick < 0 {
			return 0
		}
		return tick
	}
	return c.lead + (tick-c.lead)%c.Period()
}

// At returns the basin at the given elapsed tick.
// Complexity: O(1).
func (c *Cache) At(tick int) *basin.Snapshot {
	return c.sequence[c.Slot(tick)]
}

// Initial returns the snapshot at tick 0.
func (c *Cache) Initial() *basin.Snapshot {
	return c.sequence[0]
}

// LCM returns the least common multiple of two positive integers; the period
// of a basin always divides LCM(InteriorWidth, InteriorHeight).
func LCM(a, b int) int {
	return a / gcd(a, b) * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
