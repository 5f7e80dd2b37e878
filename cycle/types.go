// Package cycle provides tunable options and error definitions for building
// the cycle cache of a blizzard basin.
package cycle

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for cache construction.
var (
	// ErrNilSnapshot is returned if a nil initial snapshot is passed.
	ErrNilSnapshot = errors.New("cycle: initial snapshot is nil")

	// ErrOptionViolation reports a rejected Option, such as a negative MaxPeriod.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")

	// ErrPeriodLimit is returned when no repeat was found within MaxPeriod snapshots.
	ErrPeriodLimit = errors.New("cycle: period limit exceeded")
)

// Option configures Build via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds the parameters of Build.
type Options struct {
	// Ctx allows cancellation between ticks.
	Ctx context.Context

	// MaxPeriod, if > 0, caps the number of recorded snapshots.
	// 0 disables the cap: termination is then guaranteed by the finite
	// number of distinct snapshots.
	MaxPeriod int

	// OnSnapshot, if set, is called for every newly recorded snapshot with
	// its index in the sequence.
	OnSnapshot func(index int)

	err error
}

// DefaultOptions returns Options with a background context, no period cap
// and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxPeriod:  0,
		OnSnapshot: func(int) {},
	}
}

// WithContext lets ctx abort Build between ticks. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPeriod caps the number of snapshots Build may record.
//
//	n > 0: fail with ErrPeriodLimit once n snapshots are recorded without a repeat
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPeriod(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPeriod cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPeriod = n
	}
}

// WithOnSnapshot registers a callback run for every recorded snapshot.
func WithOnSnapshot(fn func(index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSnapshot = fn
		}
	}
}
