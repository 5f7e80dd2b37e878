// Package cycle precomputes every distinct snapshot of a blizzard basin.
//
// What
//
//   - Build ticks the initial basin until a snapshot repeats and stores the
//     sequence seen so far.
//   - Cache.At(t) answers "what does the basin look like after t ticks" in
//     O(1) by reducing t modulo the period.
//   - Cache.Slot(t) exposes that reduction, which the search uses as the
//     time component of its visited key.
//
// Why
//
//	Blizzards move deterministically and wrap at the interior edge, so each
//	one returns to its start after InteriorWidth (horizontal) or
//	InteriorHeight (vertical) ticks. The whole basin repeats after at most
//	lcm(InteriorWidth, InteriorHeight) ticks; the measured period divides it.
//	Computing the cycle once turns a time-varying grid into a finite state
//	space.
//
// Options
//
//   - DefaultOptions():   background Context, no period cap, no hook.
//   - WithContext(ctx):   abort between ticks.
//   - WithMaxPeriod(n):   fail with ErrPeriodLimit after n snapshots without a repeat.
//   - WithOnSnapshot(fn): called for every recorded snapshot.
//
// Complexity
//
//   - Build: O(P×W×H) time and memory, P = period.
//   - At, Slot, Period: O(1).
//
// Errors
//
//   - ErrNilSnapshot      if the initial snapshot is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxPeriod).
//   - ErrPeriodLimit      if MaxPeriod snapshots were recorded without a repeat.
//   - ctx.Err()           if the context is cancelled.
package cycle
