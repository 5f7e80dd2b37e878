package blizzard_test

import (
	"context"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blizzard"
	"github.com/katalvlaran/blizzard/basin"
	"github.com/katalvlaran/blizzard/bfs"
)

const example = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
`

func TestSolve(t *testing.T) {
	got, err := blizzard.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, 18, got)
}

func TestSolveTrips(t *testing.T) {
	cases := []struct {
		legs int
		want int
	}{
		{1, 18},
		{2, 41},
		{3, 54},
	}
	for _, tc := range cases {
		got, err := blizzard.SolveTrips(example, tc.legs)
		require.NoError(t, err, "legs=%d", tc.legs)
		assert.Equal(t, tc.want, got, "legs=%d", tc.legs)
	}

	_, err := blizzard.SolveTrips(example, 0)
	assert.ErrorIs(t, err, blizzard.ErrInvalidLegs)
}

func TestSolve_ParseError(t *testing.T) {
	_, err := blizzard.Solve("#.#\n#?#\n#.#\n")
	assert.ErrorIs(t, err, basin.ErrParse)
	assert.ErrorIs(t, err, basin.ErrUnknownCell)

	_, err = blizzard.Solve(strings.Replace(example, "######.#", "########", 1))
	assert.ErrorIs(t, err, basin.ErrOpening)
}

func TestPlan_Route(t *testing.T) {
	r, err := blizzard.Plan(example, 3)
	require.NoError(t, err)
	assert.Equal(t, 54, r.Minutes)
	assert.Equal(t, 12, r.Cache.Period())
	require.Len(t, r.Legs, 3)
	assert.Equal(t, r.Grid.End(), r.Legs[1].Path[0].Pos)
	assert.Equal(t, r.Grid.Start(), r.Legs[1].Path[len(r.Legs[1].Path)-1].Pos)

	steps := r.Steps()
	require.Len(t, steps, 55, "one state per tick 0..54")
	for i, s := range steps {
		assert.Equal(t, i, s.Tick)
	}
}

func TestPlan_Frames(t *testing.T) {
	r, err := blizzard.Plan(example, 1)
	require.NoError(t, err)
	frames := r.Frames()
	require.Len(t, frames, 19)

	first := frames[0]
	assert.Equal(t, 0, first.Tick)
	assert.True(t, strings.HasPrefix(first.Grid, "#E######\n"), first.Grid)

	last := frames[len(frames)-1]
	assert.Equal(t, r.Grid.End(), last.Pos)
	assert.True(t, strings.HasSuffix(last.Grid, "######E#\n"), last.Grid)
	for _, f := range frames {
		assert.Equal(t, 1, strings.Count(f.Grid, "E"), "tick %d", f.Tick)
	}
}

func TestPlan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := blizzard.Plan(example, 1, blizzard.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlan_Logger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	_, err := blizzard.Plan(example, 2, blizzard.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "cycle cache built", entries[0].Message)
	assert.Equal(t, 12, entries[0].Data["period"])
	assert.Equal(t, "leg solved", entries[2].Message)
	assert.Equal(t, 2, entries[2].Data["leg"])
	assert.Equal(t, 41, entries[2].Data["arrival"])
}

// TestSolve_UnreachableExit uses a basin whose only interior row is blocked
// by blizzards in every phase, so the exit can never be reached.
func TestSolve_UnreachableExit(t *testing.T) {
	// Interior 2×1: two blizzards fill both interior cells at every tick.
	_, err := blizzard.Solve("#.##\n#><#\n##.#\n")
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}
