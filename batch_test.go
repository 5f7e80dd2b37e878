package blizzard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blizzard"
	"github.com/katalvlaran/blizzard/basin"
)

const calm = "#.###\n#...#\n#...#\n###.#\n"

func TestSolveBatch(t *testing.T) {
	inputs := []string{example, calm, example, calm}
	got, err := blizzard.SolveBatch(context.Background(), inputs, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{18, 5, 18, 5}, got)

	got, err = blizzard.SolveBatch(context.Background(), inputs[:2], 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{54, 15}, got)
}

func TestSolveBatch_Empty(t *testing.T) {
	got, err := blizzard.SolveBatch(context.Background(), nil, 1, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSolveBatch_Error(t *testing.T) {
	_, err := blizzard.SolveBatch(context.Background(), []string{example, "#x#\n"}, 1, 1)
	assert.ErrorIs(t, err, basin.ErrParse)
	assert.Contains(t, err.Error(), "input 1")
}

func TestSolveBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := blizzard.SolveBatch(ctx, []string{example}, 1, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
