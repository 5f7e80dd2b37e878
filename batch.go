package blizzard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveBatch solves independent basins concurrently, running at most limit
// searches at once (limit ≤ 0 means no limit). Results keep the order of
// inputs. The first failure cancels the remaining work and is returned,
// annotated with the index of the failing input.
func SolveBatch(ctx context.Context, inputs []string, legs, limit int, opts ...Option) ([]int, error) {
	results := make([]int, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	runOpts := append(append([]Option{}, opts...), WithContext(gctx))
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			r, err := Plan(input, legs, runOpts...)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			results[i] = r.Minutes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
