// SPDX-License-Identifier: MIT

package munkres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/munkres/matrix"
)

// SolveAll solves independent cost matrices concurrently with at most
// workers solves in flight. Results are index-aligned with costs.
//
// Every solve gets its own workspace; nothing is shared between them except
// opts.Logger (safe for concurrent use) and opts.OnStep, which must then be
// safe for concurrent calls. The first failing solve cancels the others and
// its error is returned, annotated with the matrix index.
//
// Complexity: Σ per-solve cost / workers, memory O(workers·n²) for workspaces.
func SolveAll(ctx context.Context, costs []matrix.Matrix, opts Options, workers int) ([]Result, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: workers=%d", ErrInvalidOptions, workers)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		results = make([]Result, len(costs))
		log     = opts.Logger
	)
	if log == nil {
		log = zap.NewNop()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range costs {
		i := i
		eg.Go(func() error {
			o := opts
			o.Ctx = egCtx
			o.Logger = log.With(zap.Int("matrix", i))

			res, err := Solve(costs[i], o)
			if err != nil {
				return fmt.Errorf("matrix %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
