package puzzle

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IlikeChooros/go-aima/pkg/search"
)

// Outcome of one solver in a comparison, a failed search keeps its error here
type CompareResult struct {
	Solution Solution
	Err      error
}

type CompareOptions struct {
	Limits     *search.Limits
	DepthLimit int
	// Maximum number of solvers running at once, 0 runs all of them together
	Workers int
	Logger  *zap.Logger
}

// Run the solvers concurrently on the same problem, results are returned in
// the order of the requested algorithms. Only a cancelled context fails the
// whole comparison.
func Compare(ctx context.Context, initial, goal State, opts CompareOptions, algorithms ...Algorithm) ([]CompareResult, error) {
	results := make([]CompareResult, len(algorithms))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, alg := range algorithms {
		g.Go(func() error {
			solver := NewSolver().
				SetContext(gctx).
				SetDepthLimit(opts.DepthLimit).
				SetLogger(opts.Logger)
			if opts.Limits != nil {
				solver.SetLimits(opts.Limits.Clone())
			}

			sol, err := solver.Solve(alg, initial, goal)
			results[i] = CompareResult{Solution: sol, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
