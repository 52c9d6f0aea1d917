package demo

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/pkg/hillclimb"
)

func HillClimb(ctx context.Context, env Env) error {
	cfg := env.Config.HillClimb
	out := env.Out
	out.Banner("Hill-climbing search")

	// One generator for all runs, like a single seeded script
	rng := hillclimb.NewRand(cfg.Seed)
	for _, run := range cfg.Runs {
		if err := ctx.Err(); err != nil {
			return err
		}
		objective, err := hillclimb.Lookup(run.Objective)
		if err != nil {
			return err
		}

		minimize := run.Mode == "minimize"
		out.Println(rule(45))
		if minimize {
			out.Printf(" Minimization , finding valley, objective_function = %s\n", objective.Formula)
		} else {
			out.Printf(" objective_function = %s\n", objective.Formula)
		}

		var res hillclimb.Result
		if minimize {
			res, err = hillclimb.Minimize(objective.F, run.Options, rng)
		} else {
			res, err = hillclimb.Climb(objective.F, run.Options, rng)
		}
		if err != nil {
			return err
		}

		out.Println(rule(45))
		out.Printf(" Initial, x = %.6f , f(x) = %.6f\n", res.Initial.X, res.Initial.F)
		for _, imp := range res.Trace {
			out.Println(rule(45))
			out.Printf(" Iteration %d , better x and f(x) found\n", imp.Iteration)
			out.Printf(" x = %.6f , f(x) = %.6f\n", imp.X, imp.F)
		}

		out.Println(rule(45))
		out.Success("\n Best solution found, x = %.6f , f(x) = %.6f", res.X, res.F)
		if q, ok := hillclimb.QuadraticOf(objective.Name); ok {
			// Recover x from the best value, both roots of a parabola qualify
			roots := q.Solve(hillclimb.Round6(res.F))
			out.Printf("\n %s = %.6f for x in %s\n", q, res.F, formatRoots(roots))
		}

		env.logger().Debug("climb finished",
			zap.String("objective", objective.Name),
			zap.Bool("minimize", minimize),
			zap.Int("improvements", len(res.Trace)),
			zap.Float64("x", res.X),
			zap.Float64("f", res.F),
		)
	}
	return nil
}

func formatRoots(roots []float64) string {
	parts := make([]string, len(roots))
	for i, r := range roots {
		parts[i] = fmt.Sprintf("%g", r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
