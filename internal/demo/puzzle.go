package demo

import (
	"context"
	"errors"

	"github.com/IlikeChooros/go-aima/internal/config"
	"github.com/IlikeChooros/go-aima/pkg/puzzle"
	"github.com/IlikeChooros/go-aima/pkg/search"
)

func Puzzle(ctx context.Context, env Env) error {
	cfg := env.Config.Puzzle
	out := env.Out

	algorithms := make([]puzzle.Algorithm, len(cfg.Algorithms))
	for i, name := range cfg.Algorithms {
		algorithms[i] = puzzle.Algorithm(name)
	}

	out.Banner("n-Puzzle, uninformed and informed search")
	for _, problem := range cfg.Problems {
		initial, err := puzzle.NewState(problem.Initial)
		if err != nil {
			return err
		}
		goal, err := puzzle.NewState(problem.Goal)
		if err != nil {
			return err
		}

		out.Header("\n%s, initial %s , goal %s", problem.Name, initial.Tuple(), goal.Tuple())
		n := initial.Size()
		out.Printf("\n Number of states in %d-Puzzle problem = %d! = %s\n", n-1, n, puzzle.StateSpaceSize(n))

		results, err := solveAll(ctx, env, initial, goal, algorithms)
		if err != nil {
			return err
		}
		for _, res := range results {
			narrateSolution(env, cfg, res.Solution, res.Err)
		}
	}
	return nil
}

func solveAll(ctx context.Context, env Env, initial, goal puzzle.State, algorithms []puzzle.Algorithm) ([]puzzle.CompareResult, error) {
	cfg := env.Config.Puzzle
	if cfg.Parallel {
		return puzzle.Compare(ctx, initial, goal, puzzle.CompareOptions{
			Limits:     cfg.Limits(),
			DepthLimit: cfg.DepthLimit,
			Logger:     env.logger(),
		}, algorithms...)
	}

	results := make([]puzzle.CompareResult, 0, len(algorithms))
	for _, alg := range algorithms {
		sol, err := puzzle.NewSolver().
			SetContext(ctx).
			SetLimits(cfg.Limits()).
			SetDepthLimit(cfg.DepthLimit).
			SetLogger(env.logger()).
			Solve(alg, initial, goal)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return results, ctxErr
		}
		results = append(results, puzzle.CompareResult{Solution: sol, Err: err})
	}
	return results, nil
}

func narrateSolution(env Env, cfg config.PuzzleConfig, sol puzzle.Solution, err error) {
	out := env.Out
	out.Println()
	out.Header(rule(42))
	out.Header(" %s", sol.Algorithm)

	if err != nil {
		switch {
		case errors.Is(err, puzzle.ErrNotFound):
			out.Failure("\n Solution could not be found\n %v", err)
			out.Printf("\n Number of %s calls: %d\n", sol.Algorithm, sol.Stats.Calls)
		case errors.Is(err, search.ErrLimitReached):
			out.Failure("\n Search stopped: %v", err)
			out.Printf("\n Number of states explored by %s = %d\n", sol.Algorithm, sol.Stats.Explored)
		default:
			out.Failure("\n %v", err)
		}
		return
	}

	out.Success("\n Solution found")
	out.Printf("\n Number of states explored by %s = %d\n", sol.Algorithm, sol.Stats.Explored)
	out.Printf("\n Number of steps in solution: %d\n", sol.Len())
	out.Println("\n Moves with respect to blank space, 0 ")
	out.Println("\n Start state, move = None ")

	indices := make([]int, 0, sol.Len())
	if sol.Algorithm == puzzle.AlgorithmDFS {
		indices = puzzle.SampleIndices(sol.Len(), cfg.MaxPrintedSteps)
	} else {
		for i := range sol.Len() {
			indices = append(indices, i)
		}
	}

	for _, i := range indices {
		step := sol.Path[i]
		if sol.Algorithm == puzzle.AlgorithmAStar {
			out.Printf("%s\n Step: %d , Move: %s , g_cost: %d + h: %d\n", rule(42), i, step.Move, step.G, step.H)
		} else {
			out.Printf("%s\n Step: %d , Move: %s\n", rule(32), i, step.Move)
		}
		out.Printf("%s", step.Board)
	}
}
