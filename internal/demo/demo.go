// Package demo narrates the demonstrations, printing every intermediate
// step of the algorithms the way a lecture walk-through would.
package demo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/internal/config"
	"github.com/IlikeChooros/go-aima/internal/logging"
	"github.com/IlikeChooros/go-aima/internal/render"
)

var ErrUnknownDemo = errors.New("unknown demonstration")

// Everything a demonstration needs to run
type Env struct {
	Config *config.Config
	Out    *render.Printer
	Logger *zap.Logger
}

func (e Env) logger() *zap.Logger {
	return logging.OrNop(e.Logger)
}

type Func func(ctx context.Context, env Env) error

type Demo struct {
	Name  string
	Short string
	Run   Func
}

var demos = []Demo{
	{Name: "vacuum", Short: "Reflex vacuum cleaner agent in a two room world", Run: Vacuum},
	{Name: "tictactoe", Short: "Tic-Tac-Toe games and an alpha-beta player", Run: TicTacToe},
	{Name: "bfs", Short: "Breadth-first traversal of a road map", Run: BFS},
	{Name: "dfs", Short: "Depth-first traversal of a road map", Run: DFS},
	{Name: "puzzle", Short: "n-puzzle solved with BFS, DFS and A*", Run: Puzzle},
	{Name: "alphabeta", Short: "Minimax with alpha-beta pruning on game trees", Run: AlphaBeta},
	{Name: "hillclimb", Short: "Hill-climbing search for maxima and minima", Run: HillClimb},
	{Name: "kb", Short: "Knowledge base of C program behaviour", Run: KB},
	{Name: "wumpus", Short: "Knowledge-based agent in the Wumpus world", Run: Wumpus},
}

func All() []Demo {
	return slices.Clone(demos)
}

func Lookup(name string) (Demo, error) {
	for _, d := range demos {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// Run every demonstration in order, stopping at the first failure
func RunAll(ctx context.Context, env Env) error {
	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		env.logger().Debug("demonstration started", zap.String("demo", d.Name))
		if err := d.Run(ctx, env); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
	}
	return nil
}

func rule(n int) string {
	return strings.Repeat("-", n)
}

// ['a', 'b']
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
