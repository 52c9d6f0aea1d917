package demo

import (
	"context"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/pkg/minimax"
)

func AlphaBeta(ctx context.Context, env Env) error {
	out := env.Out
	out.Banner("Alpha-beta pruning")

	listener := minimax.NewListener()
	listener.
		OnLeaf(func(ev minimax.LeafEvent) {
			out.Printf("\n %s, value = %g\n", ev.Node.Name, ev.Value)
		}).
		OnPrune(func(ev minimax.PruneEvent) {
			out.Failure("\n Alpha-beta pruning, beta %g <= alpha %g", ev.Beta, ev.Alpha)
		}).
		OnResult(func(ev minimax.ResultEvent) {
			if ev.Maximizing {
				out.Printf("\n %s, max player, max_eval = %g\n", ev.Node.Name, ev.Value)
			} else {
				out.Printf("\n %s, min player, min_eval = %g\n", ev.Node.Name, ev.Value)
			}
			out.Printf(" %s\n", rule(42))
		})

	ab := minimax.NewAlphaBeta()
	ab.SetListener(listener)

	for i, tree := range env.Config.AlphaBeta.Trees {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			out.Printf("%s\n Run of another example\n %s\n", rule(42), rule(42))
		}
		out.Header("\n%s tree, %d nodes, searched to depth %d", tree.Name, tree.Root.Count(), tree.Depth)

		value := ab.Run(tree.Root, tree.Depth)
		stats := ab.Stats()
		out.Success("\n The optimal value is: %g", value)
		out.Muted(" %d leaves evaluated, %d prunings, %d leaves never visited", stats.Leaves, stats.Prunings, stats.Skipped)

		env.logger().Debug("tree searched",
			zap.String("tree", tree.Name),
			zap.Float64("value", value),
			zap.Int("nodes", stats.Nodes),
			zap.Int("prunings", stats.Prunings),
		)
	}
	return nil
}
