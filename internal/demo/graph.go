package demo

import (
	"context"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/pkg/graph"
)

type walkFunc func(g *graph.Graph, start string, visit graph.VisitFunc) ([]string, error)

func BFS(ctx context.Context, env Env) error {
	return traverse(env, "Breadth-first search", "BFS", env.Config.Graph.BFSStarts, (*graph.Graph).BFSWalk)
}

func DFS(ctx context.Context, env Env) error {
	return traverse(env, "Depth-first search", "DFS", env.Config.Graph.DFSStarts, (*graph.Graph).DFSWalk)
}

func traverse(env Env, title, name string, starts []string, walk walkFunc) error {
	g, err := graph.FromAdjacency(env.Config.Graph.Nodes)
	if err != nil {
		return err
	}

	logger := env.logger()
	env.Out.Banner(title)
	for _, start := range starts {
		order, err := walk(g, start, func(ev graph.Event) {
			logger.Debug("visit",
				zap.String("node", ev.Node),
				zap.Int("depth", ev.Depth),
				zap.Strings("frontier", ev.Frontier),
			)
		})
		if err != nil {
			return err
		}
		env.Out.Printf("\n%s traversal starting from '%s': \n%s\n", name, start, quoteList(order))
	}
	return nil
}
