package graph

import "fmt"

// Visit of a single node during traversal
type Event struct {
	Node string
	// BFS: queue after the node's neighbours were enqueued, DFS: recursion path
	Frontier []string
	Depth    int
}

type VisitFunc func(Event)

func (g *Graph) checkStart(start string) error {
	if !g.Has(start) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}
	return nil
}

// Breadth-first traversal, returns nodes in visiting order
func (g *Graph) BFS(start string) ([]string, error) {
	return g.BFSWalk(start, nil)
}

// A node counts as visited when it is dequeued, so the queue may hold
// duplicates of nodes not yet visited
func (g *Graph) BFSWalk(start string, visit VisitFunc) ([]string, error) {
	if err := g.checkStart(start); err != nil {
		return nil, err
	}

	visited := make(map[string]bool, len(g.order))
	order := make([]string, 0, len(g.order))
	depth := map[string]int{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node] {
			continue
		}

		visited[node] = true
		order = append(order, node)
		for _, n := range g.adj[node] {
			if !visited[n] {
				queue = append(queue, n)
				if _, ok := depth[n]; !ok {
					depth[n] = depth[node] + 1
				}
			}
		}

		if visit != nil {
			visit(Event{Node: node, Frontier: append([]string(nil), queue...), Depth: depth[node]})
		}
	}
	return order, nil
}

// Depth-first (pre-order) traversal, returns nodes in visiting order
func (g *Graph) DFS(start string) ([]string, error) {
	return g.DFSWalk(start, nil)
}

func (g *Graph) DFSWalk(start string, visit VisitFunc) ([]string, error) {
	if err := g.checkStart(start); err != nil {
		return nil, err
	}

	visited := make(map[string]bool, len(g.order))
	order := make([]string, 0, len(g.order))
	path := make([]string, 0, len(g.order))
	g.dfs(start, visited, &order, path, visit)
	return order, nil
}

func (g *Graph) dfs(node string, visited map[string]bool, order *[]string, path []string, visit VisitFunc) {
	visited[node] = true
	*order = append(*order, node)
	path = append(path, node)
	if visit != nil {
		visit(Event{Node: node, Frontier: append([]string(nil), path...), Depth: len(path) - 1})
	}

	for _, n := range g.adj[node] {
		if !visited[n] {
			g.dfs(n, visited, order, path, visit)
		}
	}
}
