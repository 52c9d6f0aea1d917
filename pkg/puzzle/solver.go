package puzzle

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/pkg/search"
)

var (
	ErrNotFound         = errors.New("solution could not be found")
	ErrDepthExceeded    = errors.New("maximum search depth exceeded")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

type Algorithm string

const (
	AlgorithmBFS   Algorithm = "bfs"
	AlgorithmDFS   Algorithm = "dfs"
	AlgorithmAStar Algorithm = "astar"
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "BFS"
	case AlgorithmDFS:
		return "DFS"
	case AlgorithmAStar:
		return "A*"
	}
	return string(a)
}

// Depth-first search gives up below this depth
const DefaultDepthLimit = 80000

// How often progress is logged, in explored states
const logInterval = 50000

// Single state of a solution path, G is the number of moves from the
// initial board and H its Manhattan distance to the goal
type Step struct {
	Board State
	Move  Move
	G     int
	H     int
}

type Solution struct {
	Algorithm Algorithm
	Path      []Step
	Stats     search.Stats
}

// Number of states on the path, initial and goal included
func (s Solution) Len() int {
	return len(s.Path)
}

func (s Solution) Moves() []Move {
	if len(s.Path) == 0 {
		return nil
	}
	moves := make([]Move, 0, len(s.Path)-1)
	for _, st := range s.Path[1:] {
		moves = append(moves, st.Move)
	}
	return moves
}

// Indices of at most about maxSteps evenly spaced steps, the goal always included
func SampleIndices(n, maxSteps int) []int {
	if n <= 0 {
		return nil
	}
	stride := max(1, n/max(maxSteps, 1))
	idx := make([]int, 0, maxSteps+1)
	for i := 0; i < n; i += stride {
		idx = append(idx, i)
	}
	if idx[len(idx)-1] != n-1 {
		idx = append(idx, n-1)
	}
	return idx
}

type node struct {
	state  State
	move   Move
	g      int
	parent *node
}

func (n *node) path(h Manhattan) []Step {
	var rev []Step
	for cur := n; cur != nil; cur = cur.parent {
		rev = append(rev, Step{Board: cur.state, Move: cur.move, G: cur.g, H: h.Distance(cur.state)})
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

type Solver struct {
	Limiter    *search.Limiter
	DepthLimit int
	logger     *zap.Logger
}

func NewSolver() *Solver {
	return &Solver{
		Limiter:    search.NewLimiter(),
		DepthLimit: DefaultDepthLimit,
		logger:     zap.NewNop(),
	}
}

func (s *Solver) SetLimits(limits *search.Limits) *Solver {
	s.Limiter.SetLimits(limits)
	return s
}

func (s *Solver) SetContext(ctx context.Context) *Solver {
	s.Limiter.SetContext(ctx)
	return s
}

func (s *Solver) SetDepthLimit(depth int) *Solver {
	if depth <= 0 {
		depth = DefaultDepthLimit
	}
	s.DepthLimit = depth
	return s
}

func (s *Solver) SetLogger(logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
	return s
}

func (s *Solver) Solve(alg Algorithm, initial, goal State) (Solution, error) {
	switch alg {
	case AlgorithmBFS:
		return s.BFS(initial, goal)
	case AlgorithmDFS:
		return s.DFS(initial, goal)
	case AlgorithmAStar:
		return s.AStar(initial, goal)
	}
	return Solution{Algorithm: alg}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

func (s *Solver) begin(alg Algorithm, initial, goal State) (Solution, error) {
	s.Limiter.Reset()
	sol := Solution{Algorithm: alg}
	if err := checkProblem(initial, goal); err != nil {
		return sol, err
	}
	s.logger.Debug("search started",
		zap.Stringer("algorithm", alg),
		zap.String("initial", initial.Tuple()),
		zap.String("goal", goal.Tuple()),
	)
	return sol, nil
}

func (s *Solver) finish(sol *Solution, last *node, h Manhattan, err error) (Solution, error) {
	sol.Stats.TimeMs = int(s.Limiter.Elapsed())
	if last != nil {
		sol.Path = last.path(h)
	}

	fields := []zap.Field{
		zap.Stringer("algorithm", sol.Algorithm),
		zap.Int("explored", sol.Stats.Explored),
		zap.Int("generated", sol.Stats.Generated),
		zap.Int("max_depth", sol.Stats.MaxDepth),
		zap.Int("time_ms", sol.Stats.TimeMs),
	}
	if err != nil {
		s.logger.Debug("search failed", append(fields, zap.Error(err))...)
		return *sol, err
	}
	s.logger.Debug("search finished", append(fields, zap.Int("steps", sol.Len()))...)
	return *sol, nil
}

// Poll the limiter, on a stop returns the error to abort with
func (s *Solver) checkLimits(sol *Solution, depth int) error {
	if s.Limiter.Ok(uint32(sol.Stats.Explored), uint32(depth)) {
		if sol.Stats.Explored > 0 && sol.Stats.Explored%logInterval == 0 {
			s.logger.Debug("searching", zap.Int("explored", sol.Stats.Explored), zap.Int("depth", depth))
		}
		return nil
	}
	sol.Stats.StopReason = s.Limiter.EvaluateStopReason(uint32(sol.Stats.Explored), uint32(depth))
	return search.LimitError(sol.Stats.StopReason)
}

// Breadth-first search, the goal test and explored marking happen on dequeue
func (s *Solver) BFS(initial, goal State) (Solution, error) {
	sol, err := s.begin(AlgorithmBFS, initial, goal)
	if err != nil {
		return sol, err
	}
	h := NewManhattan(goal)

	explored := make(map[State]struct{})
	queue := []*node{{state: initial}}
	for len(queue) > 0 {
		cur := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if cur.state == goal {
			return s.finish(&sol, cur, h, nil)
		}
		if _, ok := explored[cur.state]; ok {
			continue
		}
		if err := s.checkLimits(&sol, cur.g); err != nil {
			return s.finish(&sol, nil, h, err)
		}

		explored[cur.state] = struct{}{}
		sol.Stats.Visit(cur.g)
		for _, succ := range cur.state.Successors() {
			if _, ok := explored[succ.State]; !ok {
				queue = append(queue, &node{state: succ.State, move: succ.Move, g: cur.g + 1, parent: cur})
				sol.Stats.Generated++
			}
		}
	}
	return s.finish(&sol, nil, h, ErrNotFound)
}

type dfsFrame struct {
	node  *node
	succ  []Successor
	index int
}

// Depth-first search, the goal test and explored marking happen when a state
// is entered. Recursion is replaced by an explicit stack of frames, which
// keeps the order of the recursive formulation.
func (s *Solver) DFS(initial, goal State) (Solution, error) {
	sol, err := s.begin(AlgorithmDFS, initial, goal)
	if err != nil {
		return sol, err
	}
	h := NewManhattan(goal)
	explored := make(map[State]struct{})

	// Returns true when the goal is entered
	enter := func(n *node) bool {
		sol.Stats.Calls++
		if n.state == goal {
			return true
		}
		explored[n.state] = struct{}{}
		sol.Stats.Visit(n.g)
		return false
	}

	root := &node{state: initial}
	if enter(root) {
		return s.finish(&sol, root, h, nil)
	}

	stack := []dfsFrame{{node: root, succ: initial.Successors()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.index >= len(top.succ) {
			stack = stack[:len(stack)-1]
			continue
		}

		succ := top.succ[top.index]
		top.index++
		if _, ok := explored[succ.State]; ok {
			continue
		}

		if len(stack)+1 > s.DepthLimit {
			err := fmt.Errorf("%w: %w (%d calls)", ErrNotFound, ErrDepthExceeded, sol.Stats.Calls)
			return s.finish(&sol, nil, h, err)
		}
		if err := s.checkLimits(&sol, top.node.g+1); err != nil {
			return s.finish(&sol, nil, h, err)
		}

		child := &node{state: succ.State, move: succ.Move, g: top.node.g + 1, parent: top.node}
		sol.Stats.Generated++
		if enter(child) {
			return s.finish(&sol, child, h, nil)
		}
		stack = append(stack, dfsFrame{node: child, succ: child.state.Successors()})
	}
	return s.finish(&sol, nil, h, ErrNotFound)
}

type aStarItem struct {
	node *node
	f, h int
	seq  int
}

type aStarQueue []*aStarItem

func (q aStarQueue) Len() int { return len(q) }

// Lower f first, then lower h, then insertion order
func (q aStarQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q aStarQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *aStarQueue) Push(x any) {
	*q = append(*q, x.(*aStarItem))
}

func (q *aStarQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// A* with f = g + Manhattan distance, states are marked explored when popped
func (s *Solver) AStar(initial, goal State) (Solution, error) {
	sol, err := s.begin(AlgorithmAStar, initial, goal)
	if err != nil {
		return sol, err
	}
	h := NewManhattan(goal)

	seq := 0
	open := &aStarQueue{}
	h0 := h.Distance(initial)
	heap.Push(open, &aStarItem{node: &node{state: initial}, f: h0, h: h0, seq: seq})
	explored := make(map[State]struct{})

	for open.Len() > 0 {
		item := heap.Pop(open).(*aStarItem)
		cur := item.node
		if cur.state == goal {
			return s.finish(&sol, cur, h, nil)
		}
		if _, ok := explored[cur.state]; ok {
			continue
		}
		if err := s.checkLimits(&sol, cur.g); err != nil {
			return s.finish(&sol, nil, h, err)
		}

		explored[cur.state] = struct{}{}
		sol.Stats.Visit(cur.g)
		for _, succ := range cur.state.Successors() {
			if _, ok := explored[succ.State]; ok {
				continue
			}
			seq++
			sh := h.Distance(succ.State)
			child := &node{state: succ.State, move: succ.Move, g: cur.g + 1, parent: cur}
			heap.Push(open, &aStarItem{node: child, f: child.g + sh, h: sh, seq: seq})
			sol.Stats.Generated++
		}
	}
	return s.finish(&sol, nil, h, ErrNotFound)
}

func BFS(initial, goal State) (Solution, error) {
	return NewSolver().BFS(initial, goal)
}

func DFS(initial, goal State) (Solution, error) {
	return NewSolver().DFS(initial, goal)
}

func AStar(initial, goal State) (Solution, error) {
	return NewSolver().AStar(initial, goal)
}
