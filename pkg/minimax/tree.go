// Package minimax implements minimax search with alpha-beta pruning,
// both over explicit game trees and over games implementing GameOperations.
package minimax

import (
	"fmt"
	"math"
)

// Node of an explicit game tree, leaves carry the static value
type Node struct {
	Name     string  `yaml:"name" validate:"required"`
	Value    float64 `yaml:"value"`
	Children []*Node `yaml:"children" validate:"dive"`
}

func Leaf(name string, value float64) *Node {
	return &Node{Name: name, Value: value}
}

func Branch(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// Same as asking if the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Number of nodes in the subtree, including this one
func (n *Node) Count() int {
	count := 1
	for _, c := range n.Children {
		count += c.Count()
	}
	return count
}

// Height of the subtree, a single leaf has height 0
func (n *Node) Height() int {
	h := 0
	for _, c := range n.Children {
		h = max(h, c.Height()+1)
	}
	return h
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s(%g)", n.Name, n.Value)
	}
	return fmt.Sprintf("%s%v", n.Name, n.Children)
}

// Leaf (or depth cutoff) evaluation event
type LeafEvent struct {
	Node  *Node
	Value float64
}

// Raised when beta <= alpha, remaining children of Node are skipped
type PruneEvent struct {
	Node    *Node
	Alpha   float64
	Beta    float64
	Skipped int
}

// Final value of an inner node
type ResultEvent struct {
	Node       *Node
	Maximizing bool
	Value      float64
}

type Listener struct {
	onLeaf   func(LeafEvent)
	onPrune  func(PruneEvent)
	onResult func(ResultEvent)
}

func NewListener() Listener {
	return Listener{}
}

// Attach callback called for every evaluated leaf
func (l *Listener) OnLeaf(f func(LeafEvent)) *Listener {
	l.onLeaf = f
	return l
}

// Attach callback called on every cut-off
func (l *Listener) OnPrune(f func(PruneEvent)) *Listener {
	l.onPrune = f
	return l
}

// Attach callback called when an inner node's value is final
func (l *Listener) OnResult(f func(ResultEvent)) *Listener {
	l.onResult = f
	return l
}

// Statistics of a single alpha-beta run over an explicit tree
type TreeStats struct {
	Nodes    int
	Leaves   int
	Prunings int
	// Leaves of the tree never evaluated
	Skipped int
}

type AlphaBeta struct {
	listener Listener
	stats    TreeStats
}

func NewAlphaBeta() *AlphaBeta {
	return &AlphaBeta{}
}

func (ab *AlphaBeta) SetListener(listener Listener) {
	ab.listener = listener
}

func (ab *AlphaBeta) Stats() TreeStats {
	return ab.stats
}

// Compute the minimax value of the tree, root being the maximizing player
func (ab *AlphaBeta) Run(root *Node, depth int) float64 {
	ab.stats = TreeStats{}
	return ab.Search(root, depth, math.Inf(-1), math.Inf(1), true)
}

// Alpha-beta search from given node, alpha is the best value the maximizer can
// guarantee so far, beta the best for the minimizer
func (ab *AlphaBeta) Search(node *Node, depth int, alpha, beta float64, maximizing bool) float64 {
	ab.stats.Nodes++

	if depth == 0 || node.IsLeaf() {
		ab.stats.Leaves++
		if ab.listener.onLeaf != nil {
			ab.listener.onLeaf(LeafEvent{Node: node, Value: node.Value})
		}
		return node.Value
	}

	var best float64
	if maximizing {
		best = math.Inf(-1)
	} else {
		best = math.Inf(1)
	}

	for i, child := range node.Children {
		v := ab.Search(child, depth-1, alpha, beta, !maximizing)
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}

		if beta <= alpha {
			ab.stats.Prunings++
			skipped := 0
			for _, rest := range node.Children[i+1:] {
				skipped += countLeaves(rest)
			}
			ab.stats.Skipped += skipped
			if ab.listener.onPrune != nil {
				ab.listener.onPrune(PruneEvent{Node: node, Alpha: alpha, Beta: beta, Skipped: skipped})
			}
			break
		}
	}

	if ab.listener.onResult != nil {
		ab.listener.onResult(ResultEvent{Node: node, Maximizing: maximizing, Value: best})
	}
	return best
}

// Plain minimax without pruning, used to cross-check alpha-beta results
func Minimax(node *Node, depth int, maximizing bool) float64 {
	if depth == 0 || node.IsLeaf() {
		return node.Value
	}
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, child := range node.Children {
		v := Minimax(child, depth-1, !maximizing)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

func countLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	c := 0
	for _, child := range n.Children {
		c += countLeaves(child)
	}
	return c
}
