package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicateNode = errors.New("duplicate node")
)

// Node name with its ordered adjacency list
type Adjacency struct {
	Name       string   `yaml:"name" validate:"required"`
	Neighbours []string `yaml:"neighbours" validate:"dive,required"`
}

// Undirected or directed graph given by adjacency lists, insertion order of
// nodes and neighbours is preserved and drives traversal order
type Graph struct {
	order []string
	adj   map[string][]string
}

func New() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// Build and validate a graph, every neighbour must be a node of the graph
func FromAdjacency(lists []Adjacency) (*Graph, error) {
	g := New()
	for _, l := range lists {
		if err := g.AddNode(l.Name, l.Neighbours...); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) AddNode(name string, neighbours ...string) error {
	if _, ok := g.adj[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	g.order = append(g.order, name)
	g.adj[name] = slices.Clone(neighbours)
	return nil
}

// Check that adjacency lists only name known nodes
func (g *Graph) Validate() error {
	for _, name := range g.order {
		for _, n := range g.adj[name] {
			if _, ok := g.adj[n]; !ok {
				return fmt.Errorf("%w: %q in the adjacency list of %q", ErrUnknownNode, n, name)
			}
		}
	}
	return nil
}

func (g *Graph) Has(name string) bool {
	_, ok := g.adj[name]
	return ok
}

func (g *Graph) Nodes() []string {
	return slices.Clone(g.order)
}

func (g *Graph) Neighbours(name string) []string {
	return slices.Clone(g.adj[name])
}

func (g *Graph) Len() int {
	return len(g.order)
}

// The example road map around Belagavi
func DefaultAdjacency() []Adjacency {
	return []Adjacency{
		{Name: "Sankeshwar", Neighbours: []string{"Hattargi", "Hukkeri"}},
		{Name: "Hukkeri", Neighbours: []string{"Hattargi", "Sankeshwar"}},
		{Name: "Hattargi", Neighbours: []string{"Belagavi", "Sankeshwar", "Hukkeri"}},
		{Name: "Belagavi", Neighbours: []string{"Khanapur", "Hattargi", "Kittur"}},
		{Name: "Khanapur", Neighbours: []string{"Alnavar", "Belagavi"}},
		{Name: "Kittur", Neighbours: []string{"Dharwad", "Belagavi"}},
		{Name: "Alnavar", Neighbours: []string{"Dharwad", "Khanapur"}},
		{Name: "Dharwad", Neighbours: []string{"Alnavar", "Kittur"}},
	}
}
