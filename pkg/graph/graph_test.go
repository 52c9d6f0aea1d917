package graph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := FromAdjacency(DefaultAdjacency())
	require.NoError(t, err)
	return g
}

func TestBFS(t *testing.T) {
	g := defaultGraph(t)
	cases := map[string][]string{
		"Belagavi":   {"Belagavi", "Khanapur", "Hattargi", "Kittur", "Alnavar", "Sankeshwar", "Hukkeri", "Dharwad"},
		"Sankeshwar": {"Sankeshwar", "Hattargi", "Hukkeri", "Belagavi", "Khanapur", "Kittur", "Alnavar", "Dharwad"},
		"Dharwad":    {"Dharwad", "Alnavar", "Kittur", "Khanapur", "Belagavi", "Hattargi", "Sankeshwar", "Hukkeri"},
	}

	for start, want := range cases {
		got, err := g.BFS(start)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("BFS from %s mismatch (-want +got):\n%s", start, diff)
		}
	}
}

func TestDFS(t *testing.T) {
	g := defaultGraph(t)
	got, err := g.DFS("Belagavi")
	require.NoError(t, err)

	want := []string{"Belagavi", "Khanapur", "Alnavar", "Dharwad", "Kittur", "Hattargi", "Sankeshwar", "Hukkeri"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DFS mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkEvents(t *testing.T) {
	g := defaultGraph(t)

	var depths []int
	_, err := g.BFSWalk("Belagavi", func(e Event) { depths = append(depths, e.Depth) })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 1, 2, 2, 2, 2}, depths)

	var last Event
	_, err = g.DFSWalk("Belagavi", func(e Event) {
		if e.Node == "Kittur" {
			last = e
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Belagavi", "Khanapur", "Alnavar", "Dharwad", "Kittur"}, last.Frontier)
	assert.Equal(t, 4, last.Depth)
}

func TestUnknownNodes(t *testing.T) {
	g := defaultGraph(t)
	_, err := g.BFS("Mumbai")
	assert.True(t, errors.Is(err, ErrUnknownNode))
	_, err = g.DFS("")
	assert.True(t, errors.Is(err, ErrUnknownNode))

	_, err = FromAdjacency([]Adjacency{{Name: "A", Neighbours: []string{"B"}}})
	assert.True(t, errors.Is(err, ErrUnknownNode))

	_, err = FromAdjacency([]Adjacency{{Name: "A"}, {Name: "A"}})
	assert.True(t, errors.Is(err, ErrDuplicateNode))
}

func TestSingleNodeAndOrder(t *testing.T) {
	g := New()
	require.NoError(t, g.AddNode("solo"))
	order, err := g.BFS("solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, order)

	full := defaultGraph(t)
	assert.Equal(t, 8, full.Len())
	assert.Equal(t, "Sankeshwar", full.Nodes()[0])
	assert.Equal(t, []string{"Khanapur", "Hattargi", "Kittur"}, full.Neighbours("Belagavi"))
}
