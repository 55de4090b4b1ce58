package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_SymmetricAdjacency(t *testing.T) {
	g, err := NewGraph([]string{"A", "B"}, []Edge{
		{From: "A", To: "B", Distance: 3, Traffic: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []Neighbor{{ID: "B", Distance: 3, Traffic: 2}}, g.Neighbors("A"))
	assert.Equal(t, []Neighbor{{ID: "A", Distance: 3, Traffic: 2}}, g.Neighbors("B"))
}

func TestNewGraph_UnknownEndpoint(t *testing.T) {
	_, err := NewGraph([]string{"A"}, []Edge{
		{From: "A", To: "Z", Distance: 1, Traffic: 1},
	})
	require.ErrorIs(t, err, ErrUnknownNode)
}

func TestNewGraph_NonPositiveWeights(t *testing.T) {
	for _, e := range []Edge{
		{From: "A", To: "B", Distance: 0, Traffic: 1},
		{From: "A", To: "B", Distance: 1, Traffic: -1},
	} {
		_, err := NewGraph([]string{"A", "B"}, []Edge{e})
		assert.ErrorIs(t, err, ErrBadEdgeWeight)
	}
}

func TestNewGraph_DuplicateNodeIDs(t *testing.T) {
	g, err := NewGraph([]string{"A", "A", "B"}, nil)
	require.NoError(t, err)
	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("B"))
}

// Re-declaring an edge overwrites its attributes (even with the
// endpoints flipped) but keeps the original adjacency position.
func TestNewGraph_DuplicateEdgeLastWins(t *testing.T) {
	g, err := NewGraph([]string{"A", "B", "C"}, []Edge{
		{From: "A", To: "B", Distance: 4, Traffic: 1},
		{From: "A", To: "C", Distance: 9, Traffic: 9},
		{From: "B", To: "A", Distance: 7, Traffic: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []Neighbor{
		{ID: "B", Distance: 7, Traffic: 2},
		{ID: "C", Distance: 9, Traffic: 9},
	}, g.Neighbors("A"))
	assert.Equal(t, []Neighbor{{ID: "A", Distance: 7, Traffic: 2}}, g.Neighbors("B"))
}

func TestNewGraph_NeighborsOfIsolatedNode(t *testing.T) {
	g, err := NewGraph([]string{"A", "B"}, nil)
	require.NoError(t, err)
	assert.Empty(t, g.Neighbors("A"))
	assert.Empty(t, g.Neighbors("missing"))
}
