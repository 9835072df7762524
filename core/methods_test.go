// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elevroute/core"
)

// newTriangle builds A→B(1), B→C(2), A→C(5) with elevations 10, 20, 5.
func newTriangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	require.NoError(t, g.AddVertex("A", 10))
	require.NoError(t, g.AddVertex("B", 20))
	require.NoError(t, g.AddVertex("C", 5))
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 5)
	require.NoError(t, err)

	return g
}

func TestGraph_AddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex("", 0), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex("X", math.NaN()), core.ErrBadElevation)
	assert.ErrorIs(t, g.AddVertex("X", math.Inf(1)), core.ErrBadElevation)
	assert.False(t, g.HasVertex("X"))
	assert.False(t, g.HasVertex(""))
}

func TestGraph_AddVertex_UpdateKeepsEdges(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddVertex("A", 42, core.WithCoordinates(42.36, -71.06)))

	n, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, 42.0, n.Elevation)
	assert.True(t, n.HasCoords)
	assert.Equal(t, 42.36, n.Lat)
	assert.True(t, g.HasEdge("A", "B"), "re-adding a node must not drop its edges")
	assert.Equal(t, 3, g.VertexCount())
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0))
	require.NoError(t, g.AddVertex("B", 0))

	_, err := g.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "Z", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.AddEdge("A", "B", -1)
	assert.ErrorIs(t, err, core.ErrNegativeLength)

	_, err = g.AddEdge("A", "B", math.NaN())
	assert.ErrorIs(t, err, core.ErrNegativeLength)

	_, err = g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	_, err = g.AddEdge("A", "B", 7)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	l, err := g.EdgeLength("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, l, "first edge wins")
}

func TestGraph_Directed_EdgeLength(t *testing.T) {
	g := newTriangle(t)

	l, err := g.EdgeLength("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 2.0, l)

	_, err = g.EdgeLength("C", "B")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("C", "B"))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_Undirected_Mirrors(t *testing.T) {
	g := newTriangle(t, core.WithUndirected())

	assert.True(t, g.Undirected())
	assert.True(t, g.HasEdge("C", "B"))
	l, err := g.EdgeLength("C", "A")
	require.NoError(t, err)
	assert.Equal(t, 5.0, l)
	assert.Equal(t, 6, g.EdgeCount())

	// The mirror occupies the reverse pair.
	_, err = g.AddEdge("B", "A", 9)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestGraph_Neighbors_InsertionOrder(t *testing.T) {
	g := newTriangle(t)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Equal(t, "B", nbs[0].To)
	assert.Equal(t, "C", nbs[1].To)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)

	nbs, err = g.Neighbors("C")
	require.NoError(t, err)
	assert.Empty(t, nbs)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_Neighbors_ReturnsCopy(t *testing.T) {
	g := newTriangle(t)
	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	nbs[0] = nil

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.NotNil(t, again[0])
}

func TestGraph_ElevationOf(t *testing.T) {
	g := newTriangle(t)
	e, err := g.ElevationOf("B")
	require.NoError(t, err)
	assert.Equal(t, 20.0, e)

	_, err = g.ElevationOf("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_VerticesEdgesStats(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id, 1))
	}
	_, err := g.AddEdge("a", "a", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)

	st := g.Stats()
	assert.Equal(t, 3, st.VertexCount)
	assert.Equal(t, 2, st.EdgeCount)
	assert.Equal(t, 1, st.LoopCount)
	assert.True(t, st.AllowsLoops)
	assert.False(t, st.Undirected)
}
