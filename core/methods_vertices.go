// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Node catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a node with the given elevation.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID) and finite elevation (ErrBadElevation).
//   - Stage 2: Apply node options (coordinates).
//   - Stage 3: Under muVert write lock, insert or overwrite the node record.
//   - Stage 4: Under muEdgeAdj write lock, bootstrap adjacency buckets.
//
// Behavior highlights:
//   - Re-adding an existing ID updates its elevation/coordinates but keeps its edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrBadElevation: if elevation is NaN or ±Inf.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across node/edge code paths.
func (g *Graph) AddVertex(id string, elevation float64, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(elevation) || math.IsInf(elevation, 0) {
		return fmt.Errorf("%w: node %q elevation=%v", ErrBadElevation, id, elevation)
	}

	n := &Node{ID: id, Elevation: elevation}
	for _, opt := range opts {
		opt(n)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.nodes[id] = n

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node record for id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the node does not exist.
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return *n, nil
}

// ElevationOf returns the elevation of node id.
//
// Errors:
//   - ErrVertexNotFound (wrapped with the ID) if the node does not exist.
//
// Complexity: O(1).
func (g *Graph) ElevationOf(id string) (float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return n.Elevation, nil
}

// Vertices returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.nodes)
}
