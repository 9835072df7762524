// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() returns outgoing edges in insertion order.
//   - NeighborIDs() returns IDs in the same order as Neighbors().
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks.
//   - Helpers are called only under appropriate write locks by mutating code.

package core

import "fmt"

// Neighbors returns all outgoing edges of node id.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert read lock and muEdgeAdj read lock (in that order) for a consistent snapshot.
//   - Stage 3: Validate node existence (ErrVertexNotFound).
//   - Stage 4: Copy the insertion-ordered outgoing list.
//
// Behavior highlights:
//   - Deterministic ordering: insertion order, identical across calls.
//   - Self-loops are returned when stored; consumers skip them.
//   - Returns pointers to live catalog edges (read-only by convention), in a fresh slice.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Acquire locks in the same order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	src := g.out[id]
	out := make([]*Edge, len(src))
	copy(out, src)

	return out, nil
}

// NeighborIDs returns the destination IDs of node id's outgoing edges,
// in the same order as Neighbors.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// ensureAdjacency makes sure the adjacency bucket for from exists.
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, from string) {
	if _, ok := g.adjacencyList[from]; !ok {
		g.adjacencyList[from] = make(map[string]*Edge)
	}
}
