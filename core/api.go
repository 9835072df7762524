// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only configuration getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Undirected  bool // AddEdge mirrors segments
	AllowsLoops bool // self-loops may be stored
	VertexCount int  // number of nodes
	EdgeCount   int  // number of stored (directed) edges, mirrors included
	LoopCount   int  // number of stored self-loops
}

// Undirected reports whether AddEdge stores both directions of a segment.
// Complexity: O(1).
func (g *Graph) Undirected() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.undirected
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic, read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and node count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count and count loops, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously (reduces contention and avoids lock-order hazards).
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Undirected:  g.undirected,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.nodes),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
