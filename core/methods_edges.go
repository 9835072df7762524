// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeLength/Edges/EdgeCount.
//       Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (monotonic Edge.ID sequence).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a directed edge from→to with the given length. In an
// undirected graph the mirrored edge to→from is created as well and the ID of
// the forward edge is returned.
//
// Steps:
//  1. Validate IDs, length, loops.
//  2. Verify both endpoints exist (every edge references known nodes).
//  3. Lock muEdgeAdj, check the single-edge-per-pair constraint.
//  4. Generate eid atomically, store and link adjacency.
//  5. If undirected and from!=to, store the mirror.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrNegativeLength,
//     ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, length float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(length) || length < 0 || math.IsInf(length, 0) {
		return "", fmt.Errorf("%w: edge %s→%s length=%v", ErrNegativeLength, from, to, length)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	// 2) Endpoints must already be present.
	if !g.HasVertex(from) {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacencyList[from][to]; dup {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}
	if g.undirected && from != to {
		if _, dup := g.adjacencyList[to][from]; dup {
			return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, to, from)
		}
	}

	// 4) Store and link adjacency
	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Length: length}
	linkEdge(g, e)

	// 5) Mirror undirected
	if g.undirected && from != to {
		linkEdge(g, &Edge{ID: nextEdgeID(g), From: to, To: from, Length: length})
	}

	return e.ID, nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[from][to]

	return ok
}

// EdgeLength returns the length of the edge from→to.
//
// Errors:
//   - ErrEdgeNotFound (wrapped with both endpoints) if no such edge exists.
//
// Complexity: O(1).
func (g *Graph) EdgeLength(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.adjacencyList[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return e.Length, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(V + E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for i := uint64(1); i <= atomic.LoadUint64(&g.nextEdgeID); i++ {
		if e, ok := g.edges[formatEdgeID(i)]; ok {
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns total number of stored edges (mirrors included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// linkEdge stores e in the catalog and both adjacency views.
// Caller must hold muEdgeAdj for writing.
func linkEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	ensureAdjacency(g, e.From)
	g.adjacencyList[e.From][e.To] = e
	g.out[e.From] = append(g.out[e.From], e)
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	return formatEdgeID(atomic.AddUint64(&g.nextEdgeID, 1))
}

// formatEdgeID renders sequence number n as an edge ID without fmt allocations.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
