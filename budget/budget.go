// Package budget derives the length ceiling a constrained route search may
// use: the plain shortest-path length between start and end, stretched by a
// tolerance percentage.
//
// The plain shortest path comes from a distance-only Dijkstra with lazy
// decrease-key. It ignores elevation entirely, skips self-loops and stops as
// soon as the destination is settled.
//
// Guarantee: for tolerance ≥ 0 the ceiling is never below the shortest
// length, so the plain shortest path is always a feasible route.
//
// Errors:
//
//   - search.ErrInvalidArgument  nil graph, unknown node, negative or NaN tolerance.
//   - search.ErrNoRoute          end is not reachable from start.
package budget

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/path"
	"github.com/katalvlaran/elevroute/search"
)

// MaxLength returns shortest(start, end) * (1 + tolerance/100).
//
// Complexity: O((V + E) log V).
func MaxLength(g *core.Graph, start, end string, tolerance float64) (float64, error) {
	if math.IsNaN(tolerance) || tolerance < 0 {
		return 0, fmt.Errorf("%w: tolerance must be ≥ 0, got %v", search.ErrInvalidArgument, tolerance)
	}

	_, shortest, err := ShortestPath(g, start, end)
	if err != nil {
		return 0, err
	}

	return Stretch(shortest, tolerance), nil
}

// Stretch applies a tolerance percentage to a length.
func Stretch(length, tolerance float64) float64 {
	return length * (1 + tolerance/100)
}

// ForOptions returns the ceiling a search configured by cfg runs under: the
// precomputed cfg.MaxLength when set, otherwise MaxLength with cfg.Tolerance.
func ForOptions(g *core.Graph, start, end string, cfg search.Options) (float64, error) {
	if cfg.HasMaxLength {
		return cfg.MaxLength, nil
	}

	return MaxLength(g, start, end, cfg.Tolerance)
}

// ShortestPath returns the plain (distance-only) shortest path from start to
// end and its length. start == end yields [start] with length 0.
func ShortestPath(g *core.Graph, start, end string) (path.Path, float64, error) {
	// 1) Validate inputs before any work.
	if err := search.CheckEndpoints(g, start, end); err != nil {
		return nil, 0, err
	}
	if start == end {
		return path.Path{start}, 0, nil
	}

	// 2) Prepare per-call state.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		dist:    make(map[string]float64, V),
		prev:    make(path.PredecessorMap, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 3) Run until end is settled or the heap drains.
	r.init(start)
	if err := r.process(end); err != nil {
		return nil, 0, err
	}
	if !r.visited[end] {
		return nil, 0, fmt.Errorf("%w: %s→%s", search.ErrNoRoute, start, end)
	}

	p, err := path.Reconstruct(r.prev, start, end)
	if err != nil {
		return nil, 0, fmt.Errorf("budget: %w", err)
	}

	return p, r.dist[end], nil
}

// runner holds the mutable state for a single shortest-path execution.
type runner struct {
	g       *core.Graph
	dist    map[string]float64 // best known distance; absent means +∞
	prev    path.PredecessorMap
	visited map[string]bool // finalized vertices
	pq      nodePQ
	seq     uint64
}

// init seeds the heap with the source at distance zero.
func (r *runner) init(source string) {
	r.dist[source] = 0
	r.prev[source] = path.None
	heap.Init(&r.pq)
	r.push(source, 0)
}

func (r *runner) push(id string, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// process pops vertices in distance order and relaxes their edges.
func (r *runner) process(target string) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves neighbor distances through u. Assumes dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("budget: neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.To
		if v == u || r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Length
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64 // insertion order; equal distances pop first-in first-out
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
