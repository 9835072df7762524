// Package core provides a thread-safe in-memory road graph with elevation
// annotations, the read-only query surface every route search is built on.
//
// The Graph G = (V,E) is:
//
//   - Directed by default (one-way streets); WithUndirected mirrors every segment.
//   - Elevation-annotated: each Node carries a finite Elevation and optional coordinates.
//   - Length-weighted: each Edge carries a finite, non-negative Length.
//   - Simple per ordered pair: a second edge from→to is rejected, so EdgeLength
//     is unambiguous ("first/only edge wins").
//   - Loop-tolerant on demand (WithLoops); searches never traverse a self-loop.
//   - Deterministic: Vertices() is sorted, Neighbors() keeps insertion order,
//     Edge IDs are monotonic ("e1", "e2", …).
//   - Guarded by separate sync.RWMutex for nodes (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention.
//
// Configuration Options (GraphOption):
//
//	– WithUndirected()
//	    AddEdge(a,b,l) also stores b→a with the same length.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// NodeOptions:
//
//	– WithCoordinates(lat, lon float64)
//
// Core Methods:
//
//	// Build
//	AddVertex(id string, elevation float64, opts ...NodeOption) error // O(1)
//	AddEdge(from, to string, length float64) (edgeID string, err error) // O(1)
//
//	// Query (Graph Accessor)
//	Neighbors(id string) ([]*Edge, error)          // O(d), insertion order
//	NeighborIDs(id string) ([]string, error)       // O(d)
//	ElevationOf(id string) (float64, error)        // O(1)
//	EdgeLength(from, to string) (float64, error)   // O(1), ErrEdgeNotFound
//	HasVertex(id string) bool / HasEdge(from, to string) bool
//	Node(id string) (Node, error)
//	Vertices() []string                            // O(V·log V)
//	Edges() []*Edge                                // O(V+E)
//	VertexCount() int / EdgeCount() int / Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length node ID
//	ErrVertexNotFound      – missing node
//	ErrEdgeNotFound        – missing edge
//	ErrNegativeLength      – negative, NaN or infinite length
//	ErrBadElevation        – NaN or infinite elevation
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge for the same ordered pair
//
// Searches only read the graph. Any number of them may run concurrently on
// one *Graph as long as nobody mutates it at the same time.
package core
