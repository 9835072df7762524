// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Node, and Edge types used by every
// route search, and provides thread-safe primitives for building and querying
// elevation-annotated road graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for nodes,
// muEdgeAdj for edges and adjacency), so a graph can be assembled from several
// goroutines and then queried concurrently by any number of searches.
//
// This file declares Node, Edge, Graph, GraphOption, NodeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - node ID is the empty string.
//	ErrVertexNotFound      - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrNegativeLength      - edge length is negative or NaN.
//	ErrBadElevation        - node elevation is NaN or infinite.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge between the same ordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided node has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent node.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeLength indicates an edge length below zero (or NaN).
	ErrNegativeLength = errors.New("core: edge length must be non-negative")

	// ErrBadElevation indicates a NaN or infinite node elevation.
	ErrBadElevation = errors.New("core: elevation must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Node represents an intersection (or any point of interest) in the graph.
//
// ID uniquely identifies this Node within its Graph. Elevation is the height
// above an arbitrary datum, in the same unit for every node. Coordinates are
// optional and never read by the search algorithms.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Elevation is the height of the node.
	Elevation float64

	// Lat and Lon are the optional geographic coordinates.
	Lat float64
	Lon float64

	// HasCoords reports whether Lat/Lon were supplied.
	HasCoords bool
}

// Edge represents a one-way road segment between two nodes.
//
// Each Edge has a unique ID, endpoints From→To and a non-negative Length.
// Undirected graphs store a second, mirrored Edge for the reverse direction.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Length is the traversal cost, in the same unit as the route budget.
	Length float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes AddEdge store both directions of every segment.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// WithLoops permits storing self-loops (edges from a node to itself).
// Searches always skip them; the option only exists so that snapshots of
// real road networks, which do contain loops, can be loaded verbatim.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// NodeOption configures properties of individual nodes when added.
type NodeOption func(*Node)

// WithCoordinates attaches a latitude/longitude pair to the node.
func WithCoordinates(lat, lon float64) NodeOption {
	return func(n *Node) {
		n.Lat = lat
		n.Lon = lon
		n.HasCoords = true
	}
}

// Graph is the core in-memory graph data structure.
//
// It is directed by default, never holds two edges for the same ordered
// (from,to) pair, and optionally stores self-loops.
// muVert protects the nodes map; muEdgeAdj protects the edges map and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	undirected bool // mirror every edge
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64           // atomic edge ID generator
	nodes      map[string]*Node // node ID → Node
	edges      map[string]*Edge // edge ID → Edge

	// adjacencyList[from][to] = edge; at most one edge per ordered pair.
	adjacencyList map[string]map[string]*Edge

	// out[from] lists outgoing edges in insertion order.
	out map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is directed and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:         make(map[string]*Node),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]*Edge),
		out:           make(map[string][]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
