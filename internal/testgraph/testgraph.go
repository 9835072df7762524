// Package testgraph builds the small hand-traced graphs shared by the
// search tests. Every fixture is deterministic and documented with the
// answers the searches are expected to produce.
package testgraph

import (
	"fmt"

	"github.com/katalvlaran/elevroute/core"
)

// node is a compact fixture description.
type node struct {
	id   string
	elev float64
}

// edge is a compact fixture description.
type edge struct {
	from, to string
	length   float64
}

func build(nodes []node, edges []edge, opts ...core.GraphOption) *core.Graph {
	g := core.NewGraph(opts...)
	for _, n := range nodes {
		if err := g.AddVertex(n.id, n.elev); err != nil {
			panic(fmt.Sprintf("testgraph: AddVertex(%s): %v", n.id, err))
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, e.length); err != nil {
			panic(fmt.Sprintf("testgraph: AddEdge(%s,%s): %v", e.from, e.to, err))
		}
	}

	return g
}

// FiveNode returns the five-node scenario graph:
//
//	elevations: 0=10 1=30 2=15 3=50 4=20
//	1→0 (10)  0→4 (15)    shortest 1→4: [1 0 4], length 25, gain 10
//	1→2 (12)  2→4 (20)    [1 2 4], length 32, gain 5  (lowest gain)
//	1→3 (20)  3→4 (15)    [1 3 4], length 35, gain 20 (highest gain)
//
// Node 4 has no outgoing edges, so nothing is reachable from it.
func FiveNode() *core.Graph {
	return build(
		[]node{{"0", 10}, {"1", 30}, {"2", 15}, {"3", 50}, {"4", 20}},
		[]edge{
			{"1", "0", 10}, {"0", "4", 15},
			{"1", "2", 12}, {"2", "4", 20},
			{"1", "3", 20}, {"3", "4", 15},
		},
	)
}

// GreedyTrap returns a graph on which first-settle minimization fails:
//
//	elevations: S=0 A=0 B=5 E=0
//	S→A (10)  S→B (1)  B→A (1)  A→E (10)
//
// With tolerance 0 the budget is 12 and only [S B A E] fits. Minimizing gain
// settles A through the zero-gain but long edge S→A first, after which A→E
// exceeds the budget and B→A targets a settled node: the priority searches
// report no route, while exhaustive search finds [S B A E].
func GreedyTrap() *core.Graph {
	return build(
		[]node{{"S", 0}, {"A", 0}, {"B", 5}, {"E", 0}},
		[]edge{{"S", "A", 10}, {"S", "B", 1}, {"B", "A", 1}, {"A", "E", 10}},
	)
}

// Detour returns a graph on which first-settle minimization ends up worse
// than the shortest path:
//
//	elevations: S=0 x=3 a=0 E=0 y=10
//	S→x (1)  x→a (1)  a→E (1)    shortest [S x a E], length 3, gain 3
//	S→a (5)  S→y (2)  y→E (2)    [S y E], length 4, gain 10
//
// With tolerance 80 the budget is 5.4. Minimizing gain settles a through
// S→a (gain 0, length 5); a→E then exceeds the budget and x→a targets a
// settled node, so the priority searches reach E only through y.
func Detour() *core.Graph {
	return build(
		[]node{{"S", 0}, {"x", 3}, {"a", 0}, {"E", 0}, {"y", 10}},
		[]edge{
			{"S", "x", 1}, {"x", "a", 1}, {"a", "E", 1},
			{"S", "a", 5}, {"S", "y", 2}, {"y", "E", 2},
		},
	)
}

// Disconnected returns two components {a,b} and {c,d} joined by nothing.
func Disconnected() *core.Graph {
	return build(
		[]node{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}},
		[]edge{{"a", "b", 1}, {"c", "d", 1}},
	)
}

// Looped returns a two-node graph whose start carries a self-loop:
//
//	x=0 y=10; x→x (0), x→y (4)
func Looped() *core.Graph {
	return build(
		[]node{{"x", 0}, {"y", 10}},
		[]edge{{"x", "x", 0}, {"x", "y", 4}},
		core.WithLoops(),
	)
}
