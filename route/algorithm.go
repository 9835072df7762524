package route

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/elevroute/astar"
	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/dijkstra"
	"github.com/katalvlaran/elevroute/exhaustive"
	"github.com/katalvlaran/elevroute/search"
)

// Algorithm is one interchangeable route search.
type Algorithm interface {
	// Name returns the registry key ("dijkstra", "astar", "exhaustive").
	Name() string

	// Route searches from start to end under opts.
	Route(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error)
}

// algorithmFunc adapts a package-level search function to Algorithm.
type algorithmFunc struct {
	name string
	fn   func(*core.Graph, string, string, ...search.Option) (*search.Result, error)
}

func (a algorithmFunc) Name() string { return a.name }

func (a algorithmFunc) Route(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error) {
	return a.fn(g, start, end, opts...)
}

// The three built-in searches.
var (
	ConstrainedDijkstra Algorithm = algorithmFunc{name: "dijkstra", fn: dijkstra.Route}
	ConstrainedAStar    Algorithm = algorithmFunc{name: "astar", fn: astar.Route}
	BoundedExhaustive   Algorithm = algorithmFunc{name: "exhaustive", fn: exhaustive.Route}
)

var registry = map[string]Algorithm{
	ConstrainedDijkstra.Name(): ConstrainedDijkstra,
	ConstrainedAStar.Name():    ConstrainedAStar,
	BoundedExhaustive.Name():   BoundedExhaustive,
	"a*":                       ConstrainedAStar,
	"dfs":                      BoundedExhaustive,
}

// Lookup returns the algorithm registered under name (case-insensitive).
// An empty name selects ConstrainedDijkstra.
func Lookup(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ConstrainedDijkstra, nil
	}
	if a, ok := registry[key]; ok {
		return a, nil
	}

	return nil, fmt.Errorf("%w: unknown algorithm %q (want one of %s)",
		search.ErrInvalidArgument, name, strings.Join(Names(), ", "))
}

// Names lists the canonical algorithm names in sorted order.
func Names() []string {
	names := []string{ConstrainedDijkstra.Name(), ConstrainedAStar.Name(), BoundedExhaustive.Name()}
	sort.Strings(names)

	return names
}
