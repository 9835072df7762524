// Package astar implements the budget-constrained, heuristic-steered variant
// of the elevation-ordered priority search.
//
// The queue discipline, budget rejection and first-settle termination are the
// same as in package dijkstra. The key additionally adds
//
//	h(next) = max(0, elevation(end) - elevation(next))
//
// the direct ascent from a candidate to the destination:
//
//	Minimize → gain + h
//	Maximize → -(gain + h)
//	None     → distance
//
// h is not admissible against the true remaining gain, since elevation is not
// monotonic along arbitrary paths. It steers exploration; it does not make the
// result optimal.
package astar

import (
	"fmt"

	"github.com/katalvlaran/elevroute/budget"
	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/elevation"
	"github.com/katalvlaran/elevroute/search"
)

// Heuristic estimates the gain still to come from a node.
type Heuristic func(node string) (float64, error)

// DirectAscent returns the heuristic h(n) = GainOf(n, end) over g.
func DirectAscent(g *core.Graph, end string) Heuristic {
	return func(node string) (float64, error) {
		return elevation.GainOf(g, node, end)
	}
}

// Priority returns the queue key for a partial route under obj.
func Priority(obj search.Objective, distance, gain, h float64) float64 {
	switch obj {
	case search.Minimize:
		return gain + h
	case search.Maximize:
		return -(gain + h)
	default:
		return distance
	}
}

// Route finds a route from start to end within the budget, steering the
// frontier with DirectAscent toward end. Options and errors match
// dijkstra.Route.
func Route(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error) {
	cfg, err := search.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if err = search.CheckEndpoints(g, start, end); err != nil {
		return nil, err
	}

	maxLength, err := budget.ForOptions(g, start, end, cfg)
	if err != nil {
		return nil, err
	}

	h := DirectAscent(g, end)
	return search.Settle(g, start, end, maxLength, func(next string, distance, gain float64) (float64, error) {
		if cfg.Objective == search.None {
			return distance, nil
		}
		est, err := h(next)
		if err != nil {
			return 0, fmt.Errorf("astar: %w", err)
		}

		return Priority(cfg.Objective, distance, gain, est), nil
	})
}
