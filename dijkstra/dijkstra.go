package dijkstra

import (
	"github.com/katalvlaran/elevroute/budget"
	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/search"
)

// Route finds a route from start to end whose length stays within the budget
// and whose elevation gain follows the configured objective.
//
// Options:
//
//   - search.WithTolerance(pct): budget = shortest * (1 + pct/100).
//   - search.WithObjective(obj): None (default), Maximize or Minimize.
//   - search.WithMaxLength(l):   use a precomputed budget.
//
// Preconditions and validation (in order):
//  1. Options must resolve (search.ErrInvalidArgument).
//  2. g is non-nil and contains start and end (search.ErrInvalidArgument).
//  3. end must be reachable from start when the budget is computed here
//     (search.ErrNoRoute).
func Route(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error) {
	// 1) Build and validate Options.
	cfg, err := search.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	// 2) Validate endpoints before any search work.
	if err = search.CheckEndpoints(g, start, end); err != nil {
		return nil, err
	}

	// 3) Derive the length ceiling.
	maxLength, err := budget.ForOptions(g, start, end, cfg)
	if err != nil {
		return nil, err
	}

	// 4) Run the first-settle search ordered by gain under the objective.
	return search.Settle(g, start, end, maxLength, func(_ string, _, gain float64) (float64, error) {
		return Priority(cfg.Objective, gain), nil
	})
}
