// Package dijkstra implements the budget-constrained, elevation-ordered
// variant of Dijkstra's priority search.
//
// Overview:
//
//   - The frontier is ordered by cumulative elevation gain instead of distance:
//     gain ascending for search.Minimize, gain descending for search.Maximize,
//     and a constant key for search.None (then distance decides, which is plain
//     shortest-path search).
//   - Distance is a hard constraint: any relaxation whose cumulative length
//     exceeds the budget is rejected.
//   - A node is settled the first time it is popped and is never reopened, even
//     if a shorter or better-gain path to it is found later. The result is a
//     greedy first-settle answer, not a guaranteed optimum over gain.
//   - Ties on the key are broken by distance, then by insertion order, so
//     repeated runs return the same route.
//
// When to use:
//
//   - Large graphs where exhaustive enumeration is out of reach.
//   - When an approximate gain preference within budget is good enough.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E), plus one budget computation of the same order.
//   - Space: O(V + E) for the settled set, predecessor map and lazy heap.
//
// Error handling (sentinel errors from package search):
//
//   - search.ErrInvalidArgument: nil graph, unknown start/end, bad options.
//   - search.ErrNoRoute: end is unreachable from start.
//   - search.ErrBudgetInfeasible: a plain route exists but the first-settle
//     search found none within the budget. It wraps ErrNoRoute.
//
// API reference:
//
//	func Route(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error)
//	func Priority(obj search.Objective, gain float64) float64
//
// Thread safety:
//
//   - Route only reads g. Concurrent calls on one graph are safe as long as
//     nobody mutates it meanwhile.
package dijkstra
