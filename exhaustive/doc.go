// Package exhaustive implements the bounded exhaustive route search: it
// enumerates every simple path from start to end of at most MaxDepth edges,
// keeps those within the length budget and selects the extremal one.
//
// Enumeration:
//
//   - Depth-first over an explicit frame stack, so memory and stack depth are
//     bounded by MaxDepth rather than by the goroutine stack.
//   - A node is on-path while its frame is on the stack and released on
//     backtrack: it may appear in many candidates, never twice in one.
//   - Branches whose cumulative length already exceeds the budget are pruned;
//     lengths are non-negative so such a branch cannot become feasible.
//   - Self-loops are never followed.
//   - Neighbors are visited in insertion order, which fixes the enumeration
//     order and therefore the tie-break.
//
// Selection:
//
//	Minimize → smallest gain     (first enumerated wins ties)
//	Maximize → largest gain      (first enumerated wins ties)
//	None     → smallest length   (first enumerated wins ties)
//
// The search is exponential in the worst case. It is meant for small graphs
// and as a reference answer for the priority searches in tests.
//
// Errors:
//
//   - search.ErrInvalidArgument   nil graph, unknown node, bad options.
//   - search.ErrNoRoute           end unreachable (from the budget computation).
//   - search.ErrBudgetInfeasible  no simple path within budget and depth.
//   - context errors              if the WithContext context is done.
package exhaustive
