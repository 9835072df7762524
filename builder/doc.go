// Package builder generates deterministic elevation-annotated road graphs for
// tests, benchmarks and the CLI "generate" command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:   a closure that mutates a *core.Graph under a resolved config.
//     – BuildGraph:    creates the graph and runs constructors in order.
//   - Topologies:
//     – RandomKOut(n, k): n intersections scattered on a square, each with k
//       uniformly drawn one-way exits; self-loops and repeated exits dropped.
//     – Terrain(rows, cols): a two-way street grid over a height field.
//   - Configuration primitives:
//     – BuilderOption: mutates builderConfig before use.
//     – IDFn:          vertex-ID schemes (DefaultIDFn, SymbolIDFn, …).
//     – ElevationFn:   node elevation from position (UniformElevationFn, RidgeElevationFn, …).
//     – LengthFn:      segment length from endpoint positions (EuclideanLengthFn, …).
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs,
//     including edge insertion order (which fixes search tie-breaks).
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime validation errors are sentinel errors wrapped with the method name.
package builder
