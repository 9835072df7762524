// Package elevation computes the ascent contributed by traversing an edge.
//
// Gain is strictly an ascent accumulator: a step from a to b contributes
// max(0, elevation(b) - elevation(a)). Descents and flat steps contribute
// exactly zero, so the gain of a path never decreases as it grows and two
// paths with equal length can carry different gains without either
// dominating the other.
package elevation

import (
	"fmt"

	"github.com/katalvlaran/elevroute/core"
)

// Gain returns the clamped ascent between two elevations.
func Gain(from, to float64) float64 {
	if d := to - from; d > 0 {
		return d
	}

	return 0
}

// GainOf returns the clamped ascent from node a to node b in g.
// The nodes do not need to be adjacent; the A* heuristic relies on that.
//
// Errors:
//   - core.ErrVertexNotFound (wrapped) if either node is missing.
func GainOf(g *core.Graph, a, b string) (float64, error) {
	ea, err := g.ElevationOf(a)
	if err != nil {
		return 0, fmt.Errorf("elevation: %w", err)
	}
	eb, err := g.ElevationOf(b)
	if err != nil {
		return 0, fmt.Errorf("elevation: %w", err)
	}

	return Gain(ea, eb), nil
}
