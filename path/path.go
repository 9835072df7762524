// Package path holds the route representation shared by every search:
// an ordered node sequence, the predecessor map a priority search builds,
// the reconstruction that turns one into the other, and the two path
// measures callers display (total length and total elevation gain).
//
// Error handling (sentinel errors):
//
//   - ErrBrokenChain: the predecessor chain from end does not reach start.
//     Searches never produce such a map; seeing it is a defect, not a
//     recoverable condition.
//   - ErrEmptyPath: a measure was requested for a path without nodes.
package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/elevation"
)

// None is the predecessor recorded for the start node.
const None = ""

var (
	// ErrBrokenChain indicates a predecessor map whose chain from end never reaches start.
	ErrBrokenChain = errors.New("path: predecessor chain does not reach start")

	// ErrEmptyPath indicates a path with zero nodes.
	ErrEmptyPath = errors.New("path: path is empty")
)

// Path is an ordered node sequence, start to end inclusive.
// A single-node path is valid and has length zero.
type Path []string

// PredecessorMap maps a reached node to the node it was reached from.
// The start node maps to None.
type PredecessorMap map[string]string

// Start returns the first node, or "" for an empty path.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}

	return p[0]
}

// End returns the last node, or "" for an empty path.
func (p Path) End() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Reconstruct walks backward from end following prev until start is reached,
// then reverses the collected nodes.
//
// Errors:
//   - ErrBrokenChain if end is unknown to prev, a link is missing, or the
//     chain cycles without reaching start.
//
// Complexity: O(len(path)).
func Reconstruct(prev PredecessorMap, start, end string) (Path, error) {
	if start == end {
		return Path{start}, nil
	}

	out := Path{end}
	cur := end
	// A valid chain visits each map entry at most once.
	for steps := 0; cur != start; steps++ {
		if steps > len(prev) {
			return nil, fmt.Errorf("%w: cycle while walking back from %q", ErrBrokenChain, end)
		}
		p, ok := prev[cur]
		if !ok || p == None {
			return nil, fmt.Errorf("%w: no predecessor for %q", ErrBrokenChain, cur)
		}
		out = append(out, p)
		cur = p
	}

	// Reverse in place.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// TotalLength sums EdgeLength over consecutive node pairs of p.
//
// Errors:
//   - ErrEmptyPath for a path without nodes.
//   - core.ErrEdgeNotFound (wrapped) if a consecutive pair is not an edge.
func TotalLength(p Path, g *core.Graph) (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPath
	}
	var total float64
	for i := 0; i+1 < len(p); i++ {
		l, err := g.EdgeLength(p[i], p[i+1])
		if err != nil {
			return 0, fmt.Errorf("path: step %d: %w", i, err)
		}
		total += l
	}

	return total, nil
}

// TotalElevationGain sums the clamped ascent over consecutive node pairs of p.
//
// Errors:
//   - ErrEmptyPath for a path without nodes.
//   - core.ErrVertexNotFound (wrapped) if a node is missing.
func TotalElevationGain(p Path, g *core.Graph) (float64, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPath
	}
	var total float64
	for i := 0; i+1 < len(p); i++ {
		gain, err := elevation.GainOf(g, p[i], p[i+1])
		if err != nil {
			return 0, fmt.Errorf("path: step %d: %w", i, err)
		}
		total += gain
	}

	return total, nil
}

// Validate reports whether every consecutive pair of p is an edge of g.
func Validate(p Path, g *core.Graph) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if !g.HasVertex(p[0]) {
		return fmt.Errorf("path: %w: %q", core.ErrVertexNotFound, p[0])
	}
	for i := 0; i+1 < len(p); i++ {
		if !g.HasEdge(p[i], p[i+1]) {
			return fmt.Errorf("path: step %d: %w: %s→%s", i, core.ErrEdgeNotFound, p[i], p[i+1])
		}
	}

	return nil
}
