// SPDX-License-Identifier: MIT
// Package: elevroute/builder
//
// impl_random_kout.go - implementation of RandomKOut(n, k) constructor.
//
// Canonical model:
//   - Uniform random k-out digraph: every node draws k exit targets uniformly
//     with replacement over all n nodes.
//   - Draws hitting the node itself, or a target already drawn, are dropped
//     (the original test maps removed duplicate segments the same way).
//   - Nodes are placed uniformly on a cfg.scale×cfg.scale square; elevation
//     from cfg.elevFn at that position, segment length from cfg.lengthFn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); k ≥ 0 (else ErrInvalidDegree).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - g must be directed (else ErrUnsupportedGraphMode).
//
// Complexity:
//   - Time: O(n·k). Space: O(n) for positions.
//
// Determinism:
//   - Stable RNG draw order: all positions and elevations for i asc, then the
//     k targets of node 0, node 1, ...; lengths drawn as segments are added.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/elevroute/core"
)

const (
	methodRandomKOut      = "RandomKOut"
	minRandomKOutVertices = 1
)

// RandomKOut returns a Constructor that samples a directed k-out road graph.
func RandomKOut(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRandomKOutVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomKOut, n, minRandomKOutVertices, ErrTooFewVertices)
		}
		if k < 0 {
			return fmt.Errorf("%s: k=%d: %w", methodRandomKOut, k, ErrInvalidDegree)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomKOut, ErrNeedRandSource)
		}
		if g.Undirected() {
			return fmt.Errorf("%s: k-out graphs are directed: %w", methodRandomKOut, ErrUnsupportedGraphMode)
		}

		// 2) Place nodes and assign elevations.
		pos := make([]Point, n)
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			pos[i] = Point{X: cfg.rng.Float64() * cfg.scale, Y: cfg.rng.Float64() * cfg.scale}
			ids[i] = cfg.idFn(i)
			elev := cfg.elevFn(cfg.rng, pos[i])
			if err := g.AddVertex(ids[i], elev, core.WithCoordinates(pos[i].Y, pos[i].X)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomKOut, ids[i], err)
			}
		}

		// 3) Draw exits; drop self-loops and repeated targets.
		for i := 0; i < n; i++ {
			for d := 0; d < k; d++ {
				j := cfg.rng.Intn(n)
				if j == i || g.HasEdge(ids[i], ids[j]) {
					continue
				}
				length := cfg.lengthFn(cfg.rng, pos[i], pos[j])
				if !(length >= 0) || math.IsInf(length, 1) {
					return fmt.Errorf("%s: length %g for %s→%s: %w",
						methodRandomKOut, length, ids[i], ids[j], ErrConstructFailed)
				}
				if _, err := g.AddEdge(ids[i], ids[j], length); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomKOut, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
