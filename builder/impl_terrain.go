// SPDX-License-Identifier: MIT
// Package: elevroute/builder
//
// impl_terrain.go - implementation of Terrain(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal street grid with 4-neighborhood over a height field.
//   • Vertex IDs use the fixed scheme "r,c" (row-major order); cfg.idFn is
//     not consulted so coordinates stay explicit.
//   • Cell (r,c) sits at Point{X: c·cell, Y: r·cell}; elevation from cfg.elevFn.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they
//     exist. On directed graphs the reverse segment is added too, so every
//     street is two-way; undirected graphs mirror on their own.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(1) extra.
//
// Determinism:
//   • Stable vertex order: row-major. Stable edge order: Right then Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/elevroute/core"
)

const (
	methodTerrain = "Terrain"
	minGridDim    = 1
	gridIDFmt     = "%d,%d"
)

// Terrain returns a Constructor that builds a rows×cols street grid.
func Terrain(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodTerrain, rows, cols, minGridDim, ErrTooFewVertices)
		}

		at := func(r, c int) Point {
			return Point{X: float64(c) * cfg.cell, Y: float64(r) * cfg.cell}
		}

		// 2) Add all vertices in row-major order with IDs "r,c".
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				p := at(r, c)
				if err := g.AddVertex(id, cfg.elevFn(cfg.rng, p), core.WithCoordinates(p.Y, p.X)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodTerrain, id, err)
				}
			}
		}

		// 3) Emit Right then Bottom segments for each cell.
		link := func(r1, c1, r2, c2 int) error {
			u, v := fmt.Sprintf(gridIDFmt, r1, c1), fmt.Sprintf(gridIDFmt, r2, c2)
			l := cfg.lengthFn(cfg.rng, at(r1, c1), at(r2, c2))
			if _, err := g.AddEdge(u, v, l); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, l=%g): %w", methodTerrain, u, v, l, err)
			}
			if !g.Undirected() {
				if _, err := g.AddEdge(v, u, l); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, l=%g): %w", methodTerrain, v, u, l, err)
				}
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(r, c, r, c+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(r, c, r+1, c); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
