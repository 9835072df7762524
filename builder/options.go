// SPDX-License-Identifier: MIT
// Package: elevroute/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// A nil fn is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders. A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithElevationFn overrides the node elevation generator. Panics on nil.
func WithElevationFn(fn ElevationFn) BuilderOption {
	if fn == nil {
		panic("builder: WithElevationFn(nil)")
	}
	return func(c *builderConfig) {
		c.elevFn = fn
	}
}

// WithElevationRange draws integer elevations uniformly from [lo, hi].
func WithElevationRange(lo, hi float64) BuilderOption {
	return WithElevationFn(UniformElevationFn(lo, hi))
}

// WithLengthFn overrides the segment length generator. Panics on nil.
func WithLengthFn(fn LengthFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLengthFn(nil)")
	}
	return func(c *builderConfig) {
		c.lengthFn = fn
	}
}

// WithScale sets the side of the RandomKOut placement square. Panics unless
// s is finite and > 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithCellSize sets the Terrain grid spacing. Panics unless s is finite and > 0.
func WithCellSize(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 1) {
		panic("builder: WithCellSize(s<=0)")
	}
	return func(c *builderConfig) {
		c.cell = s
	}
}
