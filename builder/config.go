// SPDX-License-Identifier: MIT
// Package: elevroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn     = DefaultIDFn                 ("0","1","2",...)
//   • rng      = nil                         (stochastic constructors require WithSeed/WithRand)
//   • elevFn   = UniformElevationFn(20, 200) (integer metres, as the cached test maps)
//   • lengthFn = EuclideanLengthFn
//   • scale    = 100                         (side of the RandomKOut placement square)
//   • cell     = 10                          (Terrain grid spacing)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	elevFn   ElevationFn
	lengthFn LengthFn
	scale    float64 // > 0
	cell     float64 // > 0
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultMinElevation = 20.0
	defaultMaxElevation = 200.0
	defaultScale        = 100.0
	defaultCell         = 10.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		elevFn:   UniformElevationFn(defaultMinElevation, defaultMaxElevation),
		lengthFn: EuclideanLengthFn,
		scale:    defaultScale,
		cell:     defaultCell,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
