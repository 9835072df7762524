// SPDX-License-Identifier: MIT
// Package: elevroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" using the method name.
//   • Validation order: size → degree → rng → graph mode → construction.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidDegree indicates a negative out-degree for RandomKOut.
var ErrInvalidDegree = errors.New("builder: out-degree out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible
// with the current core.Graph mode (e.g. RandomKOut on an undirected graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the builder could not construct a
// topology (nil constructor, core rejection, bad generated value).
var ErrConstructFailed = errors.New("builder: construction failed")
