package search

import (
	"context"
	"fmt"
	"math"
)

// Options configures a search. Build it with DefaultOptions and Option values.
type Options struct {
	Tolerance    float64   // percentage over the shortest length
	Objective    Objective // elevation preference
	MaxLength    float64   // precomputed budget, meaningful when HasMaxLength
	HasMaxLength bool      // set by WithMaxLength
	MaxDepth     int       // exhaustive recursion ceiling

	// Ctx allows the exhaustive enumeration to be abandoned early; the
	// priority searches are bounded by the graph size and do not consult it.
	Ctx context.Context
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns zero tolerance, no objective, no precomputed budget,
// DefaultMaxDepth and a background context.
func DefaultOptions() Options {
	return Options{
		Tolerance: 0,
		Objective: None,
		MaxDepth:  DefaultMaxDepth,
		Ctx:       context.Background(),
	}
}

// WithTolerance sets the percentage over the plain shortest length that a
// route may use. Negative values are reported as ErrInvalidArgument by the
// search, not here.
func WithTolerance(pct float64) Option {
	return func(o *Options) {
		o.Tolerance = pct
	}
}

// WithObjective sets the elevation preference.
func WithObjective(obj Objective) Option {
	return func(o *Options) {
		o.Objective = obj
	}
}

// WithMaxLength supplies an already computed budget so the search does not
// recompute the plain shortest path. Tolerance is ignored when it is set.
func WithMaxLength(l float64) Option {
	return func(o *Options) {
		o.MaxLength = l
		o.HasMaxLength = true
	}
}

// WithMaxDepth sets the exhaustive enumeration ceiling (number of edges).
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		o.MaxDepth = n
	}
}

// WithContext sets the context consulted by the exhaustive enumeration.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Resolve applies opts over DefaultOptions and validates the result.
//
// Errors:
//   - ErrInvalidArgument for NaN/negative tolerance, NaN/negative budget,
//     unknown objective or negative depth.
func Resolve(opts ...Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if math.IsNaN(cfg.Tolerance) || cfg.Tolerance < 0 {
		return cfg, fmt.Errorf("%w: tolerance must be ≥ 0, got %v", ErrInvalidArgument, cfg.Tolerance)
	}
	if cfg.HasMaxLength && (math.IsNaN(cfg.MaxLength) || cfg.MaxLength < 0) {
		return cfg, fmt.Errorf("%w: max length must be ≥ 0, got %v", ErrInvalidArgument, cfg.MaxLength)
	}
	if !cfg.Objective.Valid() {
		return cfg, fmt.Errorf("%w: %s", ErrInvalidArgument, cfg.Objective)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("%w: max depth must be ≥ 0, got %d", ErrInvalidArgument, cfg.MaxDepth)
	}

	return cfg, nil
}
