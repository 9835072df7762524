package route

import (
	"context"
	"time"

	"github.com/katalvlaran/elevroute/search"
)

// Outcome classifies how a FindRoute call ended, for recorders.
type Outcome string

const (
	OutcomeFound      Outcome = "found"      // the algorithm's own route
	OutcomeBaseline   Outcome = "baseline"   // the shortest path replaced a worse or missing route
	OutcomeNoRoute    Outcome = "no_route"   // start and end are not connected
	OutcomeInfeasible Outcome = "infeasible" // connected, but nothing found within budget
	OutcomeInvalid    Outcome = "invalid"    // rejected before searching
	OutcomeError      Outcome = "error"      // anything else
)

// Recorder observes finished FindRoute calls.
type Recorder interface {
	ObserveRoute(algorithm string, objective search.Objective, outcome Outcome, elapsed time.Duration, stats search.Stats)
}

// Option configures FindRoute.
type Option func(*config)

type config struct {
	recorder      Recorder
	baselineGuard bool
	maxDepth      int
	ctx           context.Context
}

func defaultConfig() config {
	return config{
		maxDepth: search.DefaultMaxDepth,
		ctx:      context.Background(),
	}
}

// WithRecorder reports every call to rec.
func WithRecorder(rec Recorder) Option {
	return func(c *config) {
		c.recorder = rec
	}
}

// WithBaselineGuard returns the plain shortest path whenever the chosen
// algorithm finds no route within budget. Without it, the greedy searches
// may report ErrBudgetInfeasible on connected graphs.
func WithBaselineGuard() Option {
	return func(c *config) {
		c.baselineGuard = true
	}
}

// WithMaxDepth bounds BoundedExhaustive; the priority searches ignore it.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithContext lets the caller abandon BoundedExhaustive early.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
