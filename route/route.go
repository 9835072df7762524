// Package route is the single entry point of elevroute: FindRoute validates a
// request, computes the length budget once, runs the selected Algorithm and
// reports the outcome.
//
//	res, err := route.FindRoute(g, "1", "4", 50, search.Maximize, route.ConstrainedAStar)
//	switch {
//	case errors.Is(err, search.ErrNoRoute):
//	    // suggest a larger tolerance
//	case err != nil:
//	    return err
//	}
//	fmt.Println(res.Path, res.Length, res.Gain)
package route

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/elevroute/budget"
	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/path"
	"github.com/katalvlaran/elevroute/search"
)

// FindRoute searches g for a route from start to end that is at most
// tolerance percent longer than the shortest one and optimizes elevation
// gain by objective, using algorithm.
//
// When the algorithm finds a route whose gain is worse than the plain
// shortest path's under objective, the shortest path is returned instead
// (Outcome "baseline"), so Minimize never climbs more and Maximize never
// climbs less than the shortest route.
//
// Errors:
//   - search.ErrInvalidArgument: nil graph or algorithm, unknown node,
//     negative or NaN tolerance, unknown objective, negative max depth.
//   - search.ErrNoRoute: start and end are not connected.
//   - search.ErrBudgetInfeasible: connected, but algorithm found nothing in
//     budget (never returned under WithBaselineGuard).
func FindRoute(
	g *core.Graph,
	start, end string,
	tolerance float64,
	objective search.Objective,
	algorithm Algorithm,
	opts ...Option,
) (*search.Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	began := time.Now()
	name := "unknown"
	if algorithm != nil {
		name = algorithm.Name()
	}

	res, outcome, err := findRoute(g, start, end, tolerance, objective, algorithm, cfg)

	var stats search.Stats
	if res != nil {
		stats = res.Stats
	}
	if cfg.recorder != nil {
		cfg.recorder.ObserveRoute(name, objective, outcome, time.Since(began), stats)
	}

	attrs := []any{
		slog.String("algorithm", name),
		slog.String("objective", objective.String()),
		slog.String("start", start),
		slog.String("end", end),
		slog.String("outcome", string(outcome)),
		slog.Duration("elapsed", time.Since(began)),
	}
	if res != nil {
		attrs = append(attrs,
			slog.Float64("budget", res.MaxLength),
			slog.Float64("length", res.Length),
			slog.Float64("gain", res.Gain),
			slog.Int("settled", stats.Settled),
			slog.Int("candidates", stats.Candidates),
		)
	}
	if err != nil {
		attrs = append(attrs, slog.Any("err", err))
	}
	slog.Debug("route: search finished", attrs...)

	return res, err
}

func findRoute(
	g *core.Graph,
	start, end string,
	tolerance float64,
	objective search.Objective,
	algorithm Algorithm,
	cfg config,
) (*search.Result, Outcome, error) {
	// 1) Validate the request before any search work.
	if algorithm == nil {
		return nil, OutcomeInvalid, fmt.Errorf("%w: algorithm is nil", search.ErrInvalidArgument)
	}
	if math.IsNaN(tolerance) || tolerance < 0 {
		return nil, OutcomeInvalid, fmt.Errorf("%w: tolerance must be ≥ 0, got %v", search.ErrInvalidArgument, tolerance)
	}
	if !objective.Valid() {
		return nil, OutcomeInvalid, fmt.Errorf("%w: %s", search.ErrInvalidArgument, objective)
	}
	if cfg.maxDepth < 0 {
		return nil, OutcomeInvalid, fmt.Errorf("%w: max depth must be ≥ 0, got %d", search.ErrInvalidArgument, cfg.maxDepth)
	}
	if err := search.CheckEndpoints(g, start, end); err != nil {
		return nil, OutcomeInvalid, err
	}

	// 2) Plain shortest path: the baseline and the source of the budget.
	basePath, baseLength, err := budget.ShortestPath(g, start, end)
	if err != nil {
		return nil, classify(err), err
	}
	maxLength := budget.Stretch(baseLength, tolerance)

	// 3) Delegate with the precomputed budget.
	res, err := algorithm.Route(g, start, end,
		search.WithTolerance(tolerance),
		search.WithObjective(objective),
		search.WithMaxLength(maxLength),
		search.WithMaxDepth(cfg.maxDepth),
		search.WithContext(cfg.ctx),
	)
	if err != nil && !(cfg.baselineGuard && errors.Is(err, search.ErrNoRoute)) {
		return nil, classify(err), err
	}

	// 4) Never hand back a route that does worse than the shortest path.
	baseGain, gerr := path.TotalElevationGain(basePath, g)
	if gerr != nil {
		return nil, OutcomeError, fmt.Errorf("route: %w", gerr)
	}
	if err == nil && !worse(res.Gain, baseGain, objective) {
		return res, OutcomeFound, nil
	}

	fallback := &search.Result{
		Path:      basePath,
		Length:    baseLength,
		Gain:      baseGain,
		MaxLength: maxLength,
	}
	if res != nil {
		fallback.Stats = res.Stats
	}

	return fallback, OutcomeBaseline, nil
}

// worse reports whether gain loses to the baseline gain under obj.
func worse(gain, baseline float64, obj search.Objective) bool {
	switch obj {
	case search.Minimize:
		return gain > baseline
	case search.Maximize:
		return gain < baseline
	default:
		return false
	}
}

func classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, search.ErrInvalidArgument):
		return OutcomeInvalid
	case errors.Is(err, search.ErrBudgetInfeasible):
		return OutcomeInfeasible
	case errors.Is(err, search.ErrNoRoute):
		return OutcomeNoRoute
	default:
		return OutcomeError
	}
}

// TotalLength sums the segment lengths along p.
func TotalLength(p path.Path, g *core.Graph) (float64, error) {
	return path.TotalLength(p, g)
}

// TotalElevationGain sums the clamped ascents along p.
func TotalElevationGain(p path.Path, g *core.Graph) (float64, error) {
	return path.TotalElevationGain(p, g)
}
