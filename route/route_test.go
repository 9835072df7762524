package route_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elevroute/budget"
	"github.com/katalvlaran/elevroute/builder"
	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/internal/testgraph"
	"github.com/katalvlaran/elevroute/path"
	"github.com/katalvlaran/elevroute/route"
	"github.com/katalvlaran/elevroute/search"
)

var (
	algorithms = []route.Algorithm{route.ConstrainedDijkstra, route.ConstrainedAStar, route.BoundedExhaustive}
	objectives = []search.Objective{search.None, search.Maximize, search.Minimize}
)

// ------------------------------------------------------------------------
// Scenario graph
// ------------------------------------------------------------------------

func TestFindRoute_FiveNode(t *testing.T) {
	g := testgraph.FiveNode()
	want := map[search.Objective]path.Path{
		search.None:     {"1", "0", "4"},
		search.Minimize: {"1", "2", "4"},
		search.Maximize: {"1", "3", "4"},
	}

	for _, alg := range algorithms {
		for _, obj := range objectives {
			t.Run(alg.Name()+"/"+obj.String(), func(t *testing.T) {
				res, err := route.FindRoute(g, "1", "4", 50, obj, alg)
				require.NoError(t, err)
				assert.Equal(t, want[obj], res.Path)
				assert.Equal(t, 37.5, res.MaxLength)
				assert.LessOrEqual(t, res.Length, res.MaxLength)

				l, err := route.TotalLength(res.Path, g)
				require.NoError(t, err)
				assert.Equal(t, res.Length, l)
				gain, err := route.TotalElevationGain(res.Path, g)
				require.NoError(t, err)
				assert.Equal(t, res.Gain, gain)
			})
		}
	}
}

func TestFindRoute_ScenarioMeasures(t *testing.T) {
	g := testgraph.FiveNode()

	l, err := route.TotalLength(path.Path{"1", "0", "4"}, g)
	require.NoError(t, err)
	assert.Equal(t, 25.0, l)

	// 1→0 descends (30→10) and 0→4 climbs 10→20.
	gain, err := route.TotalElevationGain(path.Path{"1", "0", "4"}, g)
	require.NoError(t, err)
	assert.Equal(t, 10.0, gain)

	m, err := budget.MaxLength(g, "1", "4", 50)
	require.NoError(t, err)
	assert.Equal(t, 1.5*l, m)
}

func TestFindRoute_StartIsEnd(t *testing.T) {
	g := testgraph.FiveNode()
	for _, alg := range algorithms {
		for _, obj := range objectives {
			for _, tol := range []float64{0, 35, 500} {
				res, err := route.FindRoute(g, "3", "3", tol, obj, alg)
				require.NoError(t, err)
				assert.Equal(t, path.Path{"3"}, res.Path)
				assert.Zero(t, res.Length)
			}
		}
	}
}

func TestFindRoute_Unreachable(t *testing.T) {
	g := testgraph.Disconnected()

	_, _, err := budget.ShortestPath(g, "a", "d")
	require.ErrorIs(t, err, search.ErrNoRoute)

	for _, alg := range algorithms {
		for _, obj := range objectives {
			_, err := route.FindRoute(g, "a", "d", 100, obj, alg, route.WithBaselineGuard())
			assert.ErrorIs(t, err, search.ErrNoRoute, "%s/%s", alg.Name(), obj)
		}
	}
}

func TestFindRoute_InvalidArgument(t *testing.T) {
	g := testgraph.FiveNode()

	cases := []struct {
		name string
		call func() error
	}{
		{"nil graph", func() error {
			_, err := route.FindRoute(nil, "1", "4", 0, search.None, route.ConstrainedDijkstra)
			return err
		}},
		{"nil algorithm", func() error {
			_, err := route.FindRoute(g, "1", "4", 0, search.None, nil)
			return err
		}},
		{"negative tolerance", func() error {
			_, err := route.FindRoute(g, "1", "4", -0.1, search.None, route.ConstrainedAStar)
			return err
		}},
		{"unknown objective", func() error {
			_, err := route.FindRoute(g, "1", "4", 0, search.Objective(5), route.ConstrainedAStar)
			return err
		}},
		{"missing start", func() error {
			_, err := route.FindRoute(g, "x", "4", 0, search.None, route.BoundedExhaustive)
			return err
		}},
		{"missing end", func() error {
			_, err := route.FindRoute(g, "1", "x", 0, search.None, route.BoundedExhaustive)
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.call(), search.ErrInvalidArgument)
		})
	}
}

// ------------------------------------------------------------------------
// Greedy limitation and the baseline guard
// ------------------------------------------------------------------------

func TestFindRoute_GreedyTrap(t *testing.T) {
	g := testgraph.GreedyTrap()

	for _, alg := range []route.Algorithm{route.ConstrainedDijkstra, route.ConstrainedAStar} {
		_, err := route.FindRoute(g, "S", "E", 0, search.Minimize, alg)
		assert.ErrorIs(t, err, search.ErrBudgetInfeasible, alg.Name())

		res, err := route.FindRoute(g, "S", "E", 0, search.Minimize, alg, route.WithBaselineGuard())
		require.NoError(t, err, alg.Name())
		assert.Equal(t, path.Path{"S", "B", "A", "E"}, res.Path)
		assert.Equal(t, 12.0, res.Length)
		assert.Equal(t, 5.0, res.Gain)
	}

	res, err := route.FindRoute(g, "S", "E", 0, search.Minimize, route.BoundedExhaustive)
	require.NoError(t, err)
	assert.Equal(t, path.Path{"S", "B", "A", "E"}, res.Path)
}

func TestFindRoute_DetourFallsBackToShortest(t *testing.T) {
	g := testgraph.Detour()

	for _, alg := range []route.Algorithm{route.ConstrainedDijkstra, route.ConstrainedAStar} {
		// The search alone climbs over y.
		raw, err := alg.Route(g, "S", "E", search.WithTolerance(80), search.WithObjective(search.Minimize))
		require.NoError(t, err, alg.Name())
		assert.Equal(t, path.Path{"S", "y", "E"}, raw.Path, alg.Name())
		assert.Equal(t, 10.0, raw.Gain, alg.Name())

		rec := &fakeRecorder{}
		res, err := route.FindRoute(g, "S", "E", 80, search.Minimize, alg, route.WithRecorder(rec))
		require.NoError(t, err, alg.Name())
		assert.Equal(t, path.Path{"S", "x", "a", "E"}, res.Path, alg.Name())
		assert.Equal(t, 3.0, res.Gain, alg.Name())
		assert.Equal(t, 3.0, res.Length, alg.Name())
		assert.InDelta(t, 5.4, res.MaxLength, 1e-9, alg.Name())
		require.Len(t, rec.calls, 1)
		assert.Equal(t, route.OutcomeBaseline, rec.calls[0].outcome, alg.Name())

		// Climbing more than the shortest path is what Maximize wants.
		res, err = route.FindRoute(g, "S", "E", 80, search.Maximize, alg)
		require.NoError(t, err, alg.Name())
		assert.Equal(t, path.Path{"S", "y", "E"}, res.Path, alg.Name())
	}

	res, err := route.FindRoute(g, "S", "E", 80, search.Minimize, route.BoundedExhaustive)
	require.NoError(t, err)
	assert.Equal(t, path.Path{"S", "x", "a", "E"}, res.Path)
}

// ------------------------------------------------------------------------
// Properties on generated graphs
// ------------------------------------------------------------------------

func randomGraph(t *testing.T, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomKOut(12, 3))
	require.NoError(t, err)
	return g
}

func TestFindRoute_Properties(t *testing.T) {
	const start, end = "0", "7"
	checked := 0

	for seed := int64(1); seed <= 30; seed++ {
		g := randomGraph(t, seed)
		basePath, baseLength, err := budget.ShortestPath(g, start, end)
		if errors.Is(err, search.ErrNoRoute) {
			continue
		}
		require.NoError(t, err)
		baseGain, err := path.TotalElevationGain(basePath, g)
		require.NoError(t, err)
		checked++

		for _, tol := range []float64{0, 25, 60} {
			maxLength, err := budget.MaxLength(g, start, end, tol)
			require.NoError(t, err)

			oracle := map[search.Objective]*search.Result{}
			for _, obj := range objectives {
				res, err := route.FindRoute(g, start, end, tol, obj, route.BoundedExhaustive)
				require.NoError(t, err)
				oracle[obj] = res
			}

			for _, alg := range algorithms {
				for _, obj := range objectives {
					name := fmt.Sprintf("seed=%d tol=%g %s/%s", seed, tol, alg.Name(), obj)

					res, err := route.FindRoute(g, start, end, tol, obj, alg, route.WithBaselineGuard())
					require.NoError(t, err, name)
					require.NoError(t, path.Validate(res.Path, g), name)
					assert.Equal(t, start, res.Path.Start(), name)
					assert.Equal(t, end, res.Path.End(), name)
					assert.LessOrEqual(t, res.Length, maxLength, name)

					switch obj {
					case search.None:
						assert.InDelta(t, baseLength, res.Length, 1e-9, name)
					case search.Minimize:
						assert.LessOrEqual(t, res.Gain, baseGain, name)
						assert.GreaterOrEqual(t, res.Gain, oracle[obj].Gain, name)
					case search.Maximize:
						assert.GreaterOrEqual(t, res.Gain, baseGain, name)
						assert.LessOrEqual(t, res.Gain, oracle[obj].Gain, name)
					}

					// Without the guard the greedy searches may fail, but what
					// they return fits the budget and never loses to the baseline.
					plain, err := route.FindRoute(g, start, end, tol, obj, alg)
					if err != nil {
						assert.ErrorIs(t, err, search.ErrBudgetInfeasible, name)
						continue
					}
					assert.LessOrEqual(t, plain.Length, maxLength, name)
					require.NoError(t, path.Validate(plain.Path, g), name)
					switch obj {
					case search.Minimize:
						assert.LessOrEqual(t, plain.Gain, baseGain, name)
					case search.Maximize:
						assert.GreaterOrEqual(t, plain.Gain, baseGain, name)
					}
				}
			}
		}
	}

	require.Greater(t, checked, 5, "too few connected samples")
}

// ------------------------------------------------------------------------
// Registry, recorder, logging
// ------------------------------------------------------------------------

func TestLookup(t *testing.T) {
	for name, want := range map[string]route.Algorithm{
		"":           route.ConstrainedDijkstra,
		"dijkstra":   route.ConstrainedDijkstra,
		" AStar ":    route.ConstrainedAStar,
		"a*":         route.ConstrainedAStar,
		"exhaustive": route.BoundedExhaustive,
		"DFS":        route.BoundedExhaustive,
	} {
		got, err := route.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, want.Name(), got.Name(), name)
	}

	_, err := route.Lookup("bfs")
	assert.ErrorIs(t, err, search.ErrInvalidArgument)
	assert.Equal(t, []string{"astar", "dijkstra", "exhaustive"}, route.Names())
}

type call struct {
	algorithm string
	objective search.Objective
	outcome   route.Outcome
	stats     search.Stats
}

type fakeRecorder struct{ calls []call }

func (f *fakeRecorder) ObserveRoute(alg string, obj search.Objective, out route.Outcome, _ time.Duration, st search.Stats) {
	f.calls = append(f.calls, call{alg, obj, out, st})
}

func TestFindRoute_Recorder(t *testing.T) {
	rec := &fakeRecorder{}

	_, err := route.FindRoute(testgraph.FiveNode(), "1", "4", 50, search.Maximize, route.ConstrainedAStar, route.WithRecorder(rec))
	require.NoError(t, err)
	_, _ = route.FindRoute(testgraph.Disconnected(), "a", "d", 0, search.None, route.ConstrainedDijkstra, route.WithRecorder(rec))
	_, _ = route.FindRoute(testgraph.GreedyTrap(), "S", "E", 0, search.Minimize, route.ConstrainedDijkstra, route.WithRecorder(rec))
	_, _ = route.FindRoute(testgraph.GreedyTrap(), "S", "E", 0, search.Minimize, route.ConstrainedDijkstra,
		route.WithRecorder(rec), route.WithBaselineGuard())
	_, _ = route.FindRoute(testgraph.FiveNode(), "1", "4", -1, search.None, route.BoundedExhaustive, route.WithRecorder(rec))

	require.Len(t, rec.calls, 5)
	assert.Equal(t, call{"astar", search.Maximize, route.OutcomeFound, rec.calls[0].stats}, rec.calls[0])
	assert.Positive(t, rec.calls[0].stats.Settled)
	assert.Equal(t, route.OutcomeNoRoute, rec.calls[1].outcome)
	assert.Equal(t, route.OutcomeInfeasible, rec.calls[2].outcome)
	assert.Equal(t, route.OutcomeBaseline, rec.calls[3].outcome)
	assert.Equal(t, route.OutcomeInvalid, rec.calls[4].outcome)
	assert.Equal(t, "exhaustive", rec.calls[4].algorithm)
}

func TestFindRoute_MaxDepth(t *testing.T) {
	_, err := route.FindRoute(testgraph.GreedyTrap(), "S", "E", 0, search.None, route.BoundedExhaustive, route.WithMaxDepth(2))
	assert.ErrorIs(t, err, search.ErrBudgetInfeasible)

	// A negative depth is rejected before the baseline search, even on a
	// disconnected pair that would otherwise report ErrNoRoute.
	rec := &fakeRecorder{}
	_, err = route.FindRoute(testgraph.Disconnected(), "a", "d", 0, search.None, route.ConstrainedDijkstra,
		route.WithMaxDepth(-1), route.WithRecorder(rec))
	assert.ErrorIs(t, err, search.ErrInvalidArgument)
	assert.NotErrorIs(t, err, search.ErrNoRoute)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, route.OutcomeInvalid, rec.calls[0].outcome)
	assert.Zero(t, rec.calls[0].stats)
}

func TestFindRoute_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	_, err := route.FindRoute(testgraph.FiveNode(), "1", "4", 50, search.Minimize, route.ConstrainedDijkstra)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "route: search finished")
	assert.Contains(t, out, "algorithm=dijkstra")
	assert.Contains(t, out, "objective=minimize")
	assert.Contains(t, out, "outcome=found")
	assert.Contains(t, out, "budget=37.5")
}
