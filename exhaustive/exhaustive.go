package exhaustive

import (
	"fmt"

	"github.com/katalvlaran/elevroute/budget"
	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/elevation"
	"github.com/katalvlaran/elevroute/path"
	"github.com/katalvlaran/elevroute/search"
)

// checkEvery is how many frames are entered between context checks.
const checkEvery = 1024

// Candidate is one feasible start→end path found by the enumeration.
type Candidate struct {
	Path   path.Path
	Length float64
	Gain   float64
}

// Route enumerates simple paths from start to end and returns the best one
// under the configured objective.
//
// Options:
//
//   - search.WithTolerance / search.WithMaxLength: the budget.
//   - search.WithObjective: selection rule.
//   - search.WithMaxDepth: edge-count ceiling, default search.DefaultMaxDepth.
//   - search.WithContext: abandons the enumeration when done.
func Route(g *core.Graph, start, end string, opts ...search.Option) (*search.Result, error) {
	cfg, maxLength, err := prepare(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	if start == end {
		return &search.Result{Path: path.Path{start}, MaxLength: maxLength}, nil
	}

	w := newWalker(g, end, maxLength, cfg, false)
	if err = w.run(start); err != nil {
		return nil, err
	}

	best, ok := w.best, w.found
	if !ok {
		return nil, fmt.Errorf("%w: %s→%s within %g and depth %d",
			search.ErrBudgetInfeasible, start, end, maxLength, cfg.MaxDepth)
	}

	return &search.Result{
		Path:      best.Path,
		Length:    best.Length,
		Gain:      best.Gain,
		MaxLength: maxLength,
		Stats:     w.stats,
	}, nil
}

// Enumerate returns every feasible candidate in enumeration order.
// It shares validation and limits with Route.
func Enumerate(g *core.Graph, start, end string, opts ...search.Option) ([]Candidate, error) {
	cfg, maxLength, err := prepare(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	if start == end {
		return []Candidate{{Path: path.Path{start}}}, nil
	}

	w := newWalker(g, end, maxLength, cfg, true)
	if err = w.run(start); err != nil {
		return nil, err
	}

	return w.candidates, nil
}

// Select picks the extremal candidate under obj. Ties go to the earliest.
// ok is false when cands is empty.
func Select(cands []Candidate, obj search.Objective) (best Candidate, ok bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}

	best = cands[0]
	for _, c := range cands[1:] {
		if better(c.Length, c.Gain, best, obj) {
			best = c
		}
	}

	return best, true
}

// better reports whether a path with the given measures strictly beats best.
func better(length, gain float64, best Candidate, obj search.Objective) bool {
	switch obj {
	case search.Minimize:
		return gain < best.Gain
	case search.Maximize:
		return gain > best.Gain
	default:
		return length < best.Length
	}
}

func prepare(g *core.Graph, start, end string, opts []search.Option) (search.Options, float64, error) {
	cfg, err := search.Resolve(opts...)
	if err != nil {
		return cfg, 0, err
	}
	if err = search.CheckEndpoints(g, start, end); err != nil {
		return cfg, 0, err
	}
	maxLength, err := budget.ForOptions(g, start, end, cfg)
	if err != nil {
		return cfg, 0, err
	}

	return cfg, maxLength, nil
}

// frame is one node on the current path together with its iteration cursor.
type frame struct {
	node     string
	edges    []*core.Edge
	next     int     // index of the next edge to try
	distance float64 // length from start to node
	gain     float64 // gain from start to node
	elev     float64 // elevation of node
}

// walker holds the enumeration state of one Route or Enumerate call.
// Route keeps only the running best; Enumerate keeps every candidate.
type walker struct {
	g          *core.Graph
	end        string
	max        float64
	cfg        search.Options
	stack      []frame
	onPath     map[string]bool
	keepAll    bool
	candidates []Candidate
	best       Candidate
	found      bool
	stats      search.Stats
}

func newWalker(g *core.Graph, end string, maxLength float64, cfg search.Options, keepAll bool) *walker {
	return &walker{
		g:       g,
		end:     end,
		max:     maxLength,
		cfg:     cfg,
		stack:   make([]frame, 0, cfg.MaxDepth+1),
		onPath:  make(map[string]bool, cfg.MaxDepth+1),
		keepAll: keepAll,
	}
}

// enter pushes node onto the current path.
func (w *walker) enter(node string, distance, gain float64) error {
	edges, err := w.g.Neighbors(node)
	if err != nil {
		return fmt.Errorf("exhaustive: neighbors of %q: %w", node, err)
	}
	elev, err := w.g.ElevationOf(node)
	if err != nil {
		return fmt.Errorf("exhaustive: %w", err)
	}

	w.stack = append(w.stack, frame{node: node, edges: edges, distance: distance, gain: gain, elev: elev})
	w.onPath[node] = true
	w.stats.Pushes++

	if w.stats.Pushes%checkEvery == 0 {
		if err = w.cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("exhaustive: %w", err)
		}
	}

	return nil
}

// leave pops the top frame and releases its node.
func (w *walker) leave() {
	top := w.stack[len(w.stack)-1]
	delete(w.onPath, top.node)
	w.stack = w.stack[:len(w.stack)-1]
	w.stats.Pops++
}

// record counts a feasible path and copies it when it must be kept:
// always under keepAll, otherwise only when it beats the running best.
func (w *walker) record(distance, gain float64) {
	w.stats.Candidates++
	if !w.keepAll && w.found && !better(distance, gain, w.best, w.cfg.Objective) {
		return
	}

	p := make(path.Path, 0, len(w.stack)+1)
	for i := range w.stack {
		p = append(p, w.stack[i].node)
	}
	p = append(p, w.end)
	c := Candidate{Path: p, Length: distance, Gain: gain}

	if w.keepAll {
		w.candidates = append(w.candidates, c)
		return
	}
	w.best, w.found = c, true
}

// run drives the depth-first enumeration from start until the stack drains.
func (w *walker) run(start string) error {
	if err := w.enter(start, 0, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// Depth ceiling: the frame at index d sits d edges from start.
		if len(w.stack)-1 >= w.cfg.MaxDepth || top.next >= len(top.edges) {
			w.leave()
			continue
		}

		e := top.edges[top.next]
		top.next++

		if e.To == e.From || w.onPath[e.To] {
			continue
		}
		distance := top.distance + e.Length
		if distance > w.max {
			w.stats.Rejected++
			continue
		}

		toElev, err := w.g.ElevationOf(e.To)
		if err != nil {
			return fmt.Errorf("exhaustive: %w", err)
		}
		gain := top.gain + elevation.Gain(top.elev, toElev)

		// A simple path to end stops there.
		if e.To == w.end {
			w.record(distance, gain)
			continue
		}

		if err = w.enter(e.To, distance, gain); err != nil {
			return err
		}
	}

	return nil
}
