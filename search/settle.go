package search

import (
	"fmt"

	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/elevation"
	"github.com/katalvlaran/elevroute/path"
)

// KeyFunc returns the queue priority for a candidate step onto next, given
// the cumulative distance and gain of the partial route ending there.
type KeyFunc func(next string, distance, gain float64) (float64, error)

// CheckEndpoints reports ErrInvalidArgument for a nil graph or a start/end
// identifier that is not in g.
func CheckEndpoints(g *core.Graph, start, end string) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidArgument)
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %q not in graph", ErrInvalidArgument, start)
	}
	if !g.HasVertex(end) {
		return fmt.Errorf("%w: end %q not in graph", ErrInvalidArgument, end)
	}

	return nil
}

// Settle runs the first-settle priority search from start to end under the
// length ceiling maxLength, ordering the frontier by key.
//
// A node is settled the first time it is popped; its predecessor, distance and
// gain are taken from that entry and never revisited, even if a shorter path to
// it turns up later. Relaxations onto settled nodes, over-budget relaxations and
// self-loops are rejected. The search stops when end is popped.
//
// Errors:
//   - ErrBudgetInfeasible if the frontier empties before end is settled.
//   - path.ErrBrokenChain (wrapped) if reconstruction fails; never expected.
//   - any error returned by key or by the graph accessor, wrapped.
//
// Complexity: O((V + E) log E) time, O(V + E) space (lazy decrease-key).
func Settle(g *core.Graph, start, end string, maxLength float64, key KeyFunc) (*Result, error) {
	// 1) Trivial route: start is its own destination.
	if start == end {
		return &Result{Path: path.Path{start}, MaxLength: maxLength}, nil
	}

	// 2) Per-call state; nothing is shared between searches.
	r := &settler{
		g:        g,
		end:      end,
		max:      maxLength,
		key:      key,
		settled:  make(map[string]bool, g.VertexCount()),
		prev:     make(path.PredecessorMap, g.VertexCount()),
		frontier: NewQueue(g.VertexCount()),
	}
	r.push(&Item{Node: start, Prev: path.None})

	// 3) Main loop.
	for {
		it := r.frontier.Pop()
		if it == nil {
			return nil, fmt.Errorf("%w: %s→%s within %g", ErrBudgetInfeasible, start, end, maxLength)
		}
		r.stats.Pops++

		// Stale entry: the node was settled by an earlier pop.
		if r.settled[it.Node] {
			continue
		}
		r.settled[it.Node] = true
		r.prev[it.Node] = it.Prev
		r.stats.Settled++

		if it.Node == end {
			p, err := path.Reconstruct(r.prev, start, end)
			if err != nil {
				return nil, fmt.Errorf("search: %w", err)
			}

			return &Result{
				Path:      p,
				Length:    it.Distance,
				Gain:      it.Gain,
				MaxLength: maxLength,
				Stats:     r.stats,
			}, nil
		}

		if err := r.expand(it); err != nil {
			return nil, err
		}
	}
}

// settler holds the mutable state of one Settle call.
type settler struct {
	g        *core.Graph
	end      string
	max      float64
	key      KeyFunc
	settled  map[string]bool
	prev     path.PredecessorMap
	frontier *Queue
	stats    Stats
}

func (r *settler) push(it *Item) {
	r.frontier.Push(it)
	r.stats.Pushes++
}

// expand relaxes every outgoing edge of the freshly settled item.
func (r *settler) expand(it *Item) error {
	edges, err := r.g.Neighbors(it.Node)
	if err != nil {
		return fmt.Errorf("search: neighbors of %q: %w", it.Node, err)
	}

	var from, to float64
	if from, err = r.g.ElevationOf(it.Node); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	for _, e := range edges {
		if e.To == e.From {
			r.stats.Rejected++
			continue
		}
		dist := it.Distance + e.Length
		if dist > r.max || r.settled[e.To] {
			r.stats.Rejected++
			continue
		}

		if to, err = r.g.ElevationOf(e.To); err != nil {
			return fmt.Errorf("search: %w", err)
		}
		gain := it.Gain + elevation.Gain(from, to)

		prio, err := r.key(e.To, dist, gain)
		if err != nil {
			return fmt.Errorf("search: priority of %q: %w", e.To, err)
		}

		r.push(&Item{
			Node:     e.To,
			Prev:     it.Node,
			Priority: prio,
			Distance: dist,
			Gain:     gain,
		})
	}

	return nil
}
