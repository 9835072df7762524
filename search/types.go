// Package search defines the types, options and error taxonomy shared by the
// budget-constrained route searches (dijkstra, astar, exhaustive), plus the
// priority queue the two priority-driven searches use.
//
// A search request names a start and end node, a tolerance percentage over
// the plain shortest route and an elevation Objective. Every search returns
// either a *Result or an error; "no route" is an error value wrapping
// ErrNoRoute, never an empty path.
//
// Errors (sentinel):
//
//   - ErrNoRoute          no path exists between start and end.
//   - ErrBudgetInfeasible a plain path exists but the search found none within
//     the budget or its limits; errors.Is(err, ErrNoRoute) also holds.
//   - ErrInvalidArgument  nil graph, missing node, negative or NaN tolerance,
//     bad depth; reported before any search work.
//
// Options:
//
//   - WithTolerance(pct)      percentage over the shortest length, default 0.
//   - WithObjective(obj)      None (default), Maximize or Minimize.
//   - WithMaxLength(l)        precomputed budget; skips the budget calculation.
//   - WithMaxDepth(n)         exhaustive recursion ceiling, default 50.
//   - WithContext(ctx)        lets a caller abandon an exhaustive enumeration.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/elevroute/path"
)

// Sentinel errors shared by all searches.
var (
	// ErrNoRoute indicates that start and end are not connected.
	ErrNoRoute = errors.New("search: no route")

	// ErrBudgetInfeasible indicates that no path within the budget was found.
	// It wraps ErrNoRoute so callers can treat both alike.
	ErrBudgetInfeasible = fmt.Errorf("%w: nothing found within budget", ErrNoRoute)

	// ErrInvalidArgument indicates a malformed request.
	ErrInvalidArgument = errors.New("search: invalid argument")
)

// DefaultMaxDepth bounds the exhaustive enumeration depth.
const DefaultMaxDepth = 50

// Objective selects how elevation gain is optimized.
type Objective int

const (
	// None ignores elevation: plain shortest path.
	None Objective = iota

	// Maximize prefers routes with more cumulative ascent.
	Maximize

	// Minimize prefers routes with less cumulative ascent.
	Minimize
)

// String returns the lower-case objective name.
func (o Objective) String() string {
	switch o {
	case None:
		return "none"
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("objective(%d)", int(o))
	}
}

// Valid reports whether o is one of the three known objectives.
func (o Objective) Valid() bool {
	return o == None || o == Maximize || o == Minimize
}

// ParseObjective accepts "", "none", "max", "maximize", "min", "minimize"
// (case-insensitive).
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "max", "maximize":
		return Maximize, nil
	case "min", "minimize":
		return Minimize, nil
	default:
		return None, fmt.Errorf("%w: unknown objective %q", ErrInvalidArgument, s)
	}
}

// Request is the resolved form of a search call.
type Request struct {
	Start     string    // start node ID
	End       string    // end node ID
	Tolerance float64   // percentage over the shortest length, ≥ 0
	Objective Objective // elevation preference
}

// Stats reports how much work a search did.
type Stats struct {
	Pushes     int `json:"pushes"`     // queue pushes (priority searches) or nodes entered (exhaustive)
	Pops       int `json:"pops"`       // queue pops, stale entries included
	Settled    int `json:"settled"`    // nodes finalized (priority searches)
	Rejected   int `json:"rejected"`   // relaxations refused: over budget, settled target or self-loop
	Candidates int `json:"candidates"` // complete feasible paths recorded (exhaustive)
}

// Result is a found route together with its measures.
type Result struct {
	Path      path.Path // start..end inclusive
	Length    float64   // total length of Path
	Gain      float64   // total clamped elevation gain of Path
	MaxLength float64   // budget the search ran under
	Stats     Stats
}
