package dijkstra

import "github.com/katalvlaran/elevroute/search"

// Priority returns the queue key of a partial route with cumulative gain
// under obj. Smaller keys pop first.
//
//	Minimize → gain
//	Maximize → -gain
//	None     → 0 (distance, the secondary key, decides)
func Priority(obj search.Objective, gain float64) float64 {
	switch obj {
	case search.Minimize:
		return gain
	case search.Maximize:
		return -gain
	default:
		return 0
	}
}
