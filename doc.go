// Package elevroute finds road routes that trade a bounded amount of extra
// length for less (or more) elevation gain.
//
// 🚀 What is elevroute?
//
//	Given a road graph whose intersections carry elevations, a start, an end
//	and a tolerance percentage, elevroute looks for a route no longer than
//	(1 + tolerance/100) × the shortest route and:
//		• Minimize – climbs as little as possible (flattest ride)
//		• Maximize – climbs as much as possible (training run)
//		• None     – is simply the shortest route
//
// Three interchangeable search strategies share one request shape:
//
//	dijkstra/   - first-settle priority search ordered by accumulated gain
//	astar/      - the same search plus a direct-ascent heuristic
//	exhaustive/ - depth-bounded enumeration of every simple path in budget
//
// Under the hood, everything is organized into small packages:
//
//	core/      - thread-safe Graph, Node (with elevation), Edge (with length)
//	elevation/ - clamped per-segment gain
//	path/      - Path, predecessor reconstruction, length and gain totals
//	search/    - objectives, options, results, error taxonomy, queue, settle loop
//	budget/    - distance-only shortest path and the length budget
//	route/     - FindRoute: validation, algorithm registry, baseline guard
//	builder/   - deterministic synthetic maps (random k-out, terrain grids)
//	snapshot/  - YAML/JSON graph files
//	cmd/       - the elevroute CLI (route, generate, serve, version)
//
// Quick ASCII example (elevations in brackets, lengths on segments):
//
//	          ┌──10──[0:10]──15──┐
//	[1:30] ───┼──12──[2:15]──20──┼──► [4:20]
//	          └──20──[3:50]──15──┘
//
//	tolerance 50% ⇒ budget 37.5
//	None → 1,0,4 (25)   Minimize → 1,2,4 (gain 5)   Maximize → 1,3,4 (gain 20)
//
//	go get github.com/katalvlaran/elevroute
package elevroute
