// Package dijkstra computes true minimum-distance routes over a station graph
// with Dijkstra's algorithm, using great-circle distance between adjacent
// stations as the edge weight.
//
// Overview:
//
//   - Shortest computes the minimum cumulative distance from a source station
//     to every reachable station, in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always settle the next-closest
//     station, with a global visited set.
//   - Supports optional path reconstruction and a distance cap.
//
// Relationship to package search:
//
//	The search package reproduces a frontier re-ranking cadence whose result is
//	the best candidate at the moment of first success. This package is the
//	explicit, separately named global optimum; it is never substituted for the
//	search package implicitly. Callers choose it by name (planner.Optimal).
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source string is empty.
//   - ErrNilGraph:        a nil graph was passed.
//   - ErrNilDirectory:    a nil station directory was passed.
//   - ErrSourceNotFound:  the source station is not in the graph.
//   - ErrBadMaxDistance:  MaxDistance is negative or NaN.
//   - station.ErrNotFound (wrapped): a linked station has no directory entry.
//
// API reference:
//
//	func Shortest(
//	    g Graph,
//	    dir *station.Directory,
//	    opts ...Option,
//	) (dist map[string]float64, prev map[string]string, err error)
//
//	  - dist: dist[v] = minimal distance in km from Source, or +Inf if unreachable.
//	  - prev: prev[v] = predecessor of v on one shortest route; "" for the source
//	          and unreachable stations. Nil unless WithReturnPath is given.
//
// Thread safety:
//
//   - Shortest only reads g and dir; concurrent calls on the same inputs are safe.
package dijkstra
