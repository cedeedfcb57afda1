// Package planner answers route queries over one loaded subway network.
//
// A Planner builds the adjacency graph and station directory once, in New,
// and is read-only afterwards, so a single value may serve concurrent callers.
//
// Three route strategies are offered:
//
//   - distance: the frontier re-ranking search of package search, ranked by
//     cumulative great-circle distance. This is what Route runs.
//   - stops:    fewest stations, via breadth-first search (package bfs).
//   - optimal:  minimum total distance, via Dijkstra (package dijkstra).
//
// Every query validates its endpoints against the directory first, so an
// unknown station name fails with station.ErrNotFound, and a destination that
// cannot be reached fails with search.ErrNoPathFound whichever strategy ran.
package planner
