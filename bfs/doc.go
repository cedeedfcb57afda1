// Package bfs provides breadth-first traversal over a station graph,
// returning hop counts, parent links, and visit order.
//
// What
//
//   - Explore stations in non-decreasing hop count from a start station.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from station → hops from start
//   - Parent: map from station → its predecessor in the BFS tree
//   - Supports hooks at three stages:
//   - OnEnqueue (before a station is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual links via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Reachability: answer "is there any route at all?" in O(V + E) before
//     running the path-enumerating distance search, which would otherwise
//     exhaust every simple path on a disconnected network.
//   - Fewest stops: PathTo yields a route with the minimum number of hops.
//
// Determinism
//
//	Neighbors are visited in the graph's adjacency order (line order of
//	construction), so the visit sequence is fully reproducible.
//
// Complexity (V = stations, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Xizhimen", bfs.WithMaxDepth(5))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ctx errors or hook errors
//	}
//	path, err := res.PathTo("Wudaokou")
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrStartNotFound    if the start station is not in the graph.
//   - ErrOptionViolation  if an invalid Option was supplied (e.g. negative MaxDepth).
//   - ErrNotReached       from PathTo when the destination was not visited.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
