// Package dfs implements depth-first traversal over a station network.
//
// What:
//
//   - DFS(g, start, opts...): explores as far as possible along each line
//     before backtracking, recording post-order, depths and parents.
//   - Components(g): splits the network into groups of mutually reachable
//     stations; a loaded network with more than one group cannot route
//     between them.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook; error aborts traversal.
//   - WithOnExit(fn)            post-order hook; error aborts traversal.
//   - WithMaxDepth(limit)       stops recursion beyond the given depth (>=0).
//   - WithFilterNeighbor(fn)    filters neighbors; return false to skip.
//   - WithFullTraversal()       restarts from every unvisited station.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil       if g is nil.
//   - ErrStartNotFound  if start is missing (single-source mode).
//   - context.Canceled  if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
