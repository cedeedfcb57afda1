// Package search finds a route between two stations by expanding candidate
// paths through a network graph and re-ranking the whole frontier after every
// single expansion.
//
// Algorithm
//
//	frontier ← [[source]]
//	loop while frontier is non-empty:
//	  1. pop the head path (FIFO at the moment of removal)
//	  2. s ← last station of that path
//	  3. for each neighbor n of s not already in the path: push path+[n]
//	  4. stable-sort the entire frontier by the strategy's cumulative cost
//	  5. if the new head ends at destination: return it
//	frontier exhausted → ErrNoPathFound
//
// The default strategy ranks by cumulative great-circle distance (ByDistance);
// ByStops ranks by number of stations. Ties keep their prior relative order.
//
// What this is not
//
//	This is not a textbook shortest-path algorithm. There is no global visited
//	set: a station may be reached by many concurrently explored paths, and
//	cycles are avoided only within a single path. Only the head of the frontier
//	is inspected after each re-rank, so the returned route is the cheapest
//	candidate present in the frontier at the moment of success, which is not
//	necessarily the global optimum. The dijkstra package provides the
//	global optimum under a separate, explicit name.
//
//	On a network where the destination is unreachable the search enumerates
//	every simple path from the source before failing. Use WithMaxExpansions or
//	WithContext to bound the work, or check reachability first (bfs package).
//
// Boundary
//
//	Searching from a station to itself returns the single-element path
//	[source] immediately.
//
// Errors
//
//   - ErrNilGraph:        graph is nil.
//   - ErrEmptyStation:    source or destination is the empty string.
//   - ErrNoStrategy:      neither WithDirectory nor WithStrategy was given.
//   - ErrNoPathFound:     the frontier emptied without reaching destination.
//   - ErrExpansionLimit:  WithMaxExpansions bound reached.
//   - ErrOptionViolation: an option was given an invalid value.
//   - station.ErrNotFound (wrapped): a path referenced an unknown station while
//     being ranked. This indicates inconsistent input and is never retried.
//
// Concurrency
//
//	Search is synchronous; all state is owned by the call. The graph and
//	directory are only read.
package search
