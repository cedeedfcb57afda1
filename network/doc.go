// Package network builds the station adjacency graph of a subway network from
// ordered per-line station sequences.
//
// Construction (Build)
//
//	For each line (insertion order) and each index i of its sequence:
//	  - i == 0        → link to seq[i+1]
//	  - i == last     → link to seq[i-1]
//	  - otherwise     → link to seq[i-1] and seq[i+1]
//	A neighbor name is appended only if it is not already present, so every
//	adjacency list is ordered by first contribution and free of duplicates.
//	A single-station line contributes the node but no links.
//
//	The same pass populates the station.Directory, so directory insertion order
//	matches the (line, index) traversal order exactly.
//
// Transfers
//
//	A name that occurs on several lines accumulates the union of neighbors from
//	every line. Once built, the graph has no notion of which line an edge came
//	from; use Transfers to recover which names are shared.
//
// Complexity (S = total station entries across all lines)
//
//   - Build: O(S·d) time where d is the largest degree (duplicate check), O(S) space.
//   - Neighbors: O(d) (the returned slice is a copy).
//
// Graph is not safe for concurrent mutation, but concurrent reads after Build
// are safe.
package network
