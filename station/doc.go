// Package station holds the immutable Station record, the ordered per-line
// station sequences produced by a network data loader (Lines), and the
// name-keyed Directory used to resolve station coordinates.
//
// Ordering contracts
//
//   - Lines keeps line identifiers in insertion order, and each line's stations
//     in the order they were added. Every traversal (Load, network.Build) is
//     "lines in insertion order, then stations by index".
//   - Directory is last-write-wins: when several lines share a station name
//     (a transfer station), the record inserted last is the one retained.
//     Callers must treat coordinates of transfer stations as coming from
//     exactly one of the contributing lines.
//
// Errors
//
//   - ErrNotFound:     a requested station name has no directory entry.
//   - ErrEmptyLine:    Lines.Add was called with an empty line identifier.
//   - ErrEmptyName:    a Station with an empty name was added to Lines.
//
// Identity
//
//	Stations are identified by display name alone. Two distinct stations that
//	share a name are indistinguishable from a transfer point; this is inherited
//	from the network data model and deliberately not corrected here.
package station
