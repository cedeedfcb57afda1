// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-network (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start station is not in the graph.
	ErrStartNotFound = errors.New("dfs: start station not found")
)

// Graph is the read-only view DFS needs: *network.Graph satisfies it.
type Graph interface {
	Names() []string
	Has(name string) bool
	Neighbors(name string) []string
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a station (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(name string) error

	// OnExit, if non-nil, is invoked after all stations reachable through
	// name have been explored (post-order), before appending to Result.Order.
	OnExit func(name string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start station. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(name string) bool

	// FullTraversal, if true, runs DFS from every unvisited station in the
	// graph, covering disconnected components (forest traversal).
	FullTraversal bool

	skipped int
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(name string) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start station is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbors.
// If fn(name) == false, that neighbor is skipped and counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(name string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal from every unvisited station.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records stations in the sequence they finished (post-order).
	Order []string

	// Depth maps each station to its tree depth from the root it was reached from.
	Depth map[string]int

	// Parent maps each station to the station it was first discovered from.
	// Roots do not appear.
	Parent map[string]string

	// Visited flags which stations were reached.
	Visited map[string]bool

	// Roots lists the station each DFS tree started from, in traversal order.
	Roots []string

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
