package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start station is absent.
	ErrStartNotFound = errors.New("bfs: start station not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a station the traversal never visited.
	ErrNotReached = errors.New("bfs: station not reached")
)

// Graph is the adjacency view BFS walks. *network.Graph satisfies it.
type Graph interface {
	Has(name string) bool
	Neighbors(name string) []string
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a station is enqueued, before visiting.
	OnEnqueue func(name string, depth int)

	// OnDequeue is called immediately before visiting a station.
	OnDequeue func(name string, depth int)

	// OnVisit is called when visiting a station. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(name string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip links by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(name string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(name string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips links when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether name was visited.
func (r *Result) Reached(name string) bool {
	_, ok := r.Depth[name]
	return ok
}

// PathTo reconstructs the fewest-hops route from the start station to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
