package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Shortest.
var (
	// ErrEmptySource indicates that the provided source station is empty.
	ErrEmptySource = errors.New("dijkstra: source station is empty")

	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilDirectory indicates that a nil station directory was passed.
	ErrNilDirectory = errors.New("dijkstra: directory is nil")

	// ErrSourceNotFound indicates the source station does not exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source station not found in graph")

	// ErrBadMaxDistance indicates MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable is returned by PathTo when the destination was never settled.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Graph is the adjacency view Shortest walks. *network.Graph satisfies it.
type Graph interface {
	Has(name string) bool
	Names() []string
	Neighbors(name string) []string
}

// Options configures Shortest.
//
// Source      – starting station (must be non-empty and present in the graph).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – stations farther than this (km) are not settled. Default +Inf.
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Shortest.
type Option func(*Options)

// Source sets the starting station.
func Source(name string) Option {
	return func(o *Options) { o.Source = name }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at max kilometres.
// Negative or NaN values cause ErrBadMaxDistance from Shortest.
func WithMaxDistance(max float64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// DefaultOptions returns Options for the given source with no distance cap
// and no predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
