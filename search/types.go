package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/subway/station"
)

// Sentinel errors returned by Search and Run.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrEmptyStation indicates an empty source or destination name.
	ErrEmptyStation = errors.New("search: station name is empty")

	// ErrNoStrategy indicates that no ranking strategy could be resolved.
	ErrNoStrategy = errors.New("search: no ranking strategy configured")

	// ErrNoPathFound indicates the frontier was exhausted without reaching the
	// destination. It is a normal outcome, not a data-integrity error.
	ErrNoPathFound = errors.New("search: no path found")

	// ErrExpansionLimit indicates the WithMaxExpansions bound was reached.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Graph is the read-only adjacency view the search walks.
// *network.Graph satisfies it.
type Graph interface {
	// Neighbors returns the ordered neighbor names of name (nil if unknown).
	Neighbors(name string) []string
}

// Path is a candidate route and its cumulative cost under a Strategy.
type Path struct {
	Stations []string
	Cost     float64
}

// Last returns the frontier station of the path.
func (p Path) Last() string { return p.Stations[len(p.Stations)-1] }

// Contains reports whether name already occurs in the path.
func (p Path) Contains(name string) bool {
	for _, s := range p.Stations {
		if s == name {
			return true
		}
	}

	return false
}

// Strategy ranks paths by an additive cost: the cost of path+[to] is the cost
// of path plus Step(last, to). Paths are ordered by ascending cost.
type Strategy struct {
	// Name identifies the strategy in results and metrics.
	Name string

	// Step returns the cost of travelling from → to.
	Step func(from, to string) (float64, error)
}

// ByDistance ranks by cumulative great-circle distance in kilometres,
// resolving coordinates through dir.
func ByDistance(dir *station.Directory) Strategy {
	return Strategy{
		Name: "distance",
		Step: dir.DistanceBetween,
	}
}

// ByStops ranks by number of hops, so shorter station sequences come first.
func ByStops() Strategy {
	return Strategy{
		Name: "stops",
		Step: func(_, _ string) (float64, error) { return 1, nil },
	}
}

// Options configures a search.
type Options struct {
	// Ctx is checked once per loop iteration.
	Ctx context.Context

	// Directory enables the default ByDistance strategy.
	Directory *station.Directory

	// Strategy overrides the ranking; its Step must be non-nil.
	Strategy Strategy

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many
	// paths have been popped and expanded. 0 means unbounded.
	MaxExpansions int

	// OnExpand is called with each popped path and the frontier size after
	// the pop, before its neighbors are pushed.
	OnExpand func(path []string, frontier int)

	// OnRank is called after each re-rank with the frontier size.
	OnRank func(frontier int)

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no strategy,
// no expansion bound and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func([]string, int) {},
		OnRank:   func(int) {},
	}
}

// WithContext sets a context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirectory sets the station directory used by the default distance
// ranking.
func WithDirectory(dir *station.Directory) Option {
	return func(o *Options) { o.Directory = dir }
}

// WithStrategy overrides the ranking strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s.Step == nil {
			o.err = fmt.Errorf("%w: strategy %q has nil Step", ErrOptionViolation, s.Name)
			return
		}
		o.Strategy = s
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: no bound
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook called for every popped path.
func WithOnExpand(fn func(path []string, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRank registers a hook called after every re-rank.
func WithOnRank(fn func(frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRank = fn
		}
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Path is the route from source to destination, inclusive.
	Path []string

	// Cost is the cumulative cost of Path under Strategy.
	Cost float64

	// Strategy is the name of the ranking used.
	Strategy string

	// Expansions counts popped-and-expanded paths.
	Expansions int

	// PeakFrontier is the largest frontier size observed after a re-rank.
	PeakFrontier int
}
