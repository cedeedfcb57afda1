package search

import (
	"cmp"
	"context"
	"fmt"
	"slices"
)

// Search returns the first route from src to dst under the frontier re-ranking
// cadence described in the package documentation.
//
// Either WithDirectory (distance ranking) or WithStrategy must be supplied.
// Returns ErrNoPathFound when no route exists.
func Search(g Graph, src, dst string, opts ...Option) ([]string, error) {
	res, err := Run(g, src, dst, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Run is Search returning the full Result: cost, strategy and work counters.
//
// Preconditions and validation (in order):
//  1. options are valid (ErrOptionViolation).
//  2. g is non-nil (ErrNilGraph).
//  3. src and dst are non-empty (ErrEmptyStation).
//  4. a strategy is resolvable (ErrNoStrategy).
func Run(g Graph, src, dst string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if src == "" || dst == "" {
		return nil, ErrEmptyStation
	}

	strategy := o.Strategy
	if strategy.Step == nil {
		if o.Directory == nil {
			return nil, ErrNoStrategy
		}
		strategy = ByDistance(o.Directory)
	}

	if src == dst {
		return &Result{Path: []string{src}, Strategy: strategy.Name}, nil
	}

	r := &runner{
		g:        g,
		dst:      dst,
		ctx:      o.Ctx,
		opts:     o,
		strategy: strategy,
		frontier: []Path{{Stations: []string{src}}},
	}

	best, err := r.loop()
	if err != nil {
		return nil, err
	}

	return &Result{
		Path:         best.Stations,
		Cost:         best.Cost,
		Strategy:     strategy.Name,
		Expansions:   r.expansions,
		PeakFrontier: r.peak,
	}, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g        Graph
	dst      string
	ctx      context.Context
	opts     Options
	strategy Strategy

	frontier   []Path
	expansions int
	peak       int
}

// loop runs pop → expand → re-rank → check-head until success, exhaustion,
// cancellation or the expansion bound.
func (r *runner) loop() (Path, error) {
	for len(r.frontier) > 0 {
		select {
		case <-r.ctx.Done():
			return Path{}, r.ctx.Err()
		default:
		}

		if r.opts.MaxExpansions > 0 && r.expansions >= r.opts.MaxExpansions {
			return Path{}, fmt.Errorf("%w: %d expansions, frontier %d",
				ErrExpansionLimit, r.expansions, len(r.frontier))
		}

		path := r.pop()
		if err := r.expand(path); err != nil {
			return Path{}, err
		}
		r.rank()

		if len(r.frontier) > 0 && r.frontier[0].Last() == r.dst {
			return r.frontier[0], nil
		}
	}

	return Path{}, ErrNoPathFound
}

// pop removes the frontier head.
func (r *runner) pop() Path {
	path := r.frontier[0]
	r.frontier[0] = Path{}
	r.frontier = r.frontier[1:]
	r.expansions++
	r.opts.OnExpand(path.Stations, len(r.frontier))

	return path
}

// expand appends path+[n] for every neighbor n of the path's last station
// that the path does not already contain.
func (r *runner) expand(path Path) error {
	last := path.Last()
	for _, n := range r.g.Neighbors(last) {
		if path.Contains(n) {
			continue
		}

		step, err := r.strategy.Step(last, n)
		if err != nil {
			return fmt.Errorf("search: ranking %q→%q: %w", last, n, err)
		}

		stations := make([]string, len(path.Stations), len(path.Stations)+1)
		copy(stations, path.Stations)
		r.frontier = append(r.frontier, Path{
			Stations: append(stations, n),
			Cost:     path.Cost + step,
		})
	}

	return nil
}

// rank stable-sorts the entire frontier by ascending cost.
func (r *runner) rank() {
	slices.SortStableFunc(r.frontier, func(a, b Path) int {
		return cmp.Compare(a.Cost, b.Cost)
	})
	if len(r.frontier) > r.peak {
		r.peak = len(r.frontier)
	}
	r.opts.OnRank(len(r.frontier))
}
