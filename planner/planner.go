package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/subway/bfs"
	"github.com/katalvlaran/subway/dfs"
	"github.com/katalvlaran/subway/dijkstra"
	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/search"
	"github.com/katalvlaran/subway/station"
)

// Planner owns a network graph and its station directory.
type Planner struct {
	graph     *network.Graph
	dir       *station.Directory
	lines     []string
	transfers []string
	groups    [][]string
	opts      Options
}

// New builds the graph and directory for lines.
func New(lines *station.Lines, opts ...Option) (*Planner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if lines == nil {
		return nil, ErrNilLines
	}

	g, dir := network.Build(lines)
	groups, err := dfs.Components(g)
	if err != nil {
		return nil, err
	}

	return &Planner{
		graph:     g,
		dir:       dir,
		lines:     lines.Lines(),
		transfers: network.Transfers(lines),
		groups:    groups,
		opts:      o,
	}, nil
}

// Plan runs the named strategy.
func (p *Planner) Plan(ctx context.Context, strategy, from, to string) (*Route, error) {
	switch strategy {
	case StrategyDistance, "":
		return p.Route(ctx, from, to)
	case StrategyStops:
		return p.FewestStops(ctx, from, to)
	case StrategyOptimal:
		return p.Optimal(ctx, from, to)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// Route finds a route with the frontier re-ranking search, ranked by
// cumulative distance.
func (p *Planner) Route(ctx context.Context, from, to string) (*Route, error) {
	q, err := p.begin(ctx, StrategyDistance, from, to)
	if err != nil {
		return nil, err
	}
	defer q.cancel()

	if p.opts.ReachabilityCheck {
		ok, err := bfs.Reachable(q.ctx, p.graph, from, to)
		if err != nil {
			return nil, q.done(err)
		}
		if !ok {
			return nil, q.done(fmt.Errorf("%w: %q→%q", search.ErrNoPathFound, from, to))
		}
	}

	res, err := search.Run(p.graph, from, to,
		search.WithContext(q.ctx),
		search.WithDirectory(p.dir),
		search.WithMaxExpansions(p.opts.MaxExpansions),
	)
	if err != nil {
		return nil, q.done(err)
	}
	q.expansions, q.peak = res.Expansions, res.PeakFrontier

	return &Route{Stations: res.Path, DistanceKm: res.Cost, Strategy: StrategyDistance}, q.done(nil)
}

// FewestStops finds a route with the fewest stations.
func (p *Planner) FewestStops(ctx context.Context, from, to string) (*Route, error) {
	q, err := p.begin(ctx, StrategyStops, from, to)
	if err != nil {
		return nil, err
	}
	defer q.cancel()

	res, err := bfs.BFS(p.graph, from, bfs.WithContext(q.ctx))
	if err != nil {
		return nil, q.done(err)
	}
	q.expansions = len(res.Order)

	path, err := res.PathTo(to)
	if errors.Is(err, bfs.ErrNotReached) {
		return nil, q.done(fmt.Errorf("%w: %q→%q", search.ErrNoPathFound, from, to))
	}
	if err != nil {
		return nil, q.done(err)
	}

	km, err := p.length(path)
	if err != nil {
		return nil, q.done(err)
	}

	return &Route{Stations: path, DistanceKm: km, Strategy: StrategyStops}, q.done(nil)
}

// Optimal finds the route of minimum total distance.
func (p *Planner) Optimal(ctx context.Context, from, to string) (*Route, error) {
	q, err := p.begin(ctx, StrategyOptimal, from, to)
	if err != nil {
		return nil, err
	}
	defer q.cancel()

	if err := q.ctx.Err(); err != nil {
		return nil, q.done(err)
	}

	dist, prev, err := dijkstra.Shortest(p.graph, p.dir,
		dijkstra.Source(from),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return nil, q.done(err)
	}
	q.expansions = settled(dist)

	path, err := dijkstra.PathTo(dist, prev, from, to)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return nil, q.done(fmt.Errorf("%w: %q→%q", search.ErrNoPathFound, from, to))
	}
	if err != nil {
		return nil, q.done(err)
	}

	return &Route{Stations: path, DistanceKm: dist[to], Strategy: StrategyOptimal}, q.done(nil)
}

// Station returns the directory record for name.
func (p *Planner) Station(name string) (station.Station, error) {
	return p.dir.Get(name)
}

// Stations returns every station record, sorted by name.
func (p *Planner) Stations() []station.Station {
	names := p.dir.Names()
	out := make([]station.Station, 0, len(names))
	for _, name := range names {
		s, _ := p.dir.Get(name)
		out = append(out, s)
	}

	return out
}

// Transfers returns the names served by two or more lines, in first-seen order.
func (p *Planner) Transfers() []string {
	return append([]string(nil), p.transfers...)
}

// Components returns the groups of mutually reachable stations. A connected
// network has exactly one.
func (p *Planner) Components() [][]string {
	out := make([][]string, len(p.groups))
	for i, g := range p.groups {
		out[i] = append([]string(nil), g...)
	}

	return out
}

// Lines returns the line identifiers in load order.
func (p *Planner) Lines() []string {
	return append([]string(nil), p.lines...)
}

// Neighbors returns the stations adjacent to name.
func (p *Planner) Neighbors(name string) ([]string, error) {
	if !p.dir.Has(name) {
		return nil, fmt.Errorf("%w: %q", station.ErrNotFound, name)
	}
	return p.graph.Neighbors(name), nil
}

// length sums the great-circle hop distances along path.
func (p *Planner) length(path []string) (float64, error) {
	var km float64
	for i := 1; i < len(path); i++ {
		d, err := p.dir.DistanceBetween(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		km += d
	}

	return km, nil
}

// settled counts the stations Dijkstra reached.
func settled(dist map[string]float64) int {
	n := 0
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			n++
		}
	}

	return n
}

// query tracks one call for the Observer.
type query struct {
	p          *Planner
	ctx        context.Context
	cancel     context.CancelFunc
	strategy   string
	start      time.Time
	expansions int
	peak       int
}

// begin validates both endpoints and derives the query context.
func (p *Planner) begin(ctx context.Context, strategy, from, to string) (*query, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	q := &query{p: p, strategy: strategy, start: time.Now()}

	for _, name := range []string{from, to} {
		if _, err := p.dir.Get(name); err != nil {
			q.cancel = func() {}
			return nil, q.done(err)
		}
	}

	if p.opts.Timeout > 0 {
		q.ctx, q.cancel = context.WithTimeout(ctx, p.opts.Timeout)
	} else {
		q.ctx, q.cancel = context.WithCancel(ctx)
	}

	return q, nil
}

// done reports the query outcome and passes err through.
func (q *query) done(err error) error {
	obs := q.p.opts.Observer
	if obs == nil {
		return err
	}

	outcome := OutcomeFound
	switch {
	case err == nil:
	case errors.Is(err, station.ErrNotFound):
		outcome = OutcomeNotFound
	case errors.Is(err, search.ErrNoPathFound):
		outcome = OutcomeNoPath
	default:
		outcome = OutcomeError
	}
	obs.Observe(q.strategy, outcome, q.expansions, q.peak, time.Since(q.start))

	return err
}
