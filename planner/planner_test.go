package planner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/planner"
	"github.com/katalvlaran/subway/search"
	"github.com/katalvlaran/subway/station"
)

func st(name string, lat, lng float64) station.Station {
	return station.Station{Name: name, Lat: lat, Lng: lng}
}

// fixture: a straight Local line S1–S4 along the equator, a two-hop Detour
// S1–X–S4 bowing far north, and an unconnected Island line.
func fixture(t *testing.T) *station.Lines {
	t.Helper()
	lines := station.NewLines()
	require.NoError(t, lines.Add("Local", st("S1", 0, 0), st("S2", 0, 1), st("S3", 0, 2), st("S4", 0, 3)))
	require.NoError(t, lines.Add("Detour", st("S1", 0, 0), st("X", 3, 1.5), st("S4", 0, 3)))
	require.NoError(t, lines.Add("Island", st("I1", 10, 10), st("I2", 10, 11)))

	return lines
}

func newPlanner(t *testing.T, opts ...planner.Option) *planner.Planner {
	t.Helper()
	p, err := planner.New(fixture(t), opts...)
	require.NoError(t, err)

	return p
}

type observation struct {
	strategy, outcome string
	expansions, peak  int
}

type recorder struct{ calls []observation }

func (r *recorder) Observe(strategy, outcome string, expansions, peak int, _ time.Duration) {
	r.calls = append(r.calls, observation{strategy, outcome, expansions, peak})
}

const hopKm = 111.19492664455873 // one degree of longitude on the equator

func TestNew_Errors(t *testing.T) {
	_, err := planner.New(nil)
	assert.ErrorIs(t, err, planner.ErrNilLines)

	_, err = planner.New(fixture(t), planner.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, planner.ErrOptionViolation)

	_, err = planner.New(fixture(t), planner.WithTimeout(-time.Second))
	assert.ErrorIs(t, err, planner.ErrOptionViolation)
}

func TestPlanner_Route(t *testing.T) {
	p := newPlanner(t)

	r, err := p.Route(context.Background(), "S1", "S4")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2", "S3", "S4"}, r.Stations)
	assert.InDelta(t, 3*hopKm, r.DistanceKm, 1e-6)
	assert.Equal(t, planner.StrategyDistance, r.Strategy)
	assert.Equal(t, 3, r.Stops())
}

func TestPlanner_FewestStops(t *testing.T) {
	p := newPlanner(t)

	r, err := p.FewestStops(context.Background(), "S1", "S4")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "X", "S4"}, r.Stations)
	assert.Greater(t, r.DistanceKm, 3*hopKm)
	assert.Equal(t, planner.StrategyStops, r.Strategy)
}

// With non-negative hop distances the re-ranking search ends on the same
// total as Dijkstra.
func TestPlanner_RouteMatchesOptimal(t *testing.T) {
	p := newPlanner(t)
	ctx := context.Background()

	for _, pair := range [][2]string{{"S1", "S4"}, {"S2", "X"}, {"X", "S3"}, {"S4", "S1"}} {
		got, err := p.Route(ctx, pair[0], pair[1])
		require.NoError(t, err)
		want, err := p.Optimal(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.InDelta(t, want.DistanceKm, got.DistanceKm, 1e-9, "%s→%s", pair[0], pair[1])
		assert.Equal(t, want.Stations, got.Stations, "%s→%s", pair[0], pair[1])
	}
}

func TestPlanner_SameStation(t *testing.T) {
	p := newPlanner(t)
	for _, strategy := range planner.Strategies() {
		r, err := p.Plan(context.Background(), strategy, "S3", "S3")
		require.NoError(t, err, strategy)
		assert.Equal(t, []string{"S3"}, r.Stations, strategy)
		assert.Zero(t, r.DistanceKm, strategy)
		assert.Zero(t, r.Stops(), strategy)
	}
}

func TestPlanner_Unreachable(t *testing.T) {
	for _, check := range []bool{true, false} {
		p := newPlanner(t, planner.WithReachabilityCheck(check))
		for _, strategy := range planner.Strategies() {
			_, err := p.Plan(context.Background(), strategy, "S1", "I2")
			assert.ErrorIs(t, err, search.ErrNoPathFound, "%s check=%v", strategy, check)
		}
	}
}

func TestPlanner_UnknownStation(t *testing.T) {
	p := newPlanner(t)
	for _, strategy := range planner.Strategies() {
		_, err := p.Plan(context.Background(), strategy, "S1", "Nowhere")
		assert.ErrorIs(t, err, station.ErrNotFound, strategy)
		_, err = p.Plan(context.Background(), strategy, "Nowhere", "S1")
		assert.ErrorIs(t, err, station.ErrNotFound, strategy)
	}
}

func TestPlanner_UnknownStrategy(t *testing.T) {
	p := newPlanner(t)
	_, err := p.Plan(context.Background(), "scenic", "S1", "S4")
	assert.ErrorIs(t, err, planner.ErrUnknownStrategy)

	r, err := p.Plan(context.Background(), "", "S1", "S4")
	require.NoError(t, err)
	assert.Equal(t, planner.StrategyDistance, r.Strategy)
}

func TestPlanner_ExpansionLimit(t *testing.T) {
	p := newPlanner(t, planner.WithMaxExpansions(1))
	_, err := p.Route(context.Background(), "S1", "S4")
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
}

func TestPlanner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, check := range []bool{true, false} {
		p := newPlanner(t, planner.WithReachabilityCheck(check))
		for _, strategy := range planner.Strategies() {
			_, err := p.Plan(ctx, strategy, "S1", "S4")
			assert.ErrorIs(t, err, context.Canceled, "%s check=%v", strategy, check)
		}
	}
}

func TestPlanner_Observer(t *testing.T) {
	rec := &recorder{}
	p := newPlanner(t, planner.WithObserver(rec))
	ctx := context.Background()

	_, err := p.Route(ctx, "S1", "S4")
	require.NoError(t, err)
	_, _ = p.Route(ctx, "S1", "I1")
	_, _ = p.FewestStops(ctx, "S1", "Nowhere")
	_, err = p.Optimal(ctx, "S1", "S4")
	require.NoError(t, err)

	require.Len(t, rec.calls, 4)
	assert.Equal(t, observation{planner.StrategyDistance, planner.OutcomeFound, 3, 2}, rec.calls[0])
	assert.Equal(t, observation{planner.StrategyDistance, planner.OutcomeNoPath, 0, 0}, rec.calls[1])
	assert.Equal(t, observation{planner.StrategyStops, planner.OutcomeNotFound, 0, 0}, rec.calls[2])
	assert.Equal(t, planner.OutcomeFound, rec.calls[3].outcome)
	assert.Equal(t, 5, rec.calls[3].expansions) // S1..S4 and X
}

func TestPlanner_Directory(t *testing.T) {
	p := newPlanner(t)

	s, err := p.Station("X")
	require.NoError(t, err)
	assert.Equal(t, "Detour", s.Line)

	// transfer stations keep the record loaded last
	s, err = p.Station("S4")
	require.NoError(t, err)
	assert.Equal(t, "Detour", s.Line)

	_, err = p.Station("Nowhere")
	assert.ErrorIs(t, err, station.ErrNotFound)

	var names []string
	for _, s := range p.Stations() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"I1", "I2", "S1", "S2", "S3", "S4", "X"}, names)
	assert.Equal(t, []string{"S1", "S4"}, p.Transfers())
	assert.Equal(t, []string{"Local", "Detour", "Island"}, p.Lines())
	assert.Equal(t, [][]string{{"S1", "S2", "S3", "S4", "X"}, {"I1", "I2"}}, p.Components())

	nbrs, err := p.Neighbors("S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"S2", "X"}, nbrs)
	_, err = p.Neighbors("Nowhere")
	assert.ErrorIs(t, err, station.ErrNotFound)
}
