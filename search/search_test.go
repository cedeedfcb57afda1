package search_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/geo"
	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/search"
	"github.com/katalvlaran/subway/station"
)

// st is shorthand for a station at (lat, lng).
func st(name string, lat, lng float64) station.Station {
	return station.Station{Name: name, Lat: lat, Lng: lng}
}

// build assembles lines in the given order and returns graph and directory.
func build(t *testing.T, defs ...[]station.Station) (*network.Graph, *station.Directory) {
	t.Helper()
	lines := station.NewLines()
	for i, seq := range defs {
		require.NoError(t, lines.Add(fmt.Sprintf("L%d", i+1), seq...))
	}
	g, dir := network.Build(lines)

	return g, dir
}

// TestSearch_StraightLine: S1(0,0) S2(0,1) S3(0,2) on one line.
func TestSearch_StraightLine(t *testing.T) {
	g, dir := build(t, []station.Station{st("S1", 0, 0), st("S2", 0, 1), st("S3", 0, 2)})

	path, err := search.Search(g, "S1", "S3", search.WithDirectory(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2", "S3"}, path)

	// and back again
	path, err = search.Search(g, "S3", "S1", search.WithDirectory(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"S3", "S2", "S1"}, path)
}

// TestSearch_ExpressShortcut: line A = [S1,S2,S3], line B = [S1,S3].
// S2 sits off the S1–S3 arc, so the direct hop is strictly shorter.
func TestSearch_ExpressShortcut(t *testing.T) {
	g, dir := build(t,
		[]station.Station{st("S1", 0, 0), st("S2", 1, 1), st("S3", 0, 2)},
		[]station.Station{st("S1", 0, 0), st("S3", 0, 2)},
	)

	res, err := search.Run(g, "S1", "S3", search.WithDirectory(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S3"}, res.Path)
	assert.InDelta(t, geo.Distance(geo.Point{}, geo.Point{Lng: 2}), res.Cost, 1e-9)
	assert.Equal(t, "distance", res.Strategy)
	assert.Equal(t, 2, res.Expansions, "S1–S2 is popped first, then S1–S3 ranks ahead of S1–S2–S3")
}

// TestSearch_PrefersShorterTransferRoute routes across a transfer station.
//
//	L1: A ─ B ─ C ─ D        (long way round, via C at lat 1)
//	L2: E ─ B ─ F ─ D        (F close to the B–D line)
func TestSearch_PrefersShorterTransferRoute(t *testing.T) {
	g, dir := build(t,
		[]station.Station{st("A", 0, 0), st("B", 0, 1), st("C", 1, 2), st("D", 0, 3)},
		[]station.Station{st("E", -1, 1), st("B", 0, 1), st("F", 0.1, 2), st("D", 0, 3)},
	)

	path, err := search.Search(g, "A", "D", search.WithDirectory(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "F", "D"}, path)
}

// TestSearch_SelfIsSingleElement checks the source == destination boundary.
func TestSearch_SelfIsSingleElement(t *testing.T) {
	g, dir := build(t, []station.Station{st("S1", 0, 0), st("S2", 0, 1)})

	res, err := search.Run(g, "S1", "S1", search.WithDirectory(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, res.Path)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 0, res.Expansions)
}

// TestSearch_Disconnected returns ErrNoPathFound.
func TestSearch_Disconnected(t *testing.T) {
	g, dir := build(t,
		[]station.Station{st("A", 0, 0), st("B", 0, 1)},
		[]station.Station{st("C", 5, 5), st("D", 5, 6)},
	)

	_, err := search.Search(g, "A", "D", search.WithDirectory(dir))
	require.ErrorIs(t, err, search.ErrNoPathFound)

	// unknown source behaves like an isolated station
	_, err = search.Search(g, "nowhere", "D", search.WithDirectory(dir))
	require.ErrorIs(t, err, search.ErrNoPathFound)
}

// TestSearch_StableTieBreak: with equal ranks the earlier-pushed path wins.
//
//	S ─ A ─ D
//	S ─ B ─ D      (S lists A before B)
func TestSearch_StableTieBreak(t *testing.T) {
	g := network.NewGraph()
	for _, e := range [][2]string{{"S", "A"}, {"S", "B"}, {"A", "D"}, {"B", "D"}} {
		g.Link(e[0], e[1])
		g.Link(e[1], e[0])
	}

	res, err := search.Run(g, "S", "D", search.WithStrategy(search.ByStops()))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "D"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, "stops", res.Strategy)
}

// TestSearch_ReturnsFrontierBestAtFirstSuccess shows the search accepts the
// best-ranked frontier candidate the moment it ends at the destination, even
// though a route it has not finished exploring would rank better.
//
//	S ─1─ A ─1─ D
//	S ─5─ B ─(−10)─ D
func TestSearch_ReturnsFrontierBestAtFirstSuccess(t *testing.T) {
	g := network.NewGraph()
	for _, e := range [][2]string{{"S", "A"}, {"A", "D"}, {"S", "B"}, {"B", "D"}} {
		g.Link(e[0], e[1])
		g.Link(e[1], e[0])
	}
	costs := map[[2]string]float64{
		{"S", "A"}: 1, {"A", "D"}: 1,
		{"S", "B"}: 5, {"B", "D"}: -10,
	}
	discount := search.Strategy{
		Name: "discount",
		Step: func(from, to string) (float64, error) {
			if c, ok := costs[[2]string{from, to}]; ok {
				return c, nil
			}
			return costs[[2]string{to, from}], nil
		},
	}

	res, err := search.Run(g, "S", "D", search.WithStrategy(discount))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "D"}, res.Path)
	assert.Equal(t, 2.0, res.Cost, "S–B–D would rank −5 but is never completed")
}

// TestSearch_MissingDirectoryEntry propagates station.ErrNotFound.
func TestSearch_MissingDirectoryEntry(t *testing.T) {
	g, dir := build(t, []station.Station{st("A", 0, 0), st("B", 0, 1)})
	g.Link("B", "Ghost")

	_, err := search.Search(g, "A", "Ghost", search.WithDirectory(dir))
	require.ErrorIs(t, err, station.ErrNotFound)
}

// TestSearch_Errors covers argument and option validation.
func TestSearch_Errors(t *testing.T) {
	g, dir := build(t, []station.Station{st("A", 0, 0), st("B", 0, 1)})

	_, err := search.Search(nil, "A", "B", search.WithDirectory(dir))
	assert.ErrorIs(t, err, search.ErrNilGraph)

	_, err = search.Search(g, "", "B", search.WithDirectory(dir))
	assert.ErrorIs(t, err, search.ErrEmptyStation)

	_, err = search.Search(g, "A", "B")
	assert.ErrorIs(t, err, search.ErrNoStrategy)

	_, err = search.Search(g, "A", "B", search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Search(g, "A", "B", search.WithStrategy(search.Strategy{Name: "broken"}))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestSearch_Bounds covers the expansion limit and context cancellation.
func TestSearch_Bounds(t *testing.T) {
	g, dir := build(t, []station.Station{st("A", 0, 0), st("B", 0, 1), st("C", 0, 2), st("D", 0, 3)})

	_, err := search.Search(g, "A", "D", search.WithDirectory(dir), search.WithMaxExpansions(1))
	assert.ErrorIs(t, err, search.ErrExpansionLimit)

	path, err := search.Search(g, "A", "D", search.WithDirectory(dir), search.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.Search(g, "A", "D", search.WithDirectory(dir), search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearch_Hooks verifies the expansion cadence through the hooks.
func TestSearch_Hooks(t *testing.T) {
	g, dir := build(t, []station.Station{st("S1", 0, 0), st("S2", 0, 1), st("S3", 0, 2)})

	var expanded [][]string
	var ranks []int
	res, err := search.Run(g, "S1", "S3",
		search.WithDirectory(dir),
		search.WithOnExpand(func(p []string, _ int) { expanded = append(expanded, p) }),
		search.WithOnRank(func(n int) { ranks = append(ranks, n) }),
	)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"S1"}, {"S1", "S2"}}, expanded)
	assert.Equal(t, []int{1, 1}, ranks)
	assert.Equal(t, 2, res.Expansions)
	assert.Equal(t, 1, res.PeakFrontier)
}
