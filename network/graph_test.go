package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/network"
	"github.com/katalvlaran/subway/station"
)

type lineDef struct {
	line  string
	names []string
}

// mustLines builds Lines from line → names, placing stations on a 0.01° grid.
func mustLines(t *testing.T, defs ...lineDef) *station.Lines {
	t.Helper()
	lines := station.NewLines()
	for _, d := range defs {
		seq := make([]station.Station, len(d.names))
		for i, n := range d.names {
			seq[i] = station.Station{Name: n, Lat: 0, Lng: float64(i) * 0.01}
		}
		require.NoError(t, lines.Add(d.line, seq...))
	}

	return lines
}

// TestBuild_SingleLine checks the exact adjacency of [A, B, C].
func TestBuild_SingleLine(t *testing.T) {
	g, dir := network.Build(mustLines(t, lineDef{"L1", []string{"A", "B", "C"}}))

	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
	assert.Equal(t, []string{"A", "C"}, g.Neighbors("B"))
	assert.Equal(t, []string{"B"}, g.Neighbors("C"))
	assert.Equal(t, []string{"A", "B", "C"}, g.Names())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 3, dir.Len())
}

// TestBuild_TransferMerge checks that a shared name accumulates every line's neighbors.
func TestBuild_TransferMerge(t *testing.T) {
	lines := mustLines(t,
		lineDef{"L1", []string{"A", "B"}},
		lineDef{"L2", []string{"C", "B", "D"}},
	)
	g, dir := network.Build(lines)

	assert.ElementsMatch(t, []string{"A", "C", "D"}, g.Neighbors("B"))
	assert.Equal(t, []string{"A", "C", "D"}, g.Neighbors("B"), "contribution order")
	assert.Equal(t, 3, g.Degree("B"))

	b, err := dir.Get("B")
	require.NoError(t, err)
	assert.Equal(t, "L2", b.Line)

	assert.Equal(t, []string{"B"}, network.Transfers(lines))
}

// TestBuild_NoDuplicates checks that two lines running over the same segment
// do not duplicate neighbors.
func TestBuild_NoDuplicates(t *testing.T) {
	g, _ := network.Build(mustLines(t,
		lineDef{"L1", []string{"A", "B", "C"}},
		lineDef{"L2", []string{"A", "B", "C"}},
		lineDef{"L3", []string{"C", "B"}},
	))

	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
	assert.Equal(t, []string{"A", "C"}, g.Neighbors("B"))
	assert.Equal(t, []string{"B"}, g.Neighbors("C"))
}

// TestBuild_SingleStationLine checks that a lone station gets a node but no links.
func TestBuild_SingleStationLine(t *testing.T) {
	g, dir := network.Build(mustLines(t, lineDef{"L1", []string{"Solo"}}))

	require.True(t, g.Has("Solo"))
	assert.Empty(t, g.Neighbors("Solo"))
	assert.Equal(t, 0, g.Degree("Solo"))
	assert.True(t, dir.Has("Solo"))
}

// TestBuild_EmptyLines checks the degenerate inputs.
func TestBuild_EmptyLines(t *testing.T) {
	lines := station.NewLines()
	require.NoError(t, lines.Add("Empty"))
	g, dir := network.Build(lines)

	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, dir.Len())
	assert.Nil(t, g.Neighbors("anything"))
	assert.False(t, g.Has("anything"))
}

// TestGraph_NeighborsIsCopy guards the adjacency against caller mutation.
func TestGraph_NeighborsIsCopy(t *testing.T) {
	g, _ := network.Build(mustLines(t, lineDef{"L1", []string{"A", "B", "C"}}))
	nbrs := g.Neighbors("B")
	nbrs[0] = "Z"
	assert.Equal(t, []string{"A", "C"}, g.Neighbors("B"))
}

func TestGraph_LinkIsIdempotent(t *testing.T) {
	g := network.NewGraph()
	g.Link("X", "Y")
	g.Link("X", "Y")
	assert.Equal(t, []string{"Y"}, g.Neighbors("X"))
	assert.Empty(t, g.Neighbors("Y"), "Link is one-directional")
	assert.Equal(t, []string{"X", "Y"}, g.Names())
}

func TestTransfers_None(t *testing.T) {
	lines := mustLines(t,
		lineDef{"L1", []string{"A", "B"}},
		lineDef{"L2", []string{"C", "D"}},
	)
	assert.Empty(t, network.Transfers(lines))
}
