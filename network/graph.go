package network

import "github.com/katalvlaran/subway/station"

// Graph maps a station name to its ordered, duplicate-free neighbor names.
//
// Names are remembered in first-seen order so that Names() and any iteration
// derived from it are deterministic.
type Graph struct {
	order []string
	adj   map[string][]string
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// Build constructs the adjacency graph and the station directory from lines in
// one pass over the data.
func Build(lines *station.Lines) (*Graph, *station.Directory) {
	g := NewGraph()
	dir := station.NewDirectory()

	lines.Each(func(_ string, i int, seq []station.Station) {
		s := seq[i]
		dir.Put(s)
		g.AddNode(s.Name)

		if i > 0 {
			g.Link(s.Name, seq[i-1].Name)
		}
		if i < len(seq)-1 {
			g.Link(s.Name, seq[i+1].Name)
		}
	})

	return g, dir
}

// AddNode registers name with an empty neighbor list if it is not yet known.
func (g *Graph) AddNode(name string) {
	if _, ok := g.adj[name]; ok {
		return
	}
	g.order = append(g.order, name)
	g.adj[name] = []string{}
}

// Link appends to as a neighbor of from, unless already present.
// The link is one-directional; Build links both directions by visiting both
// endpoints. Unknown names are registered.
func (g *Graph) Link(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	for _, n := range g.adj[from] {
		if n == to {
			return
		}
	}
	g.adj[from] = append(g.adj[from], to)
}

// Neighbors returns a copy of the neighbor list of name, or nil if name is not
// in the graph.
func (g *Graph) Neighbors(name string) []string {
	nbrs, ok := g.adj[name]
	if !ok {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// Has reports whether name is a node of the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.adj[name]
	return ok
}

// Degree returns the number of distinct neighbors of name (0 if unknown).
func (g *Graph) Degree(name string) int { return len(g.adj[name]) }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// Names returns node names in first-seen order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// EdgeCount returns the number of directed adjacency entries. For a graph
// produced by Build this is twice the number of distinct station pairs.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}

	return n
}

// Transfers returns the station names that appear on two or more lines, in
// first-seen order.
func Transfers(lines *station.Lines) []string {
	seen := make(map[string]map[string]struct{})
	var order []string
	lines.Each(func(line string, i int, seq []station.Station) {
		name := seq[i].Name
		set, ok := seen[name]
		if !ok {
			set = make(map[string]struct{})
			seen[name] = set
			order = append(order, name)
		}
		set[line] = struct{}{}
	})

	var out []string
	for _, name := range order {
		if len(seen[name]) > 1 {
			out = append(out, name)
		}
	}

	return out
}
