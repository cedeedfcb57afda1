package dfs

import "fmt"

// walker encapsulates state during DFS.
type walker struct {
	graph Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g. If opts include WithFullTraversal,
// it covers all disconnected components in g.Names() order and start is
// ignored; otherwise, it starts only from start.
// Returns the partial Result and the error if aborted by context or hook.
func DFS(g Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	names := g.Names()
	res := &Result{
		Order:   make([]string, 0, len(names)),
		Depth:   make(map[string]int, len(names)),
		Parent:  make(map[string]string, len(names)),
		Visited: make(map[string]bool, len(names)),
	}
	w := &walker{graph: g, opts: o, res: res}

	roots := []string{start}
	if o.FullTraversal {
		roots = names
	}
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		res.Roots = append(res.Roots, root)
		if err := w.traverse(root, 0); err != nil {
			res.SkippedNeighbors = w.opts.skipped
			return res, err
		}
	}
	res.SkippedNeighbors = w.opts.skipped

	return res, nil
}

// Components partitions g into connected groups of stations. Groups appear
// in order of their first station in g.Names(); stations within a group are
// in discovery (pre-order) order.
func Components(g Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var groups [][]string
	visit := func(name string) error {
		groups[len(groups)-1] = append(groups[len(groups)-1], name)
		return nil
	}
	seen := make(map[string]bool)
	for _, root := range g.Names() {
		if seen[root] {
			continue
		}
		groups = append(groups, nil)
		res, err := DFS(g, root, append(opts, WithOnVisit(visit))...)
		if err != nil {
			return nil, err
		}
		for name := range res.Visited {
			seen[name] = true
		}
	}

	return groups, nil
}

// traverse visits name at depth, recursing to neighbors.
func (w *walker) traverse(name string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[name] = true
	w.res.Depth[name] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(name); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", name, err)
		}
	}

	for _, nbr := range w.graph.Neighbors(name) {
		if nbr == name {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.opts.skipped++
			continue
		}
		if !w.res.Visited[nbr] {
			w.res.Parent[nbr] = name
			if err := w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(name); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", name, err)
		}
	}

	w.res.Order = append(w.res.Order, name)

	return nil
}
