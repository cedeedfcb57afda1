package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/subway/station"
)

// Shortest computes minimum great-circle route distances from Options.Source
// to every station of g.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g and dir must be non-nil (ErrNilGraph, ErrNilDirectory).
//  3. MaxDistance must be ≥ 0 (ErrBadMaxDistance).
//  4. g must contain Source (ErrSourceNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Shortest(g Graph, dir *station.Directory, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if dir == nil {
		return nil, nil, ErrNilDirectory
	}
	if cfg.MaxDistance < 0 || math.IsNaN(cfg.MaxDistance) {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadMaxDistance, cfg.MaxDistance)
	}
	if !g.Has(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	names := g.Names()
	r := &runner{
		g:       g,
		dir:     dir,
		options: cfg,
		dist:    make(map[string]float64, len(names)),
		prev:    make(map[string]string, len(names)),
		visited: make(map[string]bool, len(names)),
		pq:      make(nodePQ, 0, len(names)),
	}

	r.init(names)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the route from source to dest out of a predecessor map
// returned by Shortest with WithReturnPath.
func PathTo(dist map[string]float64, prev map[string]string, source, dest string) ([]string, error) {
	d, ok := dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}
	path := []string{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		if cur == "" {
			return nil, fmt.Errorf("%w: broken predecessor chain at %q", ErrUnreachable, path[len(path)-1])
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Shortest execution.
type runner struct {
	g       Graph
	dir     *station.Directory
	options Options
	dist    map[string]float64 // station → best known distance from Source
	prev    map[string]string  // station → predecessor on the best route
	visited map[string]bool    // station → distance finalized
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init(names []string) {
	for _, v := range names {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process settles stations in order of increasing distance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
func (r *runner) relax(u string) error {
	for _, v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		w, err := r.dir.DistanceBetween(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %q→%q: %w", u, v, err)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.dist[v]; ok && newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a station and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, using lazy decrease-key.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
