package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a station with its BFS depth and its parent.
type queueItem struct {
	name   string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first traversal on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx errors, or any OnVisit error.
func BFS(g Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// Reachable reports whether to can be reached from from. A from that is not
// in the graph reaches nothing.
func Reachable(ctx context.Context, g Graph, from, to string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Has(from) {
		return false, nil
	}
	res, err := BFS(g, from, WithContext(ctx))
	if err != nil {
		return false, err
	}

	return res.Reached(to), nil
}

// enqueue marks name visited at depth d, records its parent and queues it.
func (w *walker) enqueue(name string, d int, parent string) {
	w.visited[name] = true
	w.res.Depth[name] = d
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.opts.OnEnqueue(name, d)
	w.queue = append(w.queue, queueItem{name: name, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.name, item.depth)

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.name)
	if err := w.opts.OnVisit(item.name, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues unseen neighbors.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.name) {
		if !w.opts.FilterNeighbor(item.name, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.name)
		}
	}
}
