// Package bfs provides breadth-first search over implicit graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// Nodes may be any comparable value; the graph is given by a neighbor
// function, so grids and voxel spaces never need to be materialised.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	neighbors func(N) []N
	opts      Options[N]
	ctx       context.Context
	queue     []queueItem[N]
	res       *Result[N]
}

// Walk runs breadth-first search from start, applying any number of
// functional Options. neighbors must return the successors of a node in a
// stable order; the visit sequence follows it.
// Returns ErrNilNeighbors for a nil neighbor function, ErrOptionViolation
// for bad options, the context error on cancellation, or any user-supplied
// hook error. On error the partial Result is returned alongside it.
func Walk[N comparable](start N, neighbors func(N) []N, opts ...Option[N]) (*Result[N], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		neighbors: neighbors,
		opts:      o,
		ctx:       o.Ctx,
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue records n at depth d, calls OnEnqueue, and adds it to the queue.
// Depth doubles as the visited set.
func (w *walker[N]) enqueue(n N, d int) {
	w.res.Depth[n] = d
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.node) {
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[nbr]; !seen {
			w.res.Parent[nbr] = item.node
			w.enqueue(nbr, nextDepth)
		}
	}
}
