// Package bfs provides a breadth-first walk over implicit graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - The graph is a neighbor function func(N) []N over any comparable N,
//     so grid cells, voxels or puzzle states are walked without building
//     an explicit graph first.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a node is first discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so the visit sequence is reproducible for a deterministic function.
//
// Complexity (V = reachable nodes, E = edges among them)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.Walk(start, neighbors,
//	    bfs.WithMaxDepth[Cell](3),
//	    bfs.WithOnVisit(func(c Cell, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrNilNeighbors     if the neighbor function is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - The context error on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
