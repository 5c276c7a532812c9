// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus the radius queries the
// clustering engine is built on.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start vertex.
//     Edge weights are ignored.
//   - Ball(g, v, r):     every vertex within r hops of v (v included).
//   - Frontier(g, v, r): vertices at exactly r hops from v.
//   - Components(g):     connected components, sorted and deterministic.
//
// Hooks and limits
//
//   - WithOnVisit (may abort with an error)
//   - WithFilterNeighbor (prune individual edges)
//   - WithMaxDepth (radius bound; 0 visits only the start)
//   - WithContext (cancellation is checked once per dequeued vertex)
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ)
//   - Memory: O(V)
package bfs
