// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are non-negative float64
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges(), Neighbors() and NeighborIDs()
// all return sorted results, so algorithms built on top are reproducible for
// a fixed random seed.
//
// Views (view.go) never mutate their source:
//
//   - Clone            deep copy
//   - UnweightedView   same topology, zero weights (hop counting)
//   - InducedSubgraph  restriction to a vertex set (connected components)
//   - ThresholdView    all vertices, only edges with weight ≤ t
//
// Vertex metadata carries inert per-vertex data such as planar positions
// ("x", "y") loaded from graph documents.
package core
