// SPDX-License-Identifier: MIT

// Package dfs defines types and sentinel errors for depth-first ordering.
package dfs

import "errors"

// Vertex visitation states.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the DFS stack.
	Black        // Black: the vertex and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirectedGraph is returned when TopologicalSort receives an undirected graph.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires a directed graph")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)
