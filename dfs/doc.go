// SPDX-License-Identifier: MIT

// Package dfs provides a deterministic, iterative topological sort.
//
// The clustering engine links monarchs parent→child in a directed graph
// and reverses the topological order to process the forest leaves first.
// A cycle in that graph is reported as ErrCycleDetected.
package dfs
