// SPDX-License-Identifier: MIT

// Package dijkstra provides Dijkstra's shortest-path algorithm on graphs with
// non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex;
//     ties are broken by vertex ID so results are reproducible.
//   - Supports optional path reconstruction and a distance cap.
//
// The clustering engine uses it to price assignment arcs: the cost of serving
// a vertex from a monarch is the weighted distance between them in the
// threshold subgraph.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Distance to B: %g, parent: %s\n", dist["B"], prev["B"])
package dijkstra
