// SPDX-License-Identifier: MIT

// File: view.go
// Role: Non-mutating graph views (copies of the topology with altered properties).
// Determinism:
//   - Preserves vertex/edge IDs and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// viewEdgeWeightZero is the weight forced by views with unweighted semantics.
const viewEdgeWeightZero float64 = 0

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Vertex metadata maps are shared. The edge ID counter is carried over.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	return project(g, g.options(true), false)
}

// UnweightedView returns a new Graph with identical topology but with all edge
// weights set to zero and the weighted flag turned off. Hop-count algorithms
// (bfs) run on this view.
//
// Complexity: O(V + E).
func UnweightedView(g *Graph) *Graph {
	return project(g, g.options(false), true)
}

// InducedSubgraph returns a new Graph induced by the set keep of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. IDs in keep that are absent from g are ignored.
//
// Only the adjacency of kept vertices is scanned.
// Complexity: O(K + Σ deg(k)) for K kept vertices.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options(true)...)

	g.muVert.RLock()
	for id, in := range keep {
		if v, ok := g.vertices[id]; ok && in {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for id := range out.vertices {
		for to, bucket := range g.adjacencyList[id] {
			if _, ok := out.vertices[to]; !ok {
				continue
			}
			for eid := range bucket {
				if _, dup := out.edges[eid]; dup {
					continue
				}
				e := g.edges[eid]
				ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
				out.edges[eid] = ne
				linkAdjacency(out, ne)
			}
		}
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	g.muEdgeAdj.RUnlock()

	return out
}

// ThresholdView returns a new Graph holding every vertex of g and exactly the
// edges whose weight is at most t.
//
// Complexity: O(V + E).
func ThresholdView(g *Graph, t float64) *Graph {
	out := g.Clone()
	out.FilterEdges(func(e *Edge) bool { return e.Weight <= t })

	return out
}

// project copies g into a new graph built with opts.
// zeroWeights forces viewEdgeWeightZero on every copied edge.
func project(g *Graph, opts []GraphOption, zeroWeights bool) *Graph {
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carried so future AddEdge() calls on the copy cannot collide with copied IDs.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		if zeroWeights {
			ne.Weight = viewEdgeWeightZero
		}
		out.edges[eid] = ne
		linkAdjacency(out, ne)
	}
	g.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
