// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges leaving the given vertex.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge (mirrored adjacency); self-loops appear once.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID) and existence (ErrVertexNotFound).
//   - Stage 2: Collect edge IDs from adjacencyList[id] buckets and map them to *Edge.
//   - Stage 3: Sort by Edge.ID ascending.
//
// Complexity: O(d log d) where d is the number of incident edges.
// Returned *Edge values are live catalog entries; treat them as read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			if e, ok := g.edges[eid]; ok {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
// A self-loop lists id itself.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacencyList[id]))
	for to, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// linkAdjacency registers e in adjacencyList, mirroring undirected non-loop edges.
// Caller holds the muEdgeAdj write lock.
func linkAdjacency(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}

func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency drops e.ID from from→to and, for undirected non-loop edges, to→from.
// Empty inner buckets are pruned; per-vertex buckets stay in place.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}
