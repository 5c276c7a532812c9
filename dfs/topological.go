// SPDX-License-Identifier: MIT

// Package dfs provides depth-first algorithms on directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E log Δ)
//   - Memory: O(V)     (explicit stack and state map)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ftcenters/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// frame is one vertex on the explicit DFS stack with the index of its next child.
type frame struct {
	id   string
	next int
	kids []string
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int
	order []string // post-order
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are explored in ascending ID order and children in ascending ID
// order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrUndirectedGraph, ErrCycleDetected, ErrNeighborFetch,
// ctx.Err() when cancelled through WithCancelContext.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit runs an iterative DFS rooted at root.
func (t *topoSorter) visit(root string) error {
	kids, err := t.children(root)
	if err != nil {
		return err
	}
	t.state[root] = Gray
	stack := []*frame{{id: root, kids: kids}}

	for len(stack) > 0 {
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		if top.next == len(top.kids) {
			t.state[top.id] = Black
			t.order = append(t.order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.kids[top.next]
		top.next++

		switch t.state[child] {
		case Gray:
			return fmt.Errorf("%w: back edge %s→%s", ErrCycleDetected, top.id, child)
		case Black:
			continue
		}
		grand, err := t.children(child)
		if err != nil {
			return err
		}
		t.state[child] = Gray
		stack = append(stack, &frame{id: child, kids: grand})
	}

	return nil
}

// children lists the heads of directed edges leaving id, sorted by ID.
func (t *topoSorter) children(id string) ([]string, error) {
	ids, err := t.graph.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}

	return ids, nil
}
