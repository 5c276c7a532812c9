// SPDX-License-Identifier: MIT

// Package bfs defines the configuration types and result structures
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by BFS when preconditions fail.
var (
	// ErrStartVertexNotFound indicates the specified start vertex does not exist in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil indicates a nil graph was passed to a traversal.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates an option was supplied with an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps failures while listing adjacency.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior by mutating BFSOptions before traversal.
type Option func(*BFSOptions)

// BFSOptions holds parameters and hooks for a BFS run.
type BFSOptions struct {
	// Ctx allows cancellation or timeout of the BFS.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued; returning an error aborts the search.
	OnVisit func(id string, depth int) error

	// MaxDepth limits the search to vertices at distance ≤ MaxDepth.
	// A negative value means unlimited; zero visits only the start vertex.
	MaxDepth int

	// FilterNeighbor decides whether to traverse the edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns a BFSOptions with no depth limit and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       -1,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a Context for cancellation or deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook called on each dequeued vertex.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the traversal radius. d < 0 is an option violation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor restricts which edges BFS traverses.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the output of a BFS traversal.
type BFSResult struct {
	// Order lists vertex IDs in the order they were visited.
	Order []string

	// Depth maps each visited vertex ID to its hop distance from the start.
	Depth map[string]int

	// Parent maps each visited vertex ID to its predecessor; the start has no entry.
	Parent map[string]string
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// AtDepth returns the visited vertices at exactly depth d, in visit order.
func (r *BFSResult) AtDepth(d int) []string {
	var out []string
	for _, id := range r.Order {
		if r.Depth[id] == d {
			out = append(out, id)
		}
	}

	return out
}
