// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/katalvlaran/ftcenters/core"
)

// Ball returns every vertex within r hops of src, src included, in BFS visit order.
// r == 0 yields just src.
func Ball(ctx context.Context, g *core.Graph, src string, r int) ([]string, error) {
	res, err := BFS(g, src, WithContext(ctx), WithMaxDepth(r))
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Frontier returns the vertices at exactly r hops from src, in BFS visit order.
func Frontier(ctx context.Context, g *core.Graph, src string, r int) ([]string, error) {
	res, err := BFS(g, src, WithContext(ctx), WithMaxDepth(r))
	if err != nil {
		return nil, err
	}

	return res.AtDepth(r), nil
}
