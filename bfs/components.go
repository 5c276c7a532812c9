// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/ftcenters/core"
)

// Components partitions g into connected components.
//
// Each component lists its vertex IDs sorted ascending; components are
// ordered by their smallest ID. Directed edges are followed forward only,
// so on directed graphs the result is a reachability partition seeded in ID order.
//
// Complexity: O(V + E).
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id,
			WithContext(ctx),
			WithFilterNeighbor(func(_, nbr string) bool { return !seen[nbr] }),
		)
		if err != nil {
			return nil, err
		}
		comp := make([]string, len(res.Order))
		copy(comp, res.Order)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
