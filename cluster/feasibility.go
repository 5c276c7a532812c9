// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ftcenters/bfs"
	"github.com/katalvlaran/ftcenters/core"
)

// ceilDiv is ⌈n/d⌉ for n ≥ 0, d > 0.
func ceilDiv(n, d int) int { return (n + d - 1) / d }

// checkComponents splits the threshold graph into connected components and
// rejects the attempt with ErrComponentBound when Σ⌈n_i/L⌉ exceeds K.
// Nothing is mutated on rejection.
func checkComponents(ctx context.Context, tg *core.Graph, p Params) ([][]string, error) {
	comps, err := bfs.Components(ctx, tg)
	if err != nil {
		return nil, err
	}
	need := 0
	for _, c := range comps {
		need += ceilDiv(len(c), p.MaxClientsPerCenter)
	}
	if need > p.MaxCenters {
		return nil, fmt.Errorf("%w: %d components need %d centers, budget %d",
			ErrComponentBound, len(comps), need, p.MaxCenters)
	}

	return comps, nil
}

// componentGraph returns the subgraph of tg spanned by one component.
func componentGraph(tg *core.Graph, ids []string) (*core.Graph, error) {
	if len(ids) == 1 {
		g := core.NewGraph()
		if err := g.AddVertex(ids[0]); err != nil {
			return nil, err
		}
		return g, nil
	}
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	return core.InducedSubgraph(tg, keep), nil
}
