// SPDX-License-Identifier: MIT

// File: reassign.go
// Role: Bottom-up re-assignment of vertices the flow left without a center.
//       Leaves of the monarch forest group their leftovers into full centers
//       and hand the remainder to their parent; roots seat whatever is left.

package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ftcenters/core"
	"github.com/katalvlaran/ftcenters/dfs"
)

// reassign seats every unassigned vertex of the component.
func (a *arena) reassign(ctx context.Context) error {
	order, err := a.forestOrder(ctx)
	if err != nil {
		return err
	}

	passed := make(map[int][]int, len(order))
	for _, m := range order {
		if err = ctx.Err(); err != nil {
			return err
		}
		pool := passed[m]
		delete(passed, m)

		interior := a.unassigned(m)
		if a.mode == ModeConservative {
			rim, err := a.boundary(ctx, m)
			if err != nil {
				return err
			}
			onRim := make(map[int]bool, len(rim))
			for _, u := range rim {
				onRim[u] = true
			}
			var rimPool, rest []int
			for _, v := range interior {
				if onRim[v] {
					rimPool = append(rimPool, v)
				} else {
					rest = append(rest, v)
				}
			}
			pool = a.split(append(pool, rimPool...), m)
			interior = rest
		}

		left := a.split(append(pool, interior...), m)
		if len(left) == 0 {
			continue
		}
		if p := a.nodes[m].parent; p != none {
			passed[p] = append(passed[p], left...)
			continue
		}
		a.makeCenter(a.pickCenter(left, m), left)
	}

	return nil
}

// split shuffles pool, cuts it into groups of exactly L and seats each group.
// The remainder (fewer than L vertices) is returned.
func (a *arena) split(pool []int, m int) []int {
	if len(pool) == 0 {
		return nil
	}
	shuffle(pool, a.rng)
	k := len(pool) / a.capacity
	for g := 0; g < k; g++ {
		group := pool[g*a.capacity : (g+1)*a.capacity]
		a.makeCenter(a.pickCenter(group, m), group)
	}

	return pool[k*a.capacity:]
}

// pickCenter returns the first member of group inside m's empire, or group[0].
func (a *arena) pickCenter(group []int, m int) int {
	for _, v := range group {
		if a.nodes[v].owner == m {
			return v
		}
	}

	return group[0]
}

// forestOrder returns the forest monarchs leaf-first, so every child comes
// before its parent.
func (a *arena) forestOrder(ctx context.Context) ([]int, error) {
	members := a.forestNodes()
	fg := core.NewGraph(core.WithDirected(true))
	for _, m := range members {
		if err := fg.AddVertex(a.nodes[m].id); err != nil {
			return nil, err
		}
	}
	for _, m := range members {
		if p := a.nodes[m].parent; p != none {
			if _, err := fg.AddEdge(a.nodes[p].id, a.nodes[m].id, 0); err != nil {
				return nil, fmt.Errorf("forest edge %s→%s: %w", a.nodes[p].id, a.nodes[m].id, err)
			}
		}
	}

	topo, err := dfs.TopologicalSort(fg, dfs.WithCancelContext(ctx))
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return nil, fmt.Errorf("%w: monarch forest: %v", errInternal, err)
		}
		return nil, err
	}

	out := make([]int, len(topo))
	for i, id := range topo {
		out[len(topo)-1-i] = a.index[id]
	}

	return out, nil
}

// addReserve turns the non-center r into a failover center serving only itself.
func (a *arena) addReserve(r int) {
	n := &a.nodes[r]
	if old := n.center; old != none {
		clients := a.nodes[old].clients[:0]
		for _, c := range a.nodes[old].clients {
			if c != r {
				clients = append(clients, c)
			}
		}
		a.nodes[old].clients = clients
	}
	n.center = r
	n.clients = []int{r}
	n.reserve = true
}
