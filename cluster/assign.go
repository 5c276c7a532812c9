// SPDX-License-Identifier: MIT

// File: assign.go
// Role: Domain assignment. Routes component vertices to monarchs through a
//       min-cost flow so that every monarch serves at most L clients.
// Network layout (dense node indices):
//   source → monarch   [0, L]  cost 0
//   monarch → vertex   [0, 1]  cost = shortest-path distance from the monarch's
//                              representative, 0 on the monarch's own arc;
//                              a backup minor gets no arc to its major
//   vertex → sink      [0, 1]  cost 0
// Supplies are ±F where F is the network's max-flow value.
// Only full domains (exactly L clients) survive; the rest go back to
// re-assignment, which packs them into full groups.

package cluster

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/ftcenters/flow"
)

// clientArc ties a flow arc back to the (monarch, vertex) pair it serves.
type clientArc struct {
	arc     int
	monarch int
	vertex  int
}

// assignDomains builds and solves the assignment network of the arena and
// records the resulting centers. Domains short of L clients and monarchs
// left without their own seat release their clients.
func (a *arena) assignDomains(ctx context.Context, solver flow.Solver, fo flow.FlowOptions) error {
	monarchs := a.monarchs()
	if len(monarchs) == 0 {
		return nil
	}

	net := flow.NewNetwork(0)
	src := net.AddNode(0)
	dst := net.AddNode(0)
	mNode := make([]int, len(monarchs))
	for i := range monarchs {
		mNode[i] = net.AddNode(0)
	}
	vNode := make([]int, a.size())
	for v := range a.nodes {
		vNode[v] = net.AddNode(0)
		if _, err := net.AddArc(vNode[v], dst, 0, 1, 0); err != nil {
			return err
		}
	}

	var arcs []clientArc
	for i, m := range monarchs {
		if _, err := net.AddArc(src, mNode[i], 0, int64(a.capacity), 0); err != nil {
			return err
		}
		rep := a.nodes[m].major
		if rep == none {
			rep = m
		}
		reach, err := a.ball(ctx, rep, a.radii.empire)
		if err != nil {
			return err
		}
		for _, v := range reach {
			if v == rep && rep != m {
				// The representative always holds its own zero-cost seat.
				continue
			}
			cost := 0.0
			if v != m {
				if cost, err = a.distance(rep, v); err != nil {
					return err
				}
				if math.IsInf(cost, 1) {
					continue
				}
			}
			idx, err := net.AddArc(mNode[i], vNode[v], 0, 1, cost)
			if err != nil {
				return err
			}
			arcs = append(arcs, clientArc{arc: idx, monarch: m, vertex: v})
		}
	}

	total, err := flow.Dinic(ctx, net, src, dst, fo)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: max flow: %v", ErrSolverFailure, err)
	}
	if total == 0 {
		return nil
	}
	if err = net.SetSupply(src, total); err != nil {
		return err
	}
	if err = net.SetSupply(dst, -total); err != nil {
		return err
	}

	sol, err := solver.MinCostFlow(ctx, net)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}

	for _, ca := range arcs {
		if sol.Flow[ca.arc] > 0 {
			a.nodes[ca.vertex].center = ca.monarch
			a.nodes[ca.monarch].clients = append(a.nodes[ca.monarch].clients, ca.vertex)
		}
	}
	a.releasePartial(monarchs)
	a.releaseUnseated(monarchs)

	return nil
}

// releasePartial returns the clients of every domain holding fewer than L
// vertices to the unassigned pool.
func (a *arena) releasePartial(monarchs []int) {
	for _, m := range monarchs {
		n := &a.nodes[m]
		if len(n.clients) == 0 || len(n.clients) >= a.capacity {
			continue
		}
		for _, c := range n.clients {
			a.nodes[c].center = none
		}
		n.clients = nil
	}
}

// releaseUnseated repeatedly strips clients from monarchs that do not serve
// themselves, until every monarch with clients is its own client.
func (a *arena) releaseUnseated(monarchs []int) {
	for changed := true; changed; {
		changed = false
		for _, m := range monarchs {
			n := &a.nodes[m]
			if len(n.clients) == 0 || n.center == m {
				continue
			}
			for _, c := range n.clients {
				a.nodes[c].center = none
			}
			n.clients = nil
			changed = true
		}
	}
}
