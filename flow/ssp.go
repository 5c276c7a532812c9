// SPDX-License-Identifier: MIT

package flow

import (
	"container/heap"
	"context"
	"fmt"
	"math"
)

// SuccessiveShortestPaths is a Solver that routes flow along shortest
// augmenting paths under Johnson potentials.
//
// Lower bounds are removed by pre-routing Lower units on every arc and
// shifting node balances accordingly. A super source feeds every node with
// positive balance and a super sink drains every node with negative balance;
// the network is feasible iff the super source saturates.
//
// Initial potentials come from Bellman-Ford, so negative arc costs are
// accepted as long as no negative cycle is reachable. Each later round
// runs Dijkstra on non-negative reduced costs.
//
// Complexity: O(F · (V + E) log V) after an O(V·E) Bellman-Ford pass,
// where F is the total supply.
type SuccessiveShortestPaths struct {
	opts FlowOptions
}

// NewSuccessiveShortestPaths returns a solver configured by opts.
func NewSuccessiveShortestPaths(opts FlowOptions) *SuccessiveShortestPaths {
	opts.normalize()

	return &SuccessiveShortestPaths{opts: opts}
}

var _ Solver = (*SuccessiveShortestPaths)(nil)

// MinCostFlow implements Solver.
//
// Errors: ErrNilNetwork, ErrUnbalanced, ArcError, ErrNegativeCycle,
// ErrIterationLimit, ErrInfeasible (wrapped with the shortfall), ctx.Err().
func (s *SuccessiveShortestPaths) MinCostFlow(ctx context.Context, net *Network) (*Solution, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}

	n := net.NodeCount()
	src, dst := n, n+1
	r := newResidual(n + 2)

	balance := make([]int64, n)
	copy(balance, net.supply)
	arcEdge := make([]int, len(net.arcs))
	for i, a := range net.arcs {
		balance[a.From] -= a.Lower
		balance[a.To] += a.Lower
		arcEdge[i] = r.addEdge(a.From, a.To, a.Upper-a.Lower, a.Cost)
	}
	var need int64
	for v, b := range balance {
		switch {
		case b > 0:
			r.addEdge(src, v, b, 0)
			need += b
		case b < 0:
			r.addEdge(v, dst, -b, 0)
		}
	}

	pot, err := r.bellmanFord(src)
	if err != nil {
		return nil, err
	}

	var sent int64
	iterations := 0
	dist := make([]float64, n+2)
	prevEdge := make([]int, n+2)
	for sent < need {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if s.opts.MaxIterations > 0 && iterations >= s.opts.MaxIterations {
			return nil, fmt.Errorf("%w: %d augmentations, %d/%d units", ErrIterationLimit, iterations, sent, need)
		}
		if !r.shortestPath(src, dst, pot, dist, prevEdge, s.opts.Epsilon) {
			break
		}
		for v := range pot {
			if !math.IsInf(dist[v], 1) {
				pot[v] += dist[v]
			}
		}

		f := need - sent
		for v := dst; v != src; v = r.to[prevEdge[v]^1] {
			if c := r.cap[prevEdge[v]]; c < f {
				f = c
			}
		}
		for v := dst; v != src; v = r.to[prevEdge[v]^1] {
			r.push(prevEdge[v], f)
		}
		sent += f
		iterations++
		s.opts.debug("ssp_augment", "units", f, "sent", sent, "need", need)
	}
	if sent < need {
		return nil, fmt.Errorf("%w: routed %d of %d units", ErrInfeasible, sent, need)
	}

	sol := &Solution{Flow: make([]int64, len(net.arcs)), Iterations: iterations}
	for i, a := range net.arcs {
		f := a.Lower + r.pushed(arcEdge[i])
		sol.Flow[i] = f
		sol.Cost += float64(f) * a.Cost
	}

	return sol, nil
}

// bellmanFord returns shortest distances from src over positive-capacity
// edges; unreachable nodes get potential 0.
func (r *residual) bellmanFord(src int) ([]float64, error) {
	n := len(r.adj)
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	for round := 0; round < n; round++ {
		changed := false
		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, e := range r.adj[u] {
				if r.cap[e] <= 0 {
					continue
				}
				if nd := dist[u] + r.cost[e]; nd < dist[r.to[e]]-defaultEpsilon {
					dist[r.to[e]] = nd
					changed = true
				}
			}
		}
		if !changed {
			for i := range dist {
				if math.IsInf(dist[i], 1) {
					dist[i] = 0
				}
			}
			return dist, nil
		}
	}

	return nil, ErrNegativeCycle
}

// shortestPath runs Dijkstra on reduced costs from src and records the
// entering edge of every reached node. It reports whether dst was reached.
func (r *residual) shortestPath(src, dst int, pot, dist []float64, prevEdge []int, eps float64) bool {
	for i := range dist {
		dist[i] = math.Inf(1)
		prevEdge[i] = -1
	}
	dist[src] = 0
	pq := &indexPQ{{node: src}}
	done := make([]bool, len(dist))
	for pq.Len() > 0 {
		it := heap.Pop(pq).(indexItem)
		u := it.node
		if done[u] {
			continue
		}
		done[u] = true
		for _, e := range r.adj[u] {
			if r.cap[e] <= 0 {
				continue
			}
			v := r.to[e]
			rc := r.cost[e] + pot[u] - pot[v]
			if rc < 0 && rc > -eps {
				rc = 0
			}
			if nd := dist[u] + rc; nd < dist[v] {
				dist[v] = nd
				prevEdge[v] = e
				heap.Push(pq, indexItem{node: v, dist: nd})
			}
		}
	}

	return !math.IsInf(dist[dst], 1)
}

type indexItem struct {
	node int
	dist float64
}

// indexPQ is a min-heap of indexItem ordered by dist, then node.
type indexPQ []indexItem

func (pq indexPQ) Len() int { return len(pq) }

func (pq indexPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

func (pq indexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *indexPQ) Push(x interface{}) { *pq = append(*pq, x.(indexItem)) }

func (pq *indexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
