// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"
	"math"
)

// Dinic computes the maximum flow from source to sink in net using Dinic's
// algorithm (level graph + blocking flows). Arc upper bounds are the
// capacities; lower bounds, costs and supplies are ignored.
//
// Steps:
//  1. Validate terminals and build the residual network (O(V + E)).
//  2. Repeat until sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from source to build levels.
//     c. DFS blocking-flow pushes, optionally rebuilding the level graph
//     every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V²E) in general; O(E√V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(ctx context.Context, net *Network, source, sink int, opts FlowOptions) (int64, error) {
	opts.normalize()
	if net == nil {
		return 0, ErrNilNetwork
	}
	n := net.NodeCount()
	if source < 0 || source >= n {
		return 0, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}
	if sink < 0 || sink >= n {
		return 0, fmt.Errorf("%w: sink %d", ErrNodeNotFound, sink)
	}
	if source == sink {
		return 0, ErrSourceEqualSink
	}

	r := newResidual(n)
	for _, a := range net.Arcs() {
		if a.From != a.To && a.Upper > 0 {
			r.addEdge(a.From, a.To, a.Upper, 0)
		}
	}

	var maxFlow int64
	augmentCount := 0
	level := make([]int, n)
	iter := make([]int, n)
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}
		if !r.levels(source, sink, level) {
			break
		}
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err := ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := r.dinicPush(level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.debug("dinic_augment", "pushed", pushed, "total", maxFlow)
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// levels fills level with BFS distances over positive-capacity edges and
// reports whether sink is reachable.
func (r *residual) levels(source, sink int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range r.adj[u] {
			v := r.to[e]
			if r.cap[e] > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[sink] >= 0
}

// dinicPush recursively pushes flow along the level graph and returns the
// amount actually sent. Recursion depth is bounded by the sink level.
func (r *residual) dinicPush(level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(r.adj[u]); iter[u]++ {
		e := r.adj[u][iter[u]]
		v := r.to[e]
		if r.cap[e] <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := available
		if r.cap[e] < send {
			send = r.cap[e]
		}
		if pushed := r.dinicPush(level, iter, v, sink, send); pushed > 0 {
			r.push(e, pushed)
			return pushed
		}
	}

	return 0
}
