// SPDX-License-Identifier: MIT

// File: attempt.go
// Role: One threshold attempt: feasibility, per-component election,
//       assignment and re-assignment, then failover padding and plan assembly.
// Concurrency:
//   - Components run under an errgroup bounded by the parallelism option.
//     Each goroutine owns its arena and random stream; results merge after Wait.

package cluster

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ftcenters/core"
)

// attemptEnv carries the read-only inputs shared by every component.
type attemptEnv struct {
	params Params
	opts   *options
}

// runAttempt computes a plan for threshold t or returns the reason it failed.
func (env attemptEnv) runAttempt(ctx context.Context, g *core.Graph, t float64, seed int64) (*Plan, error) {
	tg := core.ThresholdView(g, t)
	comps, err := checkComponents(ctx, tg, env.params)
	if err != nil {
		return nil, err
	}

	arenas := make([]*arena, len(comps))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(env.opts.parallelism)
	for i, ids := range comps {
		i, ids := i, ids
		eg.Go(func() error {
			cg, err := componentGraph(tg, ids)
			if err != nil {
				return err
			}
			a := newArena(cg, ids, env.params, deriveRNG(seed, uint64(i)))
			if err = env.solveComponent(gctx, a); err != nil {
				return fmt.Errorf("component %d: %w", i, err)
			}
			arenas[i] = a
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	total := padReserves(arenas, env.params, deriveRNG(seed, streamPadding))
	if total > env.params.MaxCenters {
		return nil, fmt.Errorf("%w: %d centers, budget %d", ErrBudgetExceeded, total, env.params.MaxCenters)
	}

	plan := buildPlan(arenas, t, env.params.mode())
	comp := make(map[string]int, g.VertexCount())
	for i, ids := range comps {
		for _, v := range ids {
			comp[v] = i
		}
	}
	if err = plan.check(g.Vertices(), comp, env.params); err != nil {
		return nil, err
	}

	return plan, nil
}

// solveComponent runs election, domain assignment and re-assignment on a.
func (env attemptEnv) solveComponent(ctx context.Context, a *arena) error {
	if err := a.elect(ctx); err != nil {
		return fmt.Errorf("election: %w", err)
	}
	start := time.Now()
	err := a.assignDomains(ctx, env.opts.solver, env.opts.flowOpts)
	env.opts.metrics.observeFlow(time.Since(start))
	if err != nil {
		return fmt.Errorf("assignment: %w", err)
	}
	if err = a.reassign(ctx); err != nil {
		return fmt.Errorf("re-assignment: %w", err)
	}

	return nil
}

// padReserves tops each component up to ⌈n/L⌉+α centers, in component order,
// while the K budget allows. It returns the total number of centers.
func padReserves(arenas []*arena, p Params, rng *rand.Rand) int {
	total := 0
	counts := make([]int, len(arenas))
	for i, a := range arenas {
		counts[i] = len(a.centers())
		total += counts[i]
	}
	for i, a := range arenas {
		d := ceilDiv(a.size(), p.MaxClientsPerCenter) + p.MaxFailedCenters - counts[i]
		if room := p.MaxCenters - total; d > room {
			d = room
		}
		if d <= 0 {
			continue
		}
		var cands []int
		for v := range a.nodes {
			if a.nodes[v].center != v {
				cands = append(cands, v)
			}
		}
		for _, r := range sampleIDs(cands, d, rng) {
			a.addReserve(r)
			total++
		}
	}

	return total
}

// buildPlan converts arena state into the exported Plan.
func buildPlan(arenas []*arena, t float64, mode Mode) *Plan {
	plan := &Plan{Mode: mode, Threshold: t, Components: len(arenas)}
	for ci, a := range arenas {
		for v := range a.nodes {
			n := &a.nodes[v]
			if n.center == none {
				// Left for check to report.
				continue
			}
			plan.Assignments = append(plan.Assignments, Assignment{Vertex: n.id, Center: a.nodes[n.center].id})
			if n.center != v {
				continue
			}
			c := Center{ID: n.id, Reserve: n.reserve, Component: ci}
			for _, w := range n.clients {
				c.Clients = append(c.Clients, a.nodes[w].id)
			}
			sort.Strings(c.Clients)
			switch n.role {
			case roleMajor:
				c.Monarch = MonarchMajor
			case roleMinor:
				c.Monarch = MonarchMinor
			}
			for _, w := range n.minors {
				c.Backups = append(c.Backups, a.nodes[w].id)
			}
			sort.Strings(c.Backups)
			if n.role == roleMinor && n.major != v {
				c.BackupOf = a.nodes[n.major].id
			}
			plan.Centers = append(plan.Centers, c)
		}
	}
	sort.Slice(plan.Centers, func(i, j int) bool { return plan.Centers[i].ID < plan.Centers[j].ID })
	sort.Slice(plan.Assignments, func(i, j int) bool { return plan.Assignments[i].Vertex < plan.Assignments[j].Vertex })

	return plan
}
