// SPDX-License-Identifier: MIT

// File: election.go
// Role: Monarch election. Grows empires from a randomly ordered work-list until
//       every component vertex belongs to exactly one empire.
// Determinism:
//   - All random choices come from the arena's private stream.

package cluster

import (
	"context"
	"math/rand"
)

// worklist holds vertices waiting to be crowned.
type worklist struct{ items []int }

// pop removes a uniformly chosen item. ok is false when the list is empty.
func (wl *worklist) pop(rng *rand.Rand) (v int, ok bool) {
	n := len(wl.items)
	if n == 0 {
		return none, false
	}
	i := rng.Intn(n)
	v = wl.items[i]
	wl.items[i] = wl.items[n-1]
	wl.items = wl.items[:n-1]

	return v, true
}

func (a *arena) enqueue(wl *worklist, v, parent, deputy int) {
	n := &a.nodes[v]
	n.queued = true
	n.parent = parent
	n.deputy = deputy
	wl.items = append(wl.items, v)
}

// elect runs the protocol selected by the arena's mode.
func (a *arena) elect(ctx context.Context) error {
	if a.size() == 0 {
		return nil
	}
	seed := a.rng.Intn(a.size())
	if a.mode == ModeConservative {
		return a.electConservative(ctx, seed)
	}

	return a.electStandard(ctx, seed)
}

// electStandard grows radius-2 empires, spawning one hop past each boundary,
// then lets every major pick up to α−1 backup minors among its neighbours.
func (a *arena) electStandard(ctx context.Context, seed int) error {
	wl := &worklist{}
	a.enqueue(wl, seed, none, none)
	if err := a.cover(ctx, wl, roleMajor, a.radii.spawn, &a.majors); err != nil {
		return err
	}

	return a.chooseBackups(ctx)
}

// electConservative runs two passes of radius-5 empires. The first spawns
// five hops past each boundary; the second seeds from the unclaimed
// neighbours of first-pass boundaries and crowns minors.
func (a *arena) electConservative(ctx context.Context, seed int) error {
	wl := &worklist{}
	a.enqueue(wl, seed, none, none)
	if err := a.drain(ctx, wl, roleMajor, a.radii.spawn, &a.majors); err != nil {
		return err
	}

	for _, m := range a.majors {
		rim, err := a.boundary(ctx, m)
		if err != nil {
			return err
		}
		for _, u := range rim {
			nbrs, err := a.frontier(ctx, u, 1)
			if err != nil {
				return err
			}
			for _, w := range nbrs {
				if n := &a.nodes[w]; !n.marked && !n.queued && n.parent == none {
					a.enqueue(wl, w, m, u)
				}
			}
		}
	}

	return a.cover(ctx, wl, roleMinor, a.radii.secondSpawn, &a.minors)
}

// cover drains wl, then keeps seeding from unclaimed vertices that touch a
// claimed one until the empires cover the component.
func (a *arena) cover(ctx context.Context, wl *worklist, r role, spawn int, dst *[]int) error {
	for {
		if err := a.drain(ctx, wl, r, spawn, dst); err != nil {
			return err
		}
		added, err := a.seedUncovered(ctx, wl)
		if err != nil {
			return err
		}
		if !added {
			return nil
		}
	}
}

// seedUncovered enqueues every unmarked vertex adjacent to a marked one,
// parented by the owner of that neighbour.
func (a *arena) seedUncovered(ctx context.Context, wl *worklist) (bool, error) {
	added := false
	for i := range a.nodes {
		if a.nodes[i].marked || a.nodes[i].queued {
			continue
		}
		nbrs, err := a.frontier(ctx, i, 1)
		if err != nil {
			return false, err
		}
		for _, x := range nbrs {
			if a.nodes[x].marked {
				a.enqueue(wl, i, a.nodes[x].owner, x)
				added = true
				break
			}
		}
	}

	return added, nil
}

// drain crowns popped vertices until wl is empty. Vertices absorbed by an
// earlier empire while waiting are skipped.
func (a *arena) drain(ctx context.Context, wl *worklist, r role, spawn int, dst *[]int) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, ok := wl.pop(a.rng)
		if !ok {
			return nil
		}
		a.nodes[v].queued = false
		if a.nodes[v].marked {
			continue
		}
		if err := a.crown(ctx, v, r); err != nil {
			return err
		}
		*dst = append(*dst, v)
		if err := a.spawn(ctx, wl, v, spawn); err != nil {
			return err
		}
	}
}

// crown makes v a monarch and claims every unmarked vertex within the empire radius.
func (a *arena) crown(ctx context.Context, v int, r role) error {
	ball, err := a.ball(ctx, v, a.radii.empire)
	if err != nil {
		return err
	}
	n := &a.nodes[v]
	n.marked = true
	n.role = r
	n.owner = v
	n.major = v
	n.empire = []int{v}
	for _, w := range ball {
		wn := &a.nodes[w]
		if wn.marked {
			continue
		}
		wn.marked = true
		wn.owner = v
		if wn.queued {
			wn.parent = none
			wn.deputy = none
		}
		n.empire = append(n.empire, w)
	}

	return nil
}

// boundary lists empire members of m at exactly the empire radius.
func (a *arena) boundary(ctx context.Context, m int) ([]int, error) {
	rim, err := a.frontier(ctx, m, a.radii.empire)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(rim))
	for _, u := range rim {
		if a.nodes[u].owner == m {
			out = append(out, u)
		}
	}

	return out, nil
}

// spawn enqueues the vertices exactly dist hops past each boundary vertex of v.
func (a *arena) spawn(ctx context.Context, wl *worklist, v, dist int) error {
	rim, err := a.boundary(ctx, v)
	if err != nil {
		return err
	}
	for _, u := range rim {
		far, err := a.frontier(ctx, u, dist)
		if err != nil {
			return err
		}
		for _, w := range far {
			if n := &a.nodes[w]; !n.marked && !n.queued {
				a.enqueue(wl, w, v, u)
			}
		}
	}

	return nil
}

// chooseBackups gives every major up to α−1 distinct minors drawn from its
// neighbours, skipping its deputy, other majors and already chosen minors.
func (a *arena) chooseBackups(ctx context.Context) error {
	want := a.alpha - 1
	if want <= 0 {
		return nil
	}
	for _, m := range a.majors {
		nbrs, err := a.frontier(ctx, m, 1)
		if err != nil {
			return err
		}
		cands := make([]int, 0, len(nbrs))
		for _, w := range nbrs {
			if w != a.nodes[m].deputy && a.nodes[w].role == roleSubject {
				cands = append(cands, w)
			}
		}
		for _, w := range sampleIDs(cands, want, a.rng) {
			a.nodes[w].role = roleMinor
			a.nodes[w].major = m
			a.nodes[m].minors = append(a.nodes[m].minors, w)
			a.minors = append(a.minors, w)
		}
	}

	return nil
}
