// SPDX-License-Identifier: MIT

// File: arena.go
// Role: Per-attempt, per-component vertex state and cached hop queries.
// Determinism:
//   - Vertices are indexed by their position in the sorted component ID list.
//   - Hop queries return BFS visit order, which follows sorted neighbour IDs.
// Concurrency:
//   - An arena is owned by one goroutine. The shared threshold graph is only read.

package cluster

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/ftcenters/bfs"
	"github.com/katalvlaran/ftcenters/core"
	"github.com/katalvlaran/ftcenters/dijkstra"
)

// none marks an absent vertex reference.
const none = -1

// role is the election outcome of a vertex.
type role uint8

const (
	roleSubject role = iota // belongs to some empire, not elected
	roleMajor               // first-pass monarch
	roleMinor               // backup (standard) or second-pass monarch (conservative)
)

// node is the mutable state of one component vertex during an attempt.
type node struct {
	id string

	marked bool
	queued bool
	role   role
	parent int // spawning monarch; none for roots and non-monarchs
	deputy int // boundary vertex of parent that spawned this one
	owner  int // monarch whose empire holds this vertex
	empire []int
	minors []int // standard mode: backups chosen by this major
	major  int   // representative used for flow arcs

	center  int
	clients []int
	reserve bool
}

type hopKey struct{ src, r int }

// arena holds everything one component needs for one attempt.
// g answers weighted distance queries, hops the hop-count ones.
type arena struct {
	g        *core.Graph
	hops     *core.Graph
	reach    float64 // upper bound on the distance to any empire-radius vertex
	nodes    []node
	index    map[string]int
	rng      *rand.Rand
	mode     Mode
	radii    radii
	capacity int
	alpha    int

	majors []int // M1 in crowning order
	minors []int // M2 in selection or crowning order

	balls     map[hopKey][]int
	frontiers map[hopKey][]int
	dist      map[int]map[string]float64
}

// newArena builds the arena of one component. ids must be sorted and g must
// contain exactly the component's vertices and edges.
func newArena(g *core.Graph, ids []string, p Params, rng *rand.Rand) *arena {
	mode := p.mode()
	a := &arena{
		g:         g,
		hops:      core.UnweightedView(g),
		nodes:     make([]node, len(ids)),
		index:     make(map[string]int, len(ids)),
		rng:       rng,
		mode:      mode,
		radii:     mode.radii(),
		capacity:  p.MaxClientsPerCenter,
		alpha:     p.MaxFailedCenters,
		balls:     make(map[hopKey][]int),
		frontiers: make(map[hopKey][]int),
		dist:      make(map[int]map[string]float64),
	}
	if ws := g.DistinctWeights(); len(ws) > 0 {
		// Summed in path order so rounding matches what Dijkstra accumulates.
		for i := 0; i < a.radii.empire; i++ {
			a.reach += ws[len(ws)-1]
		}
	}
	for i, id := range ids {
		a.index[id] = i
		a.nodes[i] = node{id: id, parent: none, deputy: none, owner: none, major: none, center: none}
	}

	return a
}

func (a *arena) size() int { return len(a.nodes) }

func (a *arena) toIndices(ids []string) ([]int, error) {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		i, ok := a.index[id]
		if !ok {
			return nil, fmt.Errorf("%w: vertex %q escaped its component", errInternal, id)
		}
		out = append(out, i)
	}

	return out, nil
}

// ball returns src and every vertex within r hops of it.
func (a *arena) ball(ctx context.Context, src, r int) ([]int, error) {
	key := hopKey{src, r}
	if out, ok := a.balls[key]; ok {
		return out, nil
	}
	ids, err := bfs.Ball(ctx, a.hops, a.nodes[src].id, r)
	if err != nil {
		return nil, fmt.Errorf("ball(%s, %d): %w", a.nodes[src].id, r, err)
	}
	out, err := a.toIndices(ids)
	if err != nil {
		return nil, err
	}
	a.balls[key] = out

	return out, nil
}

// frontier returns the vertices at exactly r hops from src.
func (a *arena) frontier(ctx context.Context, src, r int) ([]int, error) {
	key := hopKey{src, r}
	if out, ok := a.frontiers[key]; ok {
		return out, nil
	}
	ids, err := bfs.Frontier(ctx, a.hops, a.nodes[src].id, r)
	if err != nil {
		return nil, fmt.Errorf("frontier(%s, %d): %w", a.nodes[src].id, r, err)
	}
	out, err := a.toIndices(ids)
	if err != nil {
		return nil, err
	}
	a.frontiers[key] = out

	return out, nil
}

// distance is the weighted shortest-path length from src to dst. It is +Inf
// when dst is unreachable or farther than a.reach.
func (a *arena) distance(src, dst int) (float64, error) {
	d, ok := a.dist[src]
	if !ok {
		var err error
		d, _, err = dijkstra.Dijkstra(a.g, dijkstra.Source(a.nodes[src].id), dijkstra.WithMaxDistance(a.reach))
		if err != nil {
			return 0, fmt.Errorf("distances from %s: %w", a.nodes[src].id, err)
		}
		a.dist[src] = d
	}
	w, ok := d[a.nodes[dst].id]
	if !ok {
		return math.Inf(1), nil
	}

	return w, nil
}

// monarchs returns M1 followed by the minors that own empires or back up a major.
func (a *arena) monarchs() []int {
	out := make([]int, 0, len(a.majors)+len(a.minors))
	out = append(out, a.majors...)

	return append(out, a.minors...)
}

// forestNodes are the monarchs that own an empire and take part in re-assignment.
func (a *arena) forestNodes() []int {
	if a.mode == ModeConservative {
		return a.monarchs()
	}

	return append([]int(nil), a.majors...)
}

// unassigned lists members of m's empire that have no center yet.
func (a *arena) unassigned(m int) []int {
	var out []int
	for _, v := range a.nodes[m].empire {
		if a.nodes[v].center == none {
			out = append(out, v)
		}
	}

	return out
}

// makeCenter turns c into a center serving group (c included).
func (a *arena) makeCenter(c int, group []int) {
	a.nodes[c].clients = append([]int(nil), group...)
	for _, v := range group {
		a.nodes[v].center = c
	}
}

// centers lists the vertices that currently serve themselves.
func (a *arena) centers() []int {
	var out []int
	for i := range a.nodes {
		if a.nodes[i].center == i {
			out = append(out, i)
		}
	}

	return out
}
