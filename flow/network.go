// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"
)

// Arc is a directed arc of a flow network with flow bounds Lower ≤ f ≤ Upper
// and a per-unit Cost.
type Arc struct {
	From, To int
	Lower    int64
	Upper    int64
	Cost     float64
}

// Network is a capacitated flow network over dense node indices.
// A positive supply marks a node that emits flow, a negative one a node that absorbs it.
type Network struct {
	supply []int64
	arcs   []Arc
}

// NewNetwork returns a network with n zero-supply nodes.
func NewNetwork(n int) *Network {
	return &Network{supply: make([]int64, n)}
}

// AddNode appends a node with the given supply and returns its index.
func (n *Network) AddNode(supply int64) int {
	n.supply = append(n.supply, supply)

	return len(n.supply) - 1
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.supply) }

// SetSupply replaces the supply of node v.
func (n *Network) SetSupply(v int, s int64) error {
	if v < 0 || v >= len(n.supply) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	n.supply[v] = s

	return nil
}

// Supply returns the supply of node v (zero for unknown nodes).
func (n *Network) Supply(v int) int64 {
	if v < 0 || v >= len(n.supply) {
		return 0
	}

	return n.supply[v]
}

// AddArc appends an arc and returns its index.
func (n *Network) AddArc(from, to int, lower, upper int64, cost float64) (int, error) {
	if from < 0 || from >= len(n.supply) {
		return -1, fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if to < 0 || to >= len(n.supply) {
		return -1, fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if lower < 0 || upper < lower {
		return -1, ArcError{Index: len(n.arcs), Lower: lower, Upper: upper}
	}
	n.arcs = append(n.arcs, Arc{From: from, To: to, Lower: lower, Upper: upper, Cost: cost})

	return len(n.arcs) - 1, nil
}

// Arcs returns the arcs in insertion order. The slice must not be modified.
func (n *Network) Arcs() []Arc { return n.arcs }

// Validate checks bounds and that supplies are balanced.
func (n *Network) Validate() error {
	if n == nil {
		return ErrNilNetwork
	}
	var total int64
	for _, s := range n.supply {
		total += s
	}
	if total != 0 {
		return fmt.Errorf("%w: imbalance %d", ErrUnbalanced, total)
	}
	for i, a := range n.arcs {
		if a.Lower < 0 || a.Upper < a.Lower {
			return ArcError{Index: i, Lower: a.Lower, Upper: a.Upper}
		}
	}

	return nil
}

// Solution is the per-arc flow computed by a Solver.
type Solution struct {
	// Flow is indexed like Network.Arcs.
	Flow []int64

	// Cost is Σ Flow[i]·Arcs[i].Cost.
	Cost float64

	// Iterations is the number of augmenting paths used.
	Iterations int
}

// Solver computes a minimum-cost flow meeting every supply and arc bound.
type Solver interface {
	MinCostFlow(ctx context.Context, net *Network) (*Solution, error)
}
