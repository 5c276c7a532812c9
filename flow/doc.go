// SPDX-License-Identifier: MIT

// Package flow provides the network-flow primitives used for capacitated
// assignment: an index-based Network with node supplies and per-arc
// lower/upper bounds and costs, Dinic's maximum flow, and a minimum-cost
// flow Solver.
//
// What
//
//   - Network:  dense node indices, AddNode/AddArc/SetSupply, Validate.
//   - Dinic:    maximum s–t flow on arc upper bounds (level graph + blocking flow).
//   - Solver:   narrow interface, MinCostFlow(ctx, net) → per-arc flow or error.
//   - SuccessiveShortestPaths: the default Solver (Bellman-Ford potentials,
//     then Dijkstra on reduced costs).
//
// Errors
//
//	ErrNilNetwork, ErrNodeNotFound, ErrSourceEqualSink, ErrUnbalanced,
//	ErrInfeasible, ErrNegativeCycle, ErrIterationLimit, ArcError.
//
// Determinism
//
//	Arcs are explored in insertion order and heap ties break on node index,
//	so identical networks always yield identical flows.
//
// Cancellation
//
//	Both algorithms check ctx between augmentations.
package flow
