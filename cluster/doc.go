// SPDX-License-Identifier: MIT

// Package cluster selects fault-tolerant capacitated centers on a weighted graph.
//
// Given K (MaxCenters), L (MaxClientsPerCenter) and α (MaxFailedCenters),
// Solve picks at most K centers and assigns every vertex to exactly one of
// them so that no center serves more than L vertices. A center serves
// itself. Every connected component ends with at least ⌈n/L⌉+α centers
// when the budget allows, so it survives the loss of α of them.
//
// Pipeline per candidate threshold t
//
//  1. Feasibility: connected components of the edges with weight ≤ t;
//     Σ⌈n_i/L⌉ > K rejects t before any election.
//  2. Election: a random work-list grows hop-radius empires (radius 2 in
//     ModeStandard, 5 in ModeConservative). Crowned vertices are monarchs;
//     parent links between them form the monarch forest.
//  3. Domain assignment: a min-cost flow routes vertices to monarchs within
//     the empire radius, at most L per monarch, cost = shortest-path distance.
//     Only domains of exactly L vertices are kept.
//  4. Re-assignment: walking the forest leaf-first, unassigned vertices are
//     grouped into full centers and the remainder flows to the parent; the
//     root seats what is left. A component thus gets ⌈n/L⌉ centers for any
//     seed, and a threshold is feasible exactly when step 1 accepts it.
//  5. Failover padding and plan validation.
//
// Search
//
//	StrategyBinary (default) bisects the sorted candidates after checking the
//	largest one; StrategyLinear scans upward. WithMaxAttempts and the context
//	deadline bound the search and surface as ErrSearchTimeout.
//
// Determinism
//
//	For a fixed WithSeed the plan is identical regardless of WithParallelism:
//	each component draws from its own stream derived from (seed, threshold, component).
//
// Observability
//
//	WithLogger (log/slog), WithMetrics (Prometheus) and WithTracerProvider
//	(OpenTelemetry) are optional; every log line of a run carries its run_id.
package cluster
