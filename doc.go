// SPDX-License-Identifier: MIT

// Package ftcenters selects fault-tolerant capacitated centers in weighted graphs.
//
// Given a graph, a center budget K, a per-center capacity L and a failure
// tolerance α, the library searches the smallest edge-weight threshold t at
// which every vertex can be assigned to a center of its own component in the
// subgraph of edges no heavier than t, with at most K centers overall and at
// most L clients per center. Components keep α spare centers where the budget
// allows.
//
// Packages:
//
//	core/    : thread-safe Graph, Vertex and Edge types plus threshold and induced views
//	builder/ : deterministic graph constructors (paths, cliques, random geometric graphs)
//	bfs/     : hop-count balls, frontiers and connected components
//	dijkstra/: weighted single-source distances
//	dfs/     : topological order of the monarch forest
//	flow/    : flow networks, Dinic max-flow and min-cost flow
//	cluster/ : threshold search, monarch election, domain assignment and re-assignment
//	graphio/ : YAML graph documents and plan reports
//	config/  : YAML run configuration
//	version/ : build version reporting
//	cmd/ftcenters: the command-line front end
//
// Quick start:
//
//	g, _ := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Barbell(3))
//	plan, err := cluster.Solve(ctx, g, cluster.Params{MaxCenters: 2, MaxClientsPerCenter: 3})
package ftcenters
