// SPDX-License-Identifier: MIT

// Package builder constructs graphs for tests, examples and the generate
// command. Constructors are composed through BuildGraph:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.RandomGeometric(50, 20),
//	)
//
// Deterministic topologies: Isolated, Path, Cycle, Star, Complete, Barbell.
// Stochastic: RandomGeometric (requires WithSeed or WithRand).
package builder
